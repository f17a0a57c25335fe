package job

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kagisom/localconnect-backend/internal/contract"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get(contract.JobsList.Path, h.listJobs)
	app.Get(contract.JobsGet.Path, h.getJob)
	app.Post(contract.JobsCreate.Path, h.createJob)
}

func (h *Handler) listJobs(c *fiber.Ctx) error {
	jobs, err := h.service.List()
	if err != nil {
		return err
	}
	return c.JSON(jobs)
}

func (h *Handler) getJob(c *fiber.Ctx) error {
	// a non-numeric id cannot match any row, so it reads as absent
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Job not found"})
	}

	j, err := h.service.GetByID(id)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Job not found"})
		}
		return err
	}
	return c.JSON(j)
}

func (h *Handler) createJob(c *fiber.Ctx) error {
	input := new(contract.CreateJobInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if ve := contract.Validate(input); ve != nil {
		return c.Status(fiber.StatusBadRequest).JSON(contract.ValidationErrorBody{
			Message: ve.Message,
			Field:   ve.Field,
		})
	}

	created, err := h.service.Create(fromInput(input))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// fromInput maps the validated body to a Job row, coercing blank optional
// text fields to NULL.
func fromInput(in *contract.CreateJobInput) Job {
	j := Job{
		Title:        in.Title,
		Company:      in.Company,
		Description:  in.Description,
		Category:     in.Category,
		Lat:          *in.Lat,
		Lng:          *in.Lng,
		Type:         in.Type,
		ContactPhone: in.ContactPhone,
	}
	if in.Salary != "" {
		j.Salary = &in.Salary
	}
	if in.Landmark != "" {
		j.Landmark = &in.Landmark
	}
	return j
}
