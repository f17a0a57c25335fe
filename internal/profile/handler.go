package profile

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/kagisom/localconnect-backend/internal/auth"
	"github.com/kagisom/localconnect-backend/internal/contract"
	"github.com/kagisom/localconnect-backend/internal/transaction"
	"github.com/kagisom/localconnect-backend/internal/user"
)

// Handler serves the aggregated profile view. It needs the user and
// transaction services alongside its own.
type Handler struct {
	service      *Service
	users        *user.Service
	transactions *transaction.Service
}

func NewHandler(service *Service, users *user.Service, transactions *transaction.Service) *Handler {
	return &Handler{service: service, users: users, transactions: transactions}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get(contract.ProfileGet.Path, h.getProfile)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post(contract.ProfileAddSkill.Path, h.addSkill)
}

func (h *Handler) getProfile(c *fiber.Ctx) error {
	userID := c.Params("userId")

	u, err := h.users.GetByID(userID)
	if err != nil {
		if err == user.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return err
	}

	// the four section fetches are independent, so issue them together;
	// any single failure fails the whole request
	p := Profile{User: u}
	var g errgroup.Group
	g.Go(func() error {
		var err error
		p.Skills, err = h.service.Skills(userID)
		return err
	})
	g.Go(func() error {
		var err error
		p.Portfolio, err = h.service.Portfolio(userID)
		return err
	})
	g.Go(func() error {
		var err error
		p.WorkExperience, err = h.service.WorkExperience(userID)
		return err
	})
	g.Go(func() error {
		var err error
		p.Transactions, err = h.transactions.ListByUser(userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return c.JSON(p)
}

func (h *Handler) addSkill(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	input := new(contract.AddSkillInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if ve := contract.Validate(input); ve != nil {
		return c.Status(fiber.StatusBadRequest).JSON(contract.ValidationErrorBody{
			Message: ve.Message,
			Field:   ve.Field,
		})
	}

	created, err := h.service.AddSkill(userID, input.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
