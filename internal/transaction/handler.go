package transaction

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kagisom/localconnect-backend/internal/auth"
	"github.com/kagisom/localconnect-backend/internal/contract"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post(contract.TransactionsCreate.Path, h.createTransaction)
}

func (h *Handler) createTransaction(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	input := new(contract.CreateTransactionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if ve := contract.Validate(input); ve != nil {
		return c.Status(fiber.StatusBadRequest).JSON(contract.ValidationErrorBody{
			Message: ve.Message,
			Field:   ve.Field,
		})
	}

	created, err := h.service.Create(Transaction{
		UserID:   userID,
		Amount:   *input.Amount,
		Type:     input.Type,
		Provider: input.Provider,
		Status:   input.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
