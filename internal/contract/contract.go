// Package contract is the shared route registry: one declarative entry per
// API operation, consumed by the handlers when registering routes so the
// method/path/input definitions live in a single place.
package contract

import "github.com/gofiber/fiber/v2"

// Route describes a single API operation. Input holds a prototype of the
// request-body type (nil when the operation takes no body). Responses maps
// status codes to the response shape; it documents the contract and is not
// enforced against actual responses at runtime.
type Route struct {
	Method    string
	Path      string
	Input     any
	Responses map[int]string
}

// ErrorBody is the generic error payload returned for not-found and
// unanticipated failures.
type ErrorBody struct {
	Message string `json:"message"`
}

// ValidationErrorBody is returned for rejected request bodies. Field names
// the first violating field only.
type ValidationErrorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// CreateJobInput is the POST /api/jobs body. Lat and Lng are pointers so a
// missing coordinate is distinguishable from zero.
type CreateJobInput struct {
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Category     string   `json:"category" validate:"required"`
	Lat          *float64 `json:"lat" validate:"required"`
	Lng          *float64 `json:"lng" validate:"required"`
	Salary       string   `json:"salary"`
	Type         string   `json:"type" validate:"required"`
	ContactPhone string   `json:"contactPhone" validate:"required"`
	Landmark     string   `json:"landmark"`
}

// AddSkillInput is the POST /api/profile/skills body.
type AddSkillInput struct {
	Name string `json:"name" validate:"required"`
}

// CreateTransactionInput is the POST /api/transactions body. The acting
// user is resolved from the session, never from the body.
type CreateTransactionInput struct {
	Amount   *float64 `json:"amount" validate:"required"`
	Type     string   `json:"type" validate:"required,oneof=payment topup"`
	Provider string   `json:"provider" validate:"required"`
	Status   string   `json:"status" validate:"required,oneof=pending completed failed"`
}

var (
	JobsList = Route{
		Method: fiber.MethodGet,
		Path:   "/api/jobs",
		Responses: map[int]string{
			fiber.StatusOK: "[]Job",
		},
	}
	JobsGet = Route{
		Method: fiber.MethodGet,
		Path:   "/api/jobs/:id",
		Responses: map[int]string{
			fiber.StatusOK:       "Job",
			fiber.StatusNotFound: "ErrorBody",
		},
	}
	JobsCreate = Route{
		Method: fiber.MethodPost,
		Path:   "/api/jobs",
		Input:  CreateJobInput{},
		Responses: map[int]string{
			fiber.StatusCreated:    "Job",
			fiber.StatusBadRequest: "ValidationErrorBody",
		},
	}
	ProfileGet = Route{
		Method: fiber.MethodGet,
		Path:   "/api/profile/:userId",
		Responses: map[int]string{
			fiber.StatusOK:       "Profile",
			fiber.StatusNotFound: "ErrorBody",
		},
	}
	ProfileAddSkill = Route{
		Method: fiber.MethodPost,
		Path:   "/api/profile/skills",
		Input:  AddSkillInput{},
		Responses: map[int]string{
			fiber.StatusCreated:      "Skill",
			fiber.StatusBadRequest:   "ValidationErrorBody",
			fiber.StatusUnauthorized: "ErrorBody",
		},
	}
	TransactionsCreate = Route{
		Method: fiber.MethodPost,
		Path:   "/api/transactions",
		Input:  CreateTransactionInput{},
		Responses: map[int]string{
			fiber.StatusCreated:      "Transaction",
			fiber.StatusBadRequest:   "ValidationErrorBody",
			fiber.StatusUnauthorized: "ErrorBody",
		},
	}
	Health = Route{
		Method: fiber.MethodGet,
		Path:   "/api/health",
		Responses: map[int]string{
			fiber.StatusOK: "HealthBody",
		},
	}
)

// All returns every registry entry, used by tests to verify the server
// registers the full surface.
func All() []Route {
	return []Route{
		JobsList,
		JobsGet,
		JobsCreate,
		ProfileGet,
		ProfileAddSkill,
		TransactionsCreate,
		Health,
	}
}
