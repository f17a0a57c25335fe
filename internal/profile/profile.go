package profile

import (
	"time"

	"github.com/kagisom/localconnect-backend/internal/transaction"
	"github.com/kagisom/localconnect-backend/internal/user"
)

type Skill struct {
	ID     int    `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

type PortfolioItem struct {
	ID          int       `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// WorkExperience dates are free-text ("Jan 2023"); a nil EndDate marks a
// current position.
type WorkExperience struct {
	ID          int     `json:"id"`
	UserID      string  `json:"userId"`
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	Description string  `json:"description"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

// Profile is the aggregated view returned by GET /api/profile/:userId.
type Profile struct {
	User           user.User                 `json:"user"`
	Skills         []Skill                   `json:"skills"`
	Portfolio      []PortfolioItem           `json:"portfolio"`
	WorkExperience []WorkExperience          `json:"workExperience"`
	Transactions   []transaction.Transaction `json:"transactions"`
}
