package user

import "time"

// User is a worker profile row. The auth collaborator owns account creation
// and verification; this API reads users and credits their balance.
type User struct {
	ID              string     `json:"id"`
	Email           *string    `json:"email"`
	FirstName       *string    `json:"firstName"`
	LastName        *string    `json:"lastName"`
	ProfileImageURL *string    `json:"profileImageUrl"`
	Phone           *string    `json:"phone"`
	IsPhoneVerified bool       `json:"isPhoneVerified"`
	VerifiedAt      *time.Time `json:"verifiedAt"`
	OmangStatus     string     `json:"omangStatus"`
	Bio             *string    `json:"bio"`
	YearsExperience int        `json:"yearsExperience"`
	PrimarySkill    *string    `json:"primarySkill"`
	TrustScore      float64    `json:"trustScore"`
	TotalReviews    int        `json:"totalReviews"`
	ResponseTime    *string    `json:"responseTime"`
	Balance         float64    `json:"balance"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
