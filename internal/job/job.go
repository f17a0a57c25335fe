package job

import "time"

// Job is a listing shown on the map. Lat/lng are required; salary is free
// text ("BWP 50/hr") and landmark is an optional human reference point for
// areas without street addresses.
type Job struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Salary       *string   `json:"salary"`
	Type         string    `json:"type"` // Full-time, Part-time, Contract
	ContactPhone string    `json:"contactPhone"`
	Landmark     *string   `json:"landmark"`
	IsVerified   bool      `json:"isVerified"`
	CreatedAt    time.Time `json:"createdAt"`
}
