package transaction

import "time"

// Transaction statuses. Only a transaction created as completed credits the
// owning user's balance; pending and failed rows never reconcile later.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Transaction types.
const (
	TypePayment = "payment"
	TypeTopup   = "topup"
)

// Transaction is a mobile-money event recorded against a user.
type Transaction struct {
	ID        int       `json:"id"`
	UserID    string    `json:"userId"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type"`
	Provider  string    `json:"provider"` // orange_money
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
