package transaction

import (
	"sort"
	"sync"
	"time"

	"github.com/kagisom/localconnect-backend/internal/user"
)

type Repository interface {
	// ListByUser returns the user's transactions ordered by creation time
	// ascending.
	ListByUser(userID string) ([]Transaction, error)
	// Create inserts t and, when its status is completed, credits the
	// owning user's balance atomically with the insert. A missing owning
	// user does not fail the insert; the credit is simply skipped.
	Create(t Transaction) (Transaction, error)
}

// InMemoryRepository backs handler tests. It credits balances through the
// in-memory user repository so the two stay consistent.
type InMemoryRepository struct {
	mu      sync.Mutex
	users   user.Repository
	storage []Transaction
	nextID  int
}

func NewInMemoryRepository(users user.Repository, seed []Transaction) *InMemoryRepository {
	r := &InMemoryRepository{
		users:   users,
		storage: make([]Transaction, 0, len(seed)),
		nextID:  1,
	}
	for _, t := range seed {
		r.storage = append(r.storage, t)
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
	return r
}

func (r *InMemoryRepository) ListByUser(userID string) ([]Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Transaction, 0)
	for _, t := range r.storage {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, k int) bool {
		if out[i].CreatedAt.Equal(out[k].CreatedAt) {
			return out[i].ID < out[k].ID
		}
		return out[i].CreatedAt.Before(out[k].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) Create(t Transaction) (Transaction, error) {
	r.mu.Lock()
	t.ID = r.nextID
	r.nextID++
	t.CreatedAt = time.Now().UTC()
	r.storage = append(r.storage, t)
	r.mu.Unlock()

	if t.Status == StatusCompleted {
		if err := r.users.Credit(t.UserID, t.Amount); err != nil && err != user.ErrNotFound {
			return Transaction{}, err
		}
	}
	return t, nil
}
