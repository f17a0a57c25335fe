package user

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("email already exists")
)

type Repository interface {
	GetByID(id string) (User, error)
	Create(u User) (User, error)
	// Credit applies a monetary delta as one atomic increment so concurrent
	// credits for the same user cannot lose updates.
	Credit(id string, amount float64) error
	// Ensure inserts u when no row with its id exists yet.
	Ensure(u User) error
}

// InMemoryRepository is used by handler tests and local experiments.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	r := &InMemoryRepository{users: make(map[string]User, len(seed))}
	for _, u := range seed {
		r.users[u.ID] = u
	}
	return r
}

func (r *InMemoryRepository) GetByID(id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *InMemoryRepository) Create(u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Email != nil {
		for _, existing := range r.users {
			if existing.Email != nil && *existing.Email == *u.Email {
				return User{}, ErrEmailExists
			}
		}
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = u
	return u, nil
}

func (r *InMemoryRepository) Credit(id string, amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	u.Balance += amount
	u.UpdatedAt = time.Now().UTC()
	r.users[id] = u
	return nil
}

func (r *InMemoryRepository) Ensure(u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; ok {
		return nil
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = u
	return nil
}
