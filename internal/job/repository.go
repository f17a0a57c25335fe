package job

import (
	"errors"
	"sort"
	"sync"
	"time"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	// List returns every job ordered by creation time ascending.
	List() ([]Job, error)
	GetByID(id int) (Job, error)
	// Create inserts j with a server-assigned id and creation time;
	// is_verified always starts false.
	Create(j Job) (Job, error)
	Count() (int, error)
}

// InMemoryRepository backs handler tests and the seed tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Job
	nextID  int
}

func NewInMemoryRepository(seed []Job) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Job, 0, len(seed)),
		nextID:  1,
	}
	for _, j := range seed {
		r.storage = append(r.storage, j)
		if j.ID >= r.nextID {
			r.nextID = j.ID + 1
		}
	}
	return r
}

func (r *InMemoryRepository) List() ([]Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Job, len(r.storage))
	copy(out, r.storage)
	sort.SliceStable(out, func(i, k int) bool {
		if out[i].CreatedAt.Equal(out[k].CreatedAt) {
			return out[i].ID < out[k].ID
		}
		return out[i].CreatedAt.Before(out[k].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, j := range r.storage {
		if j.ID == id {
			return j, nil
		}
	}
	return Job{}, ErrNotFound
}

func (r *InMemoryRepository) Create(j Job) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = r.nextID
	r.nextID++
	j.IsVerified = false
	j.CreatedAt = time.Now().UTC()
	r.storage = append(r.storage, j)
	return j, nil
}

func (r *InMemoryRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.storage), nil
}
