package profile

import "sync"

type Repository interface {
	Skills(userID string) ([]Skill, error)
	AddSkill(userID, name string) (Skill, error)
	Portfolio(userID string) ([]PortfolioItem, error)
	WorkExperience(userID string) ([]WorkExperience, error)
}

// InMemoryRepository backs handler tests. Constructor seeds mirror the
// table contents a test needs in place.
type InMemoryRepository struct {
	mu          sync.RWMutex
	skills      []Skill
	portfolio   []PortfolioItem
	experience  []WorkExperience
	nextSkillID int
}

func NewInMemoryRepository(skills []Skill, portfolio []PortfolioItem, experience []WorkExperience) *InMemoryRepository {
	r := &InMemoryRepository{
		skills:      append([]Skill(nil), skills...),
		portfolio:   append([]PortfolioItem(nil), portfolio...),
		experience:  append([]WorkExperience(nil), experience...),
		nextSkillID: 1,
	}
	for _, s := range skills {
		if s.ID >= r.nextSkillID {
			r.nextSkillID = s.ID + 1
		}
	}
	return r
}

func (r *InMemoryRepository) Skills(userID string) ([]Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Skill, 0)
	for _, s := range r.skills {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) AddSkill(userID, name string) (Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := Skill{ID: r.nextSkillID, UserID: userID, Name: name}
	r.nextSkillID++
	r.skills = append(r.skills, s)
	return s, nil
}

func (r *InMemoryRepository) Portfolio(userID string) ([]PortfolioItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]PortfolioItem, 0)
	for _, p := range r.portfolio {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) WorkExperience(userID string) ([]WorkExperience, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]WorkExperience, 0)
	for _, w := range r.experience {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}
