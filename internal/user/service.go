package user

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(id string) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Credit(id string, amount float64) error {
	return s.repo.Credit(id, amount)
}

// EnsureDemoUser inserts the mock acting user so write endpoints work in
// development before any real account exists.
func (s *Service) EnsureDemoUser(id string) error {
	email := id + "@example.test"
	firstName := "Demo"
	lastName := "Worker"
	return s.repo.Ensure(User{
		ID:          id,
		Email:       &email,
		FirstName:   &firstName,
		LastName:    &lastName,
		OmangStatus: "pending",
	})
}
