package transaction

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByUser(userID string) ([]Transaction, error) {
	return s.repo.ListByUser(userID)
}

func (s *Service) Create(t Transaction) (Transaction, error) {
	return s.repo.Create(t)
}
