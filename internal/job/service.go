package job

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Job, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Job, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(j Job) (Job, error) {
	return s.repo.Create(j)
}

func (s *Service) Count() (int, error) {
	return s.repo.Count()
}
