package profile

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Skills(userID string) ([]Skill, error) {
	return s.repo.Skills(userID)
}

func (s *Service) AddSkill(userID, name string) (Skill, error) {
	return s.repo.AddSkill(userID, name)
}

func (s *Service) Portfolio(userID string) ([]PortfolioItem, error) {
	return s.repo.Portfolio(userID)
}

func (s *Service) WorkExperience(userID string) ([]WorkExperience, error) {
	return s.repo.WorkExperience(userID)
}
