package profile

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listSkillsQuery = `SELECT id, user_id, name FROM skills WHERE user_id = $1`

	insertSkillQuery = `
		INSERT INTO skills (user_id, name)
		VALUES ($1, $2)
		RETURNING id
	`
	listPortfolioQuery = `
		SELECT id, user_id, title, description, image_url, created_at
		FROM portfolio_items
		WHERE user_id = $1
	`
	listWorkExperienceQuery = `
		SELECT id, user_id, company, position, description, start_date, end_date
		FROM work_experience
		WHERE user_id = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Skills(userID string) ([]Skill, error) {
	rows, err := r.db.Query(listSkillsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) AddSkill(userID, name string) (Skill, error) {
	s := Skill{UserID: userID, Name: name}
	if err := r.db.QueryRow(insertSkillQuery, userID, name).Scan(&s.ID); err != nil {
		return Skill{}, err
	}
	return s, nil
}

func (r *PostgresRepository) Portfolio(userID string) ([]PortfolioItem, error) {
	rows, err := r.db.Query(listPortfolioQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PortfolioItem, 0)
	for rows.Next() {
		var (
			p    PortfolioItem
			desc sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &desc, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		if desc.Valid {
			p.Description = &desc.String
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) WorkExperience(userID string) ([]WorkExperience, error) {
	rows, err := r.db.Query(listWorkExperienceQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]WorkExperience, 0)
	for rows.Next() {
		var (
			w       WorkExperience
			endDate sql.NullString
		)
		if err := rows.Scan(&w.ID, &w.UserID, &w.Company, &w.Position, &w.Description, &w.StartDate, &endDate); err != nil {
			return nil, err
		}
		if endDate.Valid {
			w.EndDate = &endDate.String
		}
		out = append(out, w)
	}
	return out, rows.Err()
}
