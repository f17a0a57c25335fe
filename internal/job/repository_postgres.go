package job

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listJobsQuery = `
		SELECT id, title, company, description, category, lat, lng, salary, type, contact_phone, landmark, is_verified, created_at
		FROM jobs
		ORDER BY created_at
	`
	getJobByIDQuery = `
		SELECT id, title, company, description, category, lat, lng, salary, type, contact_phone, landmark, is_verified, created_at
		FROM jobs
		WHERE id = $1
	`
	insertJobQuery = `
		INSERT INTO jobs (title, company, description, category, lat, lng, salary, type, contact_phone, landmark)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id, is_verified, created_at
	`
	countJobsQuery = `SELECT COUNT(*) FROM jobs`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Job, error) {
	rows, err := r.db.Query(listJobsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Job, error) {
	row := r.db.QueryRow(getJobByIDQuery, id)
	j, err := scanJob(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return j, nil
}

func (r *PostgresRepository) Create(j Job) (Job, error) {
	err := r.db.QueryRow(
		insertJobQuery,
		j.Title,
		j.Company,
		j.Description,
		j.Category,
		j.Lat,
		j.Lng,
		j.Salary,
		j.Type,
		j.ContactPhone,
		j.Landmark,
	).Scan(&j.ID, &j.IsVerified, &j.CreatedAt)
	if err != nil {
		return Job{}, err
	}
	return j, nil
}

func (r *PostgresRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(countJobsQuery).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(scanner rowScanner) (Job, error) {
	j := Job{}
	var salary sql.NullString
	var landmark sql.NullString

	if err := scanner.Scan(
		&j.ID,
		&j.Title,
		&j.Company,
		&j.Description,
		&j.Category,
		&j.Lat,
		&j.Lng,
		&salary,
		&j.Type,
		&j.ContactPhone,
		&landmark,
		&j.IsVerified,
		&j.CreatedAt,
	); err != nil {
		return Job{}, err
	}

	if salary.Valid {
		j.Salary = &salary.String
	}
	if landmark.Valid {
		j.Landmark = &landmark.String
	}
	return j, nil
}
