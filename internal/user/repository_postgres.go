package user

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	userColumns = `id, email, first_name, last_name, profile_image_url, phone,
		is_phone_verified, verified_at, omang_status, bio, years_experience,
		primary_skill, trust_score, total_reviews, response_time, balance,
		created_at, updated_at`

	getUserByIDQuery = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	insertUserQuery = `
		INSERT INTO users (id, email, first_name, last_name, profile_image_url, phone, omang_status, bio, primary_skill)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + userColumns

	ensureUserQuery = `
		INSERT INTO users (id, email, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`

	creditUserQuery = `
		UPDATE users
		SET balance = balance + $1, updated_at = NOW()
		WHERE id = $2`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id string) (User, error) {
	row := r.db.QueryRow(getUserByIDQuery, id)
	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Create(u User) (User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.OmangStatus == "" {
		u.OmangStatus = "pending"
	}
	row := r.db.QueryRow(insertUserQuery,
		u.ID, u.Email, u.FirstName, u.LastName, u.ProfileImageURL, u.Phone,
		u.OmangStatus, u.Bio, u.PrimarySkill,
	)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}
	return created, nil
}

func (r *PostgresRepository) Credit(id string, amount float64) error {
	result, err := r.db.Exec(creditUserQuery, amount, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Ensure(u User) error {
	_, err := r.db.Exec(ensureUserQuery, u.ID, u.Email, u.FirstName, u.LastName)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(scanner rowScanner) (User, error) {
	u := User{}
	var (
		email, firstName, lastName, imageURL   sql.NullString
		phone, bio, primarySkill, responseTime sql.NullString
		verifiedAt                             sql.NullTime
	)
	if err := scanner.Scan(
		&u.ID, &email, &firstName, &lastName, &imageURL, &phone,
		&u.IsPhoneVerified, &verifiedAt, &u.OmangStatus, &bio,
		&u.YearsExperience, &primarySkill, &u.TrustScore, &u.TotalReviews,
		&responseTime, &u.Balance, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return User{}, err
	}

	if email.Valid {
		u.Email = &email.String
	}
	if firstName.Valid {
		u.FirstName = &firstName.String
	}
	if lastName.Valid {
		u.LastName = &lastName.String
	}
	if imageURL.Valid {
		u.ProfileImageURL = &imageURL.String
	}
	if phone.Valid {
		u.Phone = &phone.String
	}
	if bio.Valid {
		u.Bio = &bio.String
	}
	if primarySkill.Valid {
		u.PrimarySkill = &primarySkill.String
	}
	if responseTime.Valid {
		u.ResponseTime = &responseTime.String
	}
	if verifiedAt.Valid {
		t := verifiedAt.Time
		u.VerifiedAt = &t
	}
	return u, nil
}
