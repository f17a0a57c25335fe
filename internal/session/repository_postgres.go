package session

import (
	"database/sql"
	"encoding/json"
	"time"
)

type PostgresRepository struct {
	db *sql.DB
}

const getSessionQuery = `SELECT sid, sess, expire FROM sessions WHERE sid = $1`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(sid string) (Session, error) {
	var (
		s    Session
		sess []byte
	)
	err := r.db.QueryRow(getSessionQuery, sid).Scan(&s.SID, &sess, &s.ExpiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}

	if !s.ExpiresAt.After(time.Now()) {
		return Session{}, ErrNotFound
	}

	var p payload
	if err := json.Unmarshal(sess, &p); err != nil || p.UserID == "" {
		return Session{}, ErrNotFound
	}
	s.UserID = p.UserID
	return s, nil
}
