// Package database opens the shared connection pool and keeps the schema in
// sync at startup. This is not a migration system — every statement is
// idempotent and safe to run on every boot.
package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	pingAttempts = 5
	pingBackoff  = 2 * time.Second
)

// Open connects to Postgres via the pgx stdlib driver and verifies the
// connection. The database may still be starting up (compose, fresh
// deploys), so the ping is retried a few times before giving up.
func Open(databaseURL string, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	for i := 0; i < pingAttempts; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		logger.Info("waiting for database", "attempt", i+1, "of", pingAttempts)
		time.Sleep(pingBackoff)
	}
	if err != nil {
		return nil, fmt.Errorf("database unreachable after %d attempts: %w", pingAttempts, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	logger.Info("database connection established")

	return db, nil
}

// Migrate creates the LocalConnect tables and indexes when they are missing.
func Migrate(db *sql.DB, logger *slog.Logger) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			sid    VARCHAR PRIMARY KEY,
			sess   JSONB     NOT NULL,
			expire TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS "IDX_session_expire" ON sessions (expire)`,
		`CREATE TABLE IF NOT EXISTS users (
			id                VARCHAR PRIMARY KEY DEFAULT gen_random_uuid(),
			email             VARCHAR UNIQUE,
			first_name        VARCHAR,
			last_name         VARCHAR,
			profile_image_url VARCHAR,
			phone             VARCHAR,
			is_phone_verified BOOLEAN          DEFAULT FALSE,
			verified_at       TIMESTAMP,
			omang_status      VARCHAR          DEFAULT 'pending',
			bio               TEXT,
			years_experience  INTEGER          DEFAULT 0,
			primary_skill     VARCHAR,
			trust_score       DOUBLE PRECISION DEFAULT 0,
			total_reviews     INTEGER          DEFAULT 0,
			response_time     VARCHAR,
			balance           DOUBLE PRECISION DEFAULT 0,
			created_at        TIMESTAMP        DEFAULT NOW(),
			updated_at        TIMESTAMP        DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id            SERIAL PRIMARY KEY,
			title         TEXT             NOT NULL,
			company       TEXT             NOT NULL,
			description   TEXT             NOT NULL,
			category      TEXT             NOT NULL,
			lat           DOUBLE PRECISION NOT NULL,
			lng           DOUBLE PRECISION NOT NULL,
			salary        TEXT,
			type          TEXT             NOT NULL,
			contact_phone TEXT             NOT NULL,
			landmark      TEXT,
			is_verified   BOOLEAN          NOT NULL DEFAULT FALSE,
			created_at    TIMESTAMP        NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS skills (
			id      SERIAL PRIMARY KEY,
			user_id VARCHAR NOT NULL,
			name    TEXT    NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS portfolio_items (
			id          SERIAL PRIMARY KEY,
			user_id     VARCHAR   NOT NULL,
			title       TEXT      NOT NULL,
			description TEXT,
			image_url   TEXT      NOT NULL,
			created_at  TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS work_experience (
			id          SERIAL PRIMARY KEY,
			user_id     VARCHAR NOT NULL,
			company     TEXT    NOT NULL,
			position    TEXT    NOT NULL,
			description TEXT    NOT NULL,
			start_date  TEXT    NOT NULL,
			end_date    TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id         SERIAL PRIMARY KEY,
			user_id    VARCHAR          NOT NULL,
			amount     DOUBLE PRECISION NOT NULL,
			type       TEXT             NOT NULL,
			provider   TEXT             NOT NULL,
			status     TEXT             NOT NULL,
			created_at TIMESTAMP        NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions (user_id)`,
	}

	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	logger.Info("schema up to date")
	return nil
}
