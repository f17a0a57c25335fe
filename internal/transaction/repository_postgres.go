package transaction

import (
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listTransactionsQuery = `
		SELECT id, user_id, amount, type, provider, status, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at
	`
	insertTransactionQuery = `
		INSERT INTO transactions (user_id, amount, type, provider, status)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at
	`
	creditBalanceQuery = `
		UPDATE users
		SET balance = balance + $1, updated_at = NOW()
		WHERE id = $2
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(userID string) ([]Transaction, error) {
	rows, err := r.db.Query(listTransactionsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Transaction, 0)
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &t.Provider, &t.Status, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Create runs the insert and the balance credit in one database transaction
// so a completed payment can never be recorded without its balance effect.
// The credit is a single increment statement, which keeps concurrent
// completions for the same user from losing updates.
func (r *PostgresRepository) Create(t Transaction) (Transaction, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Transaction{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(insertTransactionQuery, t.UserID, t.Amount, t.Type, t.Provider, t.Status).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	if t.Status == StatusCompleted {
		// a zero-row update means the owning user is gone; the transaction
		// row is still kept, matching the ledger-first behavior
		if _, err := tx.Exec(creditBalanceQuery, t.Amount, t.UserID); err != nil {
			return Transaction{}, fmt.Errorf("credit balance: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Transaction{}, fmt.Errorf("commit: %w", err)
	}
	return t, nil
}
