package session

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresGet_ParsesPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	expire := time.Now().Add(time.Hour)
	rows := sqlmock.NewRows([]string{"sid", "sess", "expire"}).
		AddRow("sid-1", []byte(`{"cookie":{},"userId":"user-1"}`), expire)
	mock.ExpectQuery("SELECT sid, sess, expire FROM sessions").
		WithArgs("sid-1").
		WillReturnRows(rows)

	repo := NewPostgresRepository(db)
	s, err := repo.Get("sid-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.UserID != "user-1" || s.SID != "sid-1" {
		t.Fatalf("unexpected session: %+v", s)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGet_MissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT sid, sess, expire FROM sessions").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"sid", "sess", "expire"}))

	repo := NewPostgresRepository(db)
	if _, err := repo.Get("ghost"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresGet_ExpiredRowTreatedAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"sid", "sess", "expire"}).
		AddRow("sid-1", []byte(`{"userId":"user-1"}`), time.Now().Add(-time.Minute))
	mock.ExpectQuery("SELECT sid, sess, expire FROM sessions").
		WithArgs("sid-1").
		WillReturnRows(rows)

	repo := NewPostgresRepository(db)
	if _, err := repo.Get("sid-1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for expired session, got %v", err)
	}
}

func TestPostgresGet_PayloadWithoutUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"sid", "sess", "expire"}).
		AddRow("sid-1", []byte(`{"cookie":{}}`), time.Now().Add(time.Hour))
	mock.ExpectQuery("SELECT sid, sess, expire FROM sessions").
		WithArgs("sid-1").
		WillReturnRows(rows)

	repo := NewPostgresRepository(db)
	if _, err := repo.Get("sid-1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for anonymous session, got %v", err)
	}
}
