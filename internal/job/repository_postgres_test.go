package job

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var jobColumns = []string{"id", "title", "company", "description", "category", "lat", "lng", "salary", "type", "contact_phone", "landmark", "is_verified", "created_at"}

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(jobColumns).
		AddRow(1, "Barista", "Blue Bottle Coffee", "d", "Food Service", 37.7749, -122.4194, "$20/hr", "Part-time", "555-0101", nil, false, now).
		AddRow(2, "Line Cook", "Joe's Diner", "d", "Food Service", 37.7549, -122.4394, nil, "Part-time", "555-0104", "next to the mall", false, now.Add(time.Minute))
	mock.ExpectQuery("SELECT id, title, company").WillReturnRows(rows)

	jobs, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Salary == nil || *jobs[0].Salary != "$20/hr" {
		t.Fatalf("unexpected salary: %v", jobs[0].Salary)
	}
	if jobs[1].Salary != nil {
		t.Fatalf("expected null salary, got %v", *jobs[1].Salary)
	}
	if jobs[1].Landmark == nil || *jobs[1].Landmark != "next to the mall" {
		t.Fatalf("unexpected landmark: %v", jobs[1].Landmark)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM jobs").WithArgs(42).WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(42); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO jobs").
		WithArgs("Barista", "Blue Bottle Coffee", "d", "Food Service", 37.7749, -122.4194, nil, "Part-time", "555-0101", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_verified", "created_at"}).AddRow(7, false, now))

	created, err := repo.Create(Job{
		Title:        "Barista",
		Company:      "Blue Bottle Coffee",
		Description:  "d",
		Category:     "Food Service",
		Lat:          37.7749,
		Lng:          -122.4194,
		Type:         "Part-time",
		ContactPhone: "555-0101",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected id 7, got %d", created.ID)
	}
	if created.IsVerified {
		t.Fatalf("expected is_verified false")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.Count()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4, got %d", n)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
