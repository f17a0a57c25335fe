package transaction

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/kagisom/localconnect-backend/internal/auth"
	"github.com/kagisom/localconnect-backend/internal/session"
	"github.com/kagisom/localconnect-backend/internal/user"
)

func newTestApp(users user.Repository, mockUserID string) (*fiber.App, *InMemoryRepository) {
	repo := NewInMemoryRepository(users, nil)
	app := fiber.New()
	app.Use(auth.CurrentUser(session.NewInMemoryRepository(nil), mockUserID))
	NewHandler(NewService(repo)).RegisterProtectedRoutes(app)
	return app, repo
}

func TestCreateTransaction_Unauthenticated(t *testing.T) {
	users := user.NewInMemoryRepository(nil)
	app, _ := newTestApp(users, "")

	req := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(`{"amount":10,"type":"topup","provider":"orange_money","status":"completed"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
	var body map[string]string
	_ = json.NewDecoder(res.Body).Decode(&body)
	if body["message"] == "" {
		t.Fatalf("expected message in 401 body")
	}
}

func TestCreateTransaction_CompletedCreditsBalance(t *testing.T) {
	users := user.NewInMemoryRepository([]user.User{{ID: "user-1", Balance: 100}})
	app, _ := newTestApp(users, "user-1")

	req := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(`{"amount":50,"type":"topup","provider":"orange_money","status":"completed"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	var created Transaction
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("decode transaction: %v", err)
	}
	if created.UserID != "user-1" {
		t.Fatalf("expected transaction owned by acting user, got %q", created.UserID)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("expected server-assigned id and createdAt: %+v", created)
	}

	u, _ := users.GetByID("user-1")
	if u.Balance != 150 {
		t.Fatalf("expected balance 150 after completed topup, got %v", u.Balance)
	}
}

func TestCreateTransaction_PendingDoesNotCredit(t *testing.T) {
	users := user.NewInMemoryRepository([]user.User{{ID: "user-1", Balance: 100}})
	app, _ := newTestApp(users, "user-1")

	req := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(`{"amount":50,"type":"payment","provider":"orange_money","status":"pending"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	u, _ := users.GetByID("user-1")
	if u.Balance != 100 {
		t.Fatalf("pending transaction must not touch the balance, got %v", u.Balance)
	}
}

func TestCreateTransaction_RejectsUnknownType(t *testing.T) {
	users := user.NewInMemoryRepository([]user.User{{ID: "user-1"}})
	app, _ := newTestApp(users, "user-1")

	req := httptest.NewRequest("POST", "/api/transactions", strings.NewReader(`{"amount":50,"type":"refund","provider":"orange_money","status":"pending"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	var body map[string]string
	_ = json.NewDecoder(res.Body).Decode(&body)
	if body["field"] != "type" {
		t.Fatalf("expected field 'type', got %q", body["field"])
	}
}

// The balance credit is a single atomic increment, so concurrent completed
// transactions for the same user must all land.
func TestConcurrentCompletions_NoLostUpdate(t *testing.T) {
	users := user.NewInMemoryRepository([]user.User{{ID: "user-1", Balance: 100}})
	repo := NewInMemoryRepository(users, nil)

	const workers = 10
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.Create(Transaction{
				UserID:   "user-1",
				Amount:   25,
				Type:     TypeTopup,
				Provider: "orange_money",
				Status:   StatusCompleted,
			})
			if err != nil {
				t.Errorf("create failed: %v", err)
			}
		}()
	}
	wg.Wait()

	u, _ := users.GetByID("user-1")
	if want := 100 + float64(workers)*25; u.Balance != want {
		t.Fatalf("lost update: expected balance %v, got %v", want, u.Balance)
	}
}
