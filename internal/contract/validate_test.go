package contract_test

import (
	"testing"

	"github.com/kagisom/localconnect-backend/internal/contract"
)

func floatPtr(v float64) *float64 { return &v }

func validJobInput() contract.CreateJobInput {
	return contract.CreateJobInput{
		Title:        "Barista",
		Company:      "Blue Bottle Coffee",
		Description:  "Morning shift",
		Category:     "hospitality",
		Lat:          floatPtr(-24.65),
		Lng:          floatPtr(25.90),
		Type:         "part-time",
		ContactPhone: "+267 71 234 567",
	}
}

func TestValidate_AcceptsValidInput(t *testing.T) {
	input := validJobInput()
	if ve := contract.Validate(&input); ve != nil {
		t.Fatalf("expected valid input, got %q on %q", ve.Message, ve.Field)
	}
}

func TestValidate_ReportsFirstViolationOnly(t *testing.T) {
	input := contract.CreateJobInput{}
	ve := contract.Validate(&input)
	if ve == nil {
		t.Fatal("expected a violation for empty input")
	}
	if ve.Field != "title" {
		t.Fatalf("expected first field 'title', got %q", ve.Field)
	}
	if ve.Message != "title is required" {
		t.Fatalf("unexpected message %q", ve.Message)
	}
}

func TestValidate_FieldNamesUseJSONTags(t *testing.T) {
	input := validJobInput()
	input.ContactPhone = ""
	ve := contract.Validate(&input)
	if ve == nil {
		t.Fatal("expected a violation")
	}
	if ve.Field != "contactPhone" {
		t.Fatalf("expected json tag name 'contactPhone', got %q", ve.Field)
	}
}

func TestValidate_ZeroCoordinateIsValid(t *testing.T) {
	input := validJobInput()
	input.Lat = floatPtr(0)
	if ve := contract.Validate(&input); ve != nil {
		t.Fatalf("lat 0 must be accepted, got %q", ve.Message)
	}
}

func TestValidate_MissingCoordinateRejected(t *testing.T) {
	input := validJobInput()
	input.Lat = nil
	ve := contract.Validate(&input)
	if ve == nil || ve.Field != "lat" {
		t.Fatalf("expected 'lat' violation, got %+v", ve)
	}
}

func TestValidate_TransactionTypeOneOf(t *testing.T) {
	input := contract.CreateTransactionInput{
		Amount:   floatPtr(25),
		Type:     "refund",
		Provider: "orange_money",
		Status:   "completed",
	}
	ve := contract.Validate(&input)
	if ve == nil {
		t.Fatal("expected a violation for unknown type")
	}
	if ve.Field != "type" {
		t.Fatalf("expected field 'type', got %q", ve.Field)
	}
	if ve.Message != "type must be one of: payment topup" {
		t.Fatalf("unexpected message %q", ve.Message)
	}
}

func TestValidate_TransactionStatusOneOf(t *testing.T) {
	input := contract.CreateTransactionInput{
		Amount:   floatPtr(25),
		Type:     "topup",
		Provider: "orange_money",
		Status:   "reversed",
	}
	ve := contract.Validate(&input)
	if ve == nil || ve.Field != "status" {
		t.Fatalf("expected 'status' violation, got %+v", ve)
	}
}

func TestAll_CoversEveryRoute(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range contract.All() {
		if r.Method == "" || r.Path == "" {
			t.Fatalf("incomplete route entry: %+v", r)
		}
		key := r.Method + " " + r.Path
		if seen[key] {
			t.Fatalf("duplicate route entry %s", key)
		}
		seen[key] = true
	}
	for _, key := range []string{
		"GET /api/jobs",
		"GET /api/jobs/:id",
		"POST /api/jobs",
		"GET /api/profile/:userId",
		"POST /api/profile/skills",
		"POST /api/transactions",
		"GET /api/health",
	} {
		if !seen[key] {
			t.Errorf("registry is missing %s", key)
		}
	}
}
