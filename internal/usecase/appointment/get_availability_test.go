package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
)

func TestGetAvailabilityInvalidDate(t *testing.T) {
	uc := NewGetAvailability(newFakeRepo())

	for _, date := range []string{"", "tomorrow", "01-09-2026", "2026-13-01"} {
		_, err := uc.Execute(context.Background(), date)
		if !httperr.IsBusiness(err, "invalid_date") {
			t.Errorf("date %q: expected invalid_date, got %v", date, err)
		}
	}
}

func TestGetAvailabilityUnconfiguredStore(t *testing.T) {
	repo := newFakeRepo()
	repo.configured = false
	// Even existing rows cannot be consulted without a remote store.
	repo.appointments = []models.Appointment{
		{ID: "a1", Date: "2026-09-01", Time: "10:00", Status: "confirmed"},
	}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if len(slots) != 21 {
		t.Fatalf("unconfigured store advertises the full universe, got %d", len(slots))
	}
}

func TestGetAvailabilityListFailureFallsBack(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("sheet down")
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("list failures degrade, not error: %v", err)
	}
	if len(slots) != 21 {
		t.Fatalf("expected full universe on degraded read, got %d", len(slots))
	}
}

func TestGetAvailabilityExcludesConfirmedOnly(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments = []models.Appointment{
		{ID: "a1", Date: "2026-09-01", Time: "10:00", Status: "confirmed"},
		{ID: "a2", Date: "2026-09-01", Time: "11:00", Status: "cancelled"},
		{ID: "a3", Date: "2026-09-01", Time: "12:00", Status: "completed"},
	}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if len(slots) != 20 {
		t.Fatalf("only the confirmed row blocks a slot, got %d slots", len(slots))
	}
	for _, slot := range slots {
		if slot == "10:00" {
			t.Error("confirmed slot still advertised")
		}
	}
}
