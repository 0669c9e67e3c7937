package appointment

import "testing"

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []Status{"", "done", "CONFIRMED", "unknown"} {
		if s.Valid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		current Status
		next    Status
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
	}

	for _, tt := range tests {
		err := CanTransition(tt.current, tt.next)
		if tt.allowed && err != nil {
			t.Errorf("%s -> %s should be allowed, got %v", tt.current, tt.next, err)
		}
		if !tt.allowed && err == nil {
			t.Errorf("%s -> %s should be rejected", tt.current, tt.next)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	if !StatusCompleted.IsTerminal() || !StatusCancelled.IsTerminal() {
		t.Error("completed and cancelled are terminal")
	}
	if StatusPending.IsTerminal() || StatusConfirmed.IsTerminal() {
		t.Error("pending and confirmed are not terminal")
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusConfirmed {
		t.Fatalf("public bookings start confirmed, got %s", InitialStatus())
	}
}
