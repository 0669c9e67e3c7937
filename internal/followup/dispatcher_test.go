package followup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/barbershop-site/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
	"github.com/BruksfildServices01/barbershop-site/internal/notify"
)

type memRepo struct {
	mu           sync.Mutex
	appointments []models.Appointment
	appendErrs   int // fail this many appends before succeeding
}

func (r *memRepo) Configured() bool { return true }

func (r *memRepo) AppendAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErrs > 0 {
		r.appendErrs--
		return errors.New("transient failure")
	}
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *memRepo) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Appointment, len(r.appointments))
	copy(out, r.appointments)
	return out, nil
}

func (r *memRepo) UpdateAppointmentStatus(context.Context, string, domain.Status) (bool, error) {
	return false, nil
}

func (r *memRepo) DeleteAppointment(context.Context, string) (bool, error) { return false, nil }

func (r *memRepo) EnsureAppointmentIDs(context.Context) (int, error) { return 0, nil }

type countingSender struct {
	mu   sync.Mutex
	sent int
}

func (s *countingSender) Send(context.Context, notify.EmailMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent++
	return nil
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestWorkerPersistsAndEmails(t *testing.T) {
	repo := &memRepo{}
	sender := &countingSender{}
	w := NewWorker(repo, notify.NewServiceWithSender(sender, "admin@example.com")).WithRetry(1, 0)

	w.Dispatch(Job{Appointment: models.Appointment{
		ID: "a1", Name: "Jo Lee", Email: "jo@example.com", Date: "2026-09-01", Time: "10:00",
	}})

	waitFor(t, func() bool {
		list, _ := repo.ListAppointments(context.Background())
		return len(list) == 1
	})
	waitFor(t, func() bool {
		sender.mu.Lock()
		defer sender.mu.Unlock()
		return sender.sent == 1
	})

	list, _ := repo.ListAppointments(context.Background())
	if list[0].ID != "a1" {
		t.Errorf("persisted wrong appointment: %v", list[0])
	}
}

func TestWorkerRetriesTransientFailures(t *testing.T) {
	repo := &memRepo{appendErrs: 2}
	sender := &countingSender{}
	w := NewWorker(repo, notify.NewServiceWithSender(sender, "admin@example.com")).WithRetry(3, 0)

	w.Dispatch(Job{Appointment: models.Appointment{ID: "a1", Email: "jo@example.com"}})

	waitFor(t, func() bool {
		list, _ := repo.ListAppointments(context.Background())
		return len(list) == 1
	})
}

func TestWorkerGivesUpAfterMaxAttempts(t *testing.T) {
	repo := &memRepo{appendErrs: 10}
	sender := &countingSender{}
	w := NewWorker(repo, notify.NewServiceWithSender(sender, "admin@example.com")).WithRetry(2, 0)

	w.Dispatch(Job{Appointment: models.Appointment{ID: "a1", Email: "jo@example.com"}})

	// The email still goes out even when persistence exhausted retries.
	waitFor(t, func() bool {
		sender.mu.Lock()
		defer sender.mu.Unlock()
		return sender.sent == 1
	})
	list, _ := repo.ListAppointments(context.Background())
	if len(list) != 0 {
		t.Fatalf("persistence should have given up, got %d rows", len(list))
	}
}
