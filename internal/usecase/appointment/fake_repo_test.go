package appointment

import (
	"context"
	"sync"

	domain "github.com/BruksfildServices01/barbershop-site/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-site/internal/followup"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
)

// fakeRepo is an in-memory domain.Repository for usecase tests.
type fakeRepo struct {
	mu           sync.Mutex
	appointments []models.Appointment
	configured   bool

	listErr   error
	updateErr map[string]error // per-id failures
	nextID    int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{configured: true, updateErr: map[string]error{}}
}

func (r *fakeRepo) Configured() bool { return r.configured }

func (r *fakeRepo) AppendAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ap.ID == "" {
		r.nextID++
		ap.ID = "fake-" + string(rune('0'+r.nextID))
	}
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *fakeRepo) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.Appointment, len(r.appointments))
	copy(out, r.appointments)
	return out, nil
}

func (r *fakeRepo) UpdateAppointmentStatus(_ context.Context, id string, status domain.Status) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.updateErr[id]; err != nil {
		return false, err
	}
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			r.appointments[i].Status = string(status)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) EnsureAppointmentIDs(_ context.Context) (int, error) {
	return 0, nil
}

func (r *fakeRepo) statusOf(id string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ap := range r.appointments {
		if ap.ID == id {
			return ap.Status
		}
	}
	return ""
}

// syncDispatcher persists inline so tests see the booking immediately.
type syncDispatcher struct {
	repo domain.Repository
}

func (d syncDispatcher) Dispatch(job followup.Job) {
	ap := job.Appointment
	_ = d.repo.AppendAppointment(context.Background(), &ap)
}
