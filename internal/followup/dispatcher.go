// Package followup runs the work a booking response does not wait
// for: persisting the appointment and emailing the confirmation.
// Bookings are accepted optimistically; everything here is
// best-effort with bounded retries and must never reach the caller.
package followup

import (
	"context"
	"log"
	"time"

	domain "github.com/BruksfildServices01/barbershop-site/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
	"github.com/BruksfildServices01/barbershop-site/internal/notify"
)

type Job struct {
	Appointment models.Appointment
}

// Dispatcher accepts followup jobs. The async implementation below is
// the production one; tests substitute a synchronous stand-in.
type Dispatcher interface {
	Dispatch(job Job)
}

type Worker struct {
	repo        domain.Repository
	mailer      *notify.Service
	queue       chan Job
	maxAttempts int
	retryDelay  time.Duration
	timeout     time.Duration
}

func NewWorker(repo domain.Repository, mailer *notify.Service) *Worker {
	w := &Worker{
		repo:        repo,
		mailer:      mailer,
		queue:       make(chan Job, 100),
		maxAttempts: 3,
		retryDelay:  2 * time.Second,
		timeout:     30 * time.Second,
	}
	go w.run()
	return w
}

func (w *Worker) WithRetry(maxAttempts int, delay time.Duration) *Worker {
	if maxAttempts > 0 {
		w.maxAttempts = maxAttempts
	}
	if delay >= 0 {
		w.retryDelay = delay
	}
	return w
}

// Dispatch enqueues without blocking. A full queue drops the job;
// the booking was already acknowledged and must not be held hostage.
func (w *Worker) Dispatch(job Job) {
	select {
	case w.queue <- job:
	default:
		log.Printf("followup: queue full, dropping job for appointment %s", job.Appointment.ID)
	}
}

func (w *Worker) run() {
	for job := range w.queue {
		w.process(job)
	}
}

func (w *Worker) process(job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	ap := job.Appointment

	w.attempt("persist", ap.ID, func() error {
		return w.repo.AppendAppointment(ctx, &ap)
	})
	w.attempt("confirmation email", ap.ID, func() error {
		return w.mailer.SendBookingConfirmation(ctx, ap)
	})
}

func (w *Worker) attempt(name, id string, fn func() error) {
	var err error
	for i := 0; i < w.maxAttempts; i++ {
		if err = fn(); err == nil {
			return
		}
		if i < w.maxAttempts-1 {
			time.Sleep(w.retryDelay)
		}
	}
	log.Printf("followup: %s failed for appointment %s after %d attempts: %v",
		name, id, w.maxAttempts, err)
}
