package appointment

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	domain "github.com/BruksfildServices01/barbershop-site/internal/domain/appointment"
)

type ReconcilePast struct {
	repo    domain.Repository
	delay   time.Duration
	running atomic.Bool
}

// NewReconcilePast builds the sweep that closes out past-due
// appointments. delay paces the sequential status writes so the sweep
// does not hammer the remote API's rate limits.
func NewReconcilePast(repo domain.Repository, delay time.Duration) *ReconcilePast {
	return &ReconcilePast{repo: repo, delay: delay}
}

// Execute transitions every pending or confirmed appointment whose
// date and time are strictly before now to completed, one write at a
// time. Individual failures are logged and skipped so one bad row
// cannot abort the sweep. Returns the ids that were updated.
//
// Only one sweep runs at a time; a call that finds one already in
// flight returns immediately with no work done.
func (uc *ReconcilePast) Execute(ctx context.Context, now time.Time) ([]string, error) {
	if !uc.running.CompareAndSwap(false, true) {
		return nil, nil
	}
	defer uc.running.Store(false)

	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	updated := []string{}
	for _, ap := range appointments {
		status := domain.Status(ap.Status)
		if status != domain.StatusPending && status != domain.StatusConfirmed {
			continue
		}
		startsAt, ok := ap.StartsAt(now.Location())
		if !ok || !startsAt.Before(now) {
			continue
		}

		if len(updated) > 0 && uc.delay > 0 {
			select {
			case <-ctx.Done():
				return updated, ctx.Err()
			case <-time.After(uc.delay):
			}
		}

		found, err := uc.repo.UpdateAppointmentStatus(ctx, ap.ID, domain.StatusCompleted)
		if err != nil || !found {
			log.Printf("reconcile: skipping appointment %s: found=%v err=%v", ap.ID, found, err)
			continue
		}
		updated = append(updated, ap.ID)
	}

	return updated, nil
}
