package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-site/internal/domain/appointment"
)

type RepairIDs struct {
	repo domain.Repository
}

func NewRepairIDs(repo domain.Repository) *RepairIDs {
	return &RepairIDs{repo: repo}
}

// Execute backfills ids on legacy rows that were written without one.
// Idempotent: a second run finds nothing to repair.
func (uc *RepairIDs) Execute(ctx context.Context) (int, error) {
	return uc.repo.EnsureAppointmentIDs(ctx)
}
