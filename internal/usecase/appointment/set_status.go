package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barbershop-site/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-site/internal/httperr"
)

type SetStatus struct {
	repo domain.Repository
}

func NewSetStatus(repo domain.Repository) *SetStatus {
	return &SetStatus{repo: repo}
}

// Execute changes an appointment's status. An unknown id reports
// (false, nil) and leaves the store untouched. The transition table
// is enforced here, not in the store: terminal states stay terminal.
func (uc *SetStatus) Execute(ctx context.Context, id string, status domain.Status) (bool, error) {
	if !status.Valid() {
		return false, httperr.ErrBusiness("invalid_status")
	}

	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return false, err
	}

	var current *domain.Status
	for i := range appointments {
		if appointments[i].ID == id {
			s := domain.Status(appointments[i].Status)
			current = &s
			break
		}
	}
	if current == nil {
		return false, nil
	}

	if err := domain.CanTransition(*current, status); err != nil {
		return false, err
	}

	return uc.repo.UpdateAppointmentStatus(ctx, id, status)
}
