package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-site/internal/models"
)

// Repository is the slice of the record store the appointment
// lifecycle needs. The sheet-backed store implements it; row position
// bookkeeping never leaks past this interface.
type Repository interface {
	// Configured reports whether a remote store backs the records.
	// Availability advertises the full slot universe when it does
	// not: local-mode deployments accept the overbooking risk.
	Configured() bool

	// AppendAppointment assigns an id and persists the record,
	// falling back to local memory when the sheet is unavailable.
	AppendAppointment(ctx context.Context, ap *models.Appointment) error

	// ListAppointments returns every appointment row in store order.
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	// UpdateAppointmentStatus returns false when no row has the id.
	UpdateAppointmentStatus(ctx context.Context, id string, status Status) (bool, error)

	// DeleteAppointment returns false when no row has the id.
	DeleteAppointment(ctx context.Context, id string) (bool, error)

	// EnsureAppointmentIDs assigns fresh ids to rows missing one and
	// returns how many rows changed.
	EnsureAppointmentIDs(ctx context.Context) (int, error)
}
