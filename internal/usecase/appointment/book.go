package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/barbershop-site/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-site/internal/followup"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
	"github.com/BruksfildServices01/barbershop-site/internal/sheetstore"
	"github.com/BruksfildServices01/barbershop-site/internal/validators"
)

type BookingInput struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Date    string // YYYY-MM-DD
	Time    string // HH:MM
	Notes   string
}

func (in BookingInput) Validate() validators.FieldErrors {
	var errs validators.FieldErrors

	if !validators.MinLen(in.Name, 2) {
		errs = append(errs, validators.FieldError{Field: "name", Message: "Name must be at least 2 characters"})
	}
	if !validators.IsEmail(in.Email) {
		errs = append(errs, validators.FieldError{Field: "email", Message: "Please provide a valid email"})
	}
	if !validators.MinLen(in.Phone, 10) {
		errs = append(errs, validators.FieldError{Field: "phone", Message: "Phone number must be at least 10 characters"})
	}
	if !validators.NotEmpty(in.Service) {
		errs = append(errs, validators.FieldError{Field: "service", Message: "Service is required"})
	}
	if !validators.IsISODate(in.Date) {
		errs = append(errs, validators.FieldError{Field: "date", Message: "Valid date is required"})
	}
	if !validators.IsTime24h(in.Time) {
		errs = append(errs, validators.FieldError{Field: "time", Message: "Valid time format required (HH:MM)"})
	}

	return errs
}

type Book struct {
	dispatcher followup.Dispatcher
	newID      func() string
	now        func() time.Time
}

func NewBook(dispatcher followup.Dispatcher) *Book {
	return &Book{
		dispatcher: dispatcher,
		newID:      sheetstore.NewRecordID,
		now:        time.Now,
	}
}

// Execute validates the input and returns the accepted appointment
// immediately. Persistence and the confirmation email run as a
// detached followup job: their failure never fails or delays the
// booking response. Nothing here checks the slot against existing
// bookings, so two concurrent requests for the same slot can both be
// accepted; availability filtering is the only guard.
func (uc *Book) Execute(_ context.Context, in BookingInput) (*models.Appointment, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, errs
	}

	ap := &models.Appointment{
		ID:        uc.newID(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Service:   strings.TrimSpace(in.Service),
		Barber:    models.DefaultBarber,
		Date:      in.Date,
		Time:      in.Time,
		Notes:     in.Notes,
		Status:    string(domain.InitialStatus()),
		CreatedAt: uc.now(),
	}

	uc.dispatcher.Dispatch(followup.Job{Appointment: *ap})
	return ap, nil
}
