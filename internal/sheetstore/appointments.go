package sheetstore

import (
	"context"
	"fmt"
	"log"
	"time"

	domain "github.com/BruksfildServices01/barbershop-site/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
)

// Appointment rows, columns A..K:
// id, name, phone, email, service, barber, date, time, notes, status, createdAt

func appointmentToRow(ap *models.Appointment) []string {
	return []string{
		ap.ID,
		ap.Name,
		ap.Phone,
		ap.Email,
		ap.Service,
		ap.Barber,
		ap.Date,
		ap.Time,
		ap.Notes,
		ap.Status,
		ap.CreatedAt.Format(time.RFC3339),
	}
}

func appointmentFromRow(row []string) models.Appointment {
	status := cell(row, 9)
	if status == "" {
		status = string(domain.StatusConfirmed)
	}
	createdAt, _ := time.Parse(time.RFC3339, cell(row, 10))

	return models.Appointment{
		ID:        cell(row, 0),
		Name:      cell(row, 1),
		Phone:     cell(row, 2),
		Email:     cell(row, 3),
		Service:   cell(row, 4),
		Barber:    cell(row, 5),
		Date:      cell(row, 6),
		Time:      cell(row, 7),
		Notes:     cell(row, 8),
		Status:    status,
		CreatedAt: createdAt,
	}
}

// AppendAppointment assigns an id and persists the row. It never
// fails the caller: a sheet failure degrades to the local list.
func (s *Store) AppendAppointment(ctx context.Context, ap *models.Appointment) error {
	if ap.ID == "" {
		ap.ID = s.newID()
	}
	if ap.Barber == "" {
		ap.Barber = models.DefaultBarber
	}
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = s.now()
	}

	if s.values == nil {
		s.appendLocalAppointment(*ap)
		return nil
	}

	if err := s.values.Append(ctx, rangeAppointments, appointmentToRow(ap)); err != nil {
		log.Printf("sheetstore: append appointment failed, using local fallback: %v", err)
		s.appendLocalAppointment(*ap)
	}
	return nil
}

func (s *Store) appendLocalAppointment(ap models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.localAppointments = append(s.localAppointments, ap)
}

// ListAppointments returns sheet rows when a sheet is configured and
// the local list otherwise. The two are never merged: local rows only
// exist before the sheet was configured and would duplicate otherwise.
func (s *Store) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	if s.values == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		out := make([]models.Appointment, len(s.localAppointments))
		copy(out, s.localAppointments)
		return out, nil
	}

	rows, err := s.values.Get(ctx, rangeAppointments)
	if err != nil {
		log.Printf("sheetstore: list appointments failed: %v", err)
		return []models.Appointment{}, nil
	}

	var out []models.Appointment
	for _, row := range dataRows(rows) {
		if blankRow(row) {
			continue
		}
		out = append(out, appointmentFromRow(row))
	}
	return out, nil
}

// UpdateAppointmentStatus rewrites the status column of the row with
// the given id. false means no row carries that id.
func (s *Store) UpdateAppointmentStatus(ctx context.Context, id string, status domain.Status) (bool, error) {
	if s.values == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.localAppointments {
			if s.localAppointments[i].ID == id {
				s.localAppointments[i].Status = string(status)
				return true, nil
			}
		}
		return false, nil
	}

	idx, err := s.appointmentRowIndex(ctx, id)
	if err != nil {
		return false, err
	}
	if idx < 0 {
		return false, nil
	}

	// Status lives in column J of the appointment's sheet row.
	writeRange := fmt.Sprintf("appoiments!J%d", rowNumber(idx))
	if err := s.values.Update(ctx, writeRange, [][]string{{string(status)}}); err != nil {
		return false, fmt.Errorf("sheetstore: update status: %w", err)
	}
	return true, nil
}

// DeleteAppointment clears the row rather than compacting the sheet,
// so row positions of later appointments stay stable.
func (s *Store) DeleteAppointment(ctx context.Context, id string) (bool, error) {
	if s.values == nil {
		return s.deleteLocalAppointment(id), nil
	}

	idx, err := s.appointmentRowIndex(ctx, id)
	if err != nil {
		return false, err
	}
	if idx < 0 {
		return false, nil
	}

	clearRange := fmt.Sprintf("appoiments!A%d:K%d", rowNumber(idx), rowNumber(idx))
	if err := s.values.Clear(ctx, clearRange); err != nil {
		return false, fmt.Errorf("sheetstore: delete appointment: %w", err)
	}

	// Drop any stale local copy from before the sheet was configured.
	s.deleteLocalAppointment(id)
	return true, nil
}

func (s *Store) deleteLocalAppointment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.localAppointments[:0]
	found := false
	for _, ap := range s.localAppointments {
		if ap.ID == id {
			found = true
			continue
		}
		kept = append(kept, ap)
	}
	s.localAppointments = kept
	return found
}

// EnsureAppointmentIDs backfills ids on historical rows created
// before ids existed. Safe to re-run; a second pass finds nothing.
func (s *Store) EnsureAppointmentIDs(ctx context.Context) (int, error) {
	if s.values == nil {
		return 0, nil
	}

	rows, err := s.values.Get(ctx, rangeAppointments)
	if err != nil {
		return 0, fmt.Errorf("sheetstore: ensure ids: %w", err)
	}

	updated := 0
	for i, row := range dataRows(rows) {
		if blankRow(row) || cell(row, 0) != "" {
			continue
		}
		writeRange := fmt.Sprintf("appoiments!A%d", rowNumber(i))
		if err := s.values.Update(ctx, writeRange, [][]string{{s.newID()}}); err != nil {
			return updated, fmt.Errorf("sheetstore: ensure ids row %d: %w", rowNumber(i), err)
		}
		updated++
	}
	return updated, nil
}

// appointmentRowIndex scans the raw rows, cleared ones included, so
// the index always matches the sheet position. -1 means not found.
func (s *Store) appointmentRowIndex(ctx context.Context, id string) (int, error) {
	return s.rowIndexByID(ctx, rangeAppointments, id)
}

// dataRows strips the header row.
func dataRows(rows [][]string) [][]string {
	if len(rows) <= 1 {
		return nil
	}
	return rows[1:]
}
