package sheetstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbershop-site/internal/config"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
)

// Sheet tab ranges. "appoiments" is spelled this way in the production
// spreadsheet; renaming the tab would orphan existing rows.
const (
	rangeAppointments = "appoiments!A:K"
	rangeServices     = "services!A:G"
	rangeWork         = "work!A:G"
	rangeMessages     = "messages!A:G"
)

// Store is the record store for every entity on the site. It writes
// to a Google Sheet when one is configured and keeps explicit local
// fallback lists otherwise. Local data lives only for the lifetime of
// the process; that is the documented single-instance tradeoff.
//
// The mutex guards the local slices for memory safety. It is not a
// booking serialization point: two concurrent bookings of the same
// slot can still both land (see the availability usecase).
type Store struct {
	values valuesAPI // nil in local-only mode

	mu                sync.Mutex
	localAppointments []models.Appointment
	localMessages     []models.Message

	newID func() string
	now   func() time.Time
}

// New builds the store from config. A deployment without sheet
// credentials gets a working local-only store, not an error.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	s := &Store{
		newID: NewRecordID,
		now:   time.Now,
	}

	if !cfg.SheetsConfigured() {
		return s, nil
	}

	values, err := newGoogleValues(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("sheetstore: init sheets client: %w", err)
	}
	s.values = values
	return s, nil
}

// Configured reports whether the remote sheet is in use.
func (s *Store) Configured() bool {
	return s.values != nil
}

// NewRecordID generates a timestamp-based opaque id. The millisecond
// prefix keeps rows roughly sorted by creation; the random suffix is
// the same shape the id repair migration writes, and keeps ids unique
// when two records land in the same millisecond.
func NewRecordID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// cell returns row[i] or "" when the row is short; sheet rows drop
// trailing empty cells.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// blankRow reports whether every cell is empty, which is what a
// cleared (deleted) sheet row looks like.
func blankRow(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}

// rowNumber translates a zero-based data index into the 1-based sheet
// row, accounting for the header in row 1.
func rowNumber(dataIndex int) int {
	return dataIndex + 2
}
