package sheetstore

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/BruksfildServices01/barbershop-site/internal/models"
)

// Message rows, columns A..G:
// id, name, email, phone, message, createdAt, handled

func messageToRow(msg *models.Message) []string {
	return []string{
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.Message,
		msg.CreatedAt.Format(time.RFC3339),
		strconv.FormatBool(msg.Handled),
	}
}

func messageFromRow(row []string) models.Message {
	createdAt, _ := time.Parse(time.RFC3339, cell(row, 5))

	return models.Message{
		ID:        cell(row, 0),
		Name:      cell(row, 1),
		Email:     cell(row, 2),
		Phone:     cell(row, 3),
		Message:   cell(row, 4),
		CreatedAt: createdAt,
		Handled:   cell(row, 6) == "true",
	}
}

// AddMessage never fails the caller; a sheet failure lands the
// message in the local list instead.
func (s *Store) AddMessage(ctx context.Context, msg *models.Message) error {
	if msg.ID == "" {
		msg.ID = s.newID()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = s.now()
	}

	if s.values == nil {
		s.appendLocalMessage(*msg)
		return nil
	}

	if err := s.values.Append(ctx, rangeMessages, messageToRow(msg)); err != nil {
		log.Printf("sheetstore: append message failed, using local fallback: %v", err)
		s.appendLocalMessage(*msg)
	}
	return nil
}

func (s *Store) appendLocalMessage(msg models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.localMessages = append(s.localMessages, msg)
}

// ListMessages concatenates sheet rows with the local list. Messages
// are the one entity where both are returned: a message that fell
// back locally after a sheet failure must still reach the admin.
func (s *Store) ListMessages(ctx context.Context) ([]models.Message, error) {
	out := []models.Message{}

	if s.values != nil {
		rows, err := s.values.Get(ctx, rangeMessages)
		if err != nil {
			log.Printf("sheetstore: list messages failed, returning local only: %v", err)
		} else {
			for _, row := range dataRows(rows) {
				if blankRow(row) {
					continue
				}
				out = append(out, messageFromRow(row))
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out = append(out, s.localMessages...)
	return out, nil
}
