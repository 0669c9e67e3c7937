package sheetstore

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/BruksfildServices01/barbershop-site/internal/models"
)

// Work rows, columns A..G:
// id, title, description, category, image_url, active, order

func workToRow(item *models.WorkItem) []string {
	order := ""
	if item.Order != 0 {
		order = strconv.Itoa(item.Order)
	}
	return []string{
		item.ID,
		item.Title,
		item.Description,
		item.Category,
		item.ImageURL,
		strconv.FormatBool(item.Active),
		order,
	}
}

func workFromRow(row []string) models.WorkItem {
	order, _ := strconv.Atoi(cell(row, 6))

	return models.WorkItem{
		ID:          cell(row, 0),
		Title:       cell(row, 1),
		Description: cell(row, 2),
		Category:    cell(row, 3),
		ImageURL:    cell(row, 4),
		Active:      cell(row, 5) != "false",
		Order:       order,
	}
}

func (s *Store) ListWork(ctx context.Context) ([]models.WorkItem, error) {
	if s.values == nil {
		return []models.WorkItem{}, nil
	}

	rows, err := s.values.Get(ctx, rangeWork)
	if err != nil {
		log.Printf("sheetstore: list work failed: %v", err)
		return []models.WorkItem{}, nil
	}

	out := []models.WorkItem{}
	for _, row := range dataRows(rows) {
		if blankRow(row) {
			continue
		}
		out = append(out, workFromRow(row))
	}
	return out, nil
}

// AddWork mirrors AddService: sequential id, surfaced sheet errors.
func (s *Store) AddWork(ctx context.Context, item *models.WorkItem) error {
	existing, err := s.ListWork(ctx)
	if err != nil {
		return err
	}
	ids := make([]string, len(existing))
	for i, w := range existing {
		ids[i] = w.ID
	}
	item.ID = nextSequentialID(ids)

	if s.values == nil {
		return nil
	}
	if err := s.values.Append(ctx, rangeWork, workToRow(item)); err != nil {
		return fmt.Errorf("sheetstore: add work: %w", err)
	}
	return nil
}

func (s *Store) UpdateWork(ctx context.Context, id string, item *models.WorkItem) (bool, error) {
	if s.values == nil {
		return true, nil
	}

	idx, err := s.rowIndexByID(ctx, rangeWork, id)
	if err != nil {
		return false, err
	}
	if idx < 0 {
		return false, nil
	}

	item.ID = id
	writeRange := fmt.Sprintf("work!A%d:G%d", rowNumber(idx), rowNumber(idx))
	if err := s.values.Update(ctx, writeRange, [][]string{workToRow(item)}); err != nil {
		return false, fmt.Errorf("sheetstore: update work: %w", err)
	}
	return true, nil
}

func (s *Store) DeleteWork(ctx context.Context, id string) (bool, error) {
	if s.values == nil {
		return true, nil
	}

	idx, err := s.rowIndexByID(ctx, rangeWork, id)
	if err != nil {
		return false, err
	}
	if idx < 0 {
		return false, nil
	}

	clearRange := fmt.Sprintf("work!A%d:G%d", rowNumber(idx), rowNumber(idx))
	if err := s.values.Clear(ctx, clearRange); err != nil {
		return false, fmt.Errorf("sheetstore: delete work: %w", err)
	}
	return true, nil
}
