package sheetstore

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/BruksfildServices01/barbershop-site/internal/models"
)

// Service rows, columns A..G:
// id, name, description, duration, price, category, active

func serviceToRow(svc *models.Service) []string {
	return []string{
		svc.ID,
		svc.Name,
		svc.Description,
		strconv.Itoa(svc.Duration),
		strconv.FormatFloat(svc.Price, 'f', -1, 64),
		svc.Category,
		strconv.FormatBool(svc.Active),
	}
}

func serviceFromRow(row []string) models.Service {
	duration, _ := strconv.Atoi(cell(row, 3))
	price, _ := strconv.ParseFloat(cell(row, 4), 64)

	return models.Service{
		ID:          cell(row, 0),
		Name:        cell(row, 1),
		Description: cell(row, 2),
		Duration:    duration,
		Price:       price,
		Category:    cell(row, 5),
		// Legacy rows leave the column empty, meaning active.
		Active: cell(row, 6) != "false",
	}
}

func (s *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	if s.values == nil {
		return []models.Service{}, nil
	}

	rows, err := s.values.Get(ctx, rangeServices)
	if err != nil {
		log.Printf("sheetstore: list services failed: %v", err)
		return []models.Service{}, nil
	}

	out := []models.Service{}
	for _, row := range dataRows(rows) {
		if blankRow(row) {
			continue
		}
		out = append(out, serviceFromRow(row))
	}
	return out, nil
}

// AddService assigns the next sequential id and appends the row.
// Unlike appointments there is no local fallback: a sheet failure is
// surfaced to the admin who is editing the catalog.
func (s *Store) AddService(ctx context.Context, svc *models.Service) error {
	existing, err := s.ListServices(ctx)
	if err != nil {
		return err
	}
	svc.ID = nextSequentialID(serviceIDs(existing))

	if s.values == nil {
		return nil
	}
	if err := s.values.Append(ctx, rangeServices, serviceToRow(svc)); err != nil {
		return fmt.Errorf("sheetstore: add service: %w", err)
	}
	return nil
}

func (s *Store) UpdateService(ctx context.Context, id string, svc *models.Service) (bool, error) {
	if s.values == nil {
		return true, nil
	}

	idx, err := s.rowIndexByID(ctx, rangeServices, id)
	if err != nil {
		return false, err
	}
	if idx < 0 {
		return false, nil
	}

	svc.ID = id
	writeRange := fmt.Sprintf("services!A%d:G%d", rowNumber(idx), rowNumber(idx))
	if err := s.values.Update(ctx, writeRange, [][]string{serviceToRow(svc)}); err != nil {
		return false, fmt.Errorf("sheetstore: update service: %w", err)
	}
	return true, nil
}

func (s *Store) DeleteService(ctx context.Context, id string) (bool, error) {
	if s.values == nil {
		return true, nil
	}

	idx, err := s.rowIndexByID(ctx, rangeServices, id)
	if err != nil {
		return false, err
	}
	if idx < 0 {
		return false, nil
	}

	clearRange := fmt.Sprintf("services!A%d:G%d", rowNumber(idx), rowNumber(idx))
	if err := s.values.Clear(ctx, clearRange); err != nil {
		return false, fmt.Errorf("sheetstore: delete service: %w", err)
	}
	return true, nil
}

func serviceIDs(services []models.Service) []string {
	ids := make([]string, len(services))
	for i, svc := range services {
		ids[i] = svc.ID
	}
	return ids
}

// nextSequentialID is max numeric id + 1; non-numeric ids count as 0.
func nextSequentialID(ids []string) string {
	max := 0
	for _, id := range ids {
		if n, err := strconv.Atoi(id); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

// rowIndexByID finds the zero-based data row whose first column is id.
func (s *Store) rowIndexByID(ctx context.Context, readRange, id string) (int, error) {
	rows, err := s.values.Get(ctx, readRange)
	if err != nil {
		return -1, fmt.Errorf("sheetstore: locate row: %w", err)
	}
	for i, row := range dataRows(rows) {
		if cell(row, 0) == id {
			return i, nil
		}
	}
	return -1, nil
}
