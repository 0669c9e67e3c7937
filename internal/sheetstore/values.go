package sheetstore

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/BruksfildServices01/barbershop-site/internal/config"
)

// valuesAPI is the slice of the spreadsheet values surface the store
// uses. Tests swap in an in-memory grid.
type valuesAPI interface {
	Get(ctx context.Context, readRange string) ([][]string, error)
	Append(ctx context.Context, writeRange string, row []string) error
	Update(ctx context.Context, writeRange string, rows [][]string) error
	Clear(ctx context.Context, clearRange string) error
}

type googleValues struct {
	svc     *sheets.Service
	sheetID string
}

func newGoogleValues(ctx context.Context, cfg *config.Config) (*googleValues, error) {
	jwtCfg := &jwt.Config{
		Email:      cfg.GoogleServiceAccountEmail,
		PrivateKey: []byte(cfg.GooglePrivateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, err
	}

	return &googleValues{svc: svc, sheetID: cfg.SheetID}, nil
}

func (g *googleValues) Get(ctx context.Context, readRange string) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.sheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, v := range raw {
			row[i] = fmt.Sprint(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (g *googleValues) Append(ctx context.Context, writeRange string, row []string) error {
	_, err := g.svc.Spreadsheets.Values.
		Append(g.sheetID, writeRange, valueRange([][]string{row})).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

func (g *googleValues) Update(ctx context.Context, writeRange string, rows [][]string) error {
	_, err := g.svc.Spreadsheets.Values.
		Update(g.sheetID, writeRange, valueRange(rows)).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

func (g *googleValues) Clear(ctx context.Context, clearRange string) error {
	_, err := g.svc.Spreadsheets.Values.
		Clear(g.sheetID, clearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	return err
}

func valueRange(rows [][]string) *sheets.ValueRange {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		values[i] = cells
	}
	return &sheets.ValueRange{Values: values}
}
