package sheets

import (
	"context"
	"fmt"

	"github.com/vfg2006/ads-report-api/internal/config"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const valueInputUserEntered = "USER_ENTERED"

// API é o subconjunto do Google Sheets v4 usado pelo Writer
type API interface {
	GetSpreadsheet(ctx context.Context, spreadsheetID string) (*gsheets.Spreadsheet, error)
	BatchUpdate(ctx context.Context, spreadsheetID string, req *gsheets.BatchUpdateSpreadsheetRequest) error
	GetValues(ctx context.Context, spreadsheetID, rng string) ([][]any, error)
	UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error
	ClearValues(ctx context.Context, spreadsheetID, rng string) error
	AppendValues(ctx context.Context, spreadsheetID, rng string, values [][]any) (int64, error)
}

type sheetsAPI struct {
	srv *gsheets.Service
}

// NewService autentica com a conta de serviço (JWT) e devolve o cliente do Sheets
func NewService(ctx context.Context, cfg *config.Config) (API, error) {
	if cfg.Google.ServiceAccountEmail == "" || cfg.Google.PrivateKey == "" {
		return nil, fmt.Errorf("sheets: credenciais da conta de serviço não configuradas")
	}

	jwtConfig := &jwt.Config{
		Email:      cfg.Google.ServiceAccountEmail,
		PrivateKey: []byte(cfg.Google.PrivateKey),
		Scopes:     []string{gsheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	srv, err := gsheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("sheets: erro ao criar cliente: %w", err)
	}

	return &sheetsAPI{srv: srv}, nil
}

func (a *sheetsAPI) GetSpreadsheet(ctx context.Context, spreadsheetID string) (*gsheets.Spreadsheet, error) {
	return a.srv.Spreadsheets.Get(spreadsheetID).IncludeGridData(false).Context(ctx).Do()
}

func (a *sheetsAPI) BatchUpdate(ctx context.Context, spreadsheetID string, req *gsheets.BatchUpdateSpreadsheetRequest) error {
	_, err := a.srv.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do()
	return err
}

func (a *sheetsAPI) GetValues(ctx context.Context, spreadsheetID, rng string) ([][]any, error) {
	resp, err := a.srv.Spreadsheets.Values.Get(spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (a *sheetsAPI) UpdateValues(ctx context.Context, spreadsheetID, rng string, values [][]any) error {
	_, err := a.srv.Spreadsheets.Values.Update(spreadsheetID, rng, &gsheets.ValueRange{Values: values}).
		ValueInputOption(valueInputUserEntered).
		Context(ctx).
		Do()
	return err
}

func (a *sheetsAPI) ClearValues(ctx context.Context, spreadsheetID, rng string) error {
	_, err := a.srv.Spreadsheets.Values.Clear(spreadsheetID, rng, &gsheets.ClearValuesRequest{}).Context(ctx).Do()
	return err
}

func (a *sheetsAPI) AppendValues(ctx context.Context, spreadsheetID, rng string, values [][]any) (int64, error) {
	resp, err := a.srv.Spreadsheets.Values.Append(spreadsheetID, rng, &gsheets.ValueRange{Values: values}).
		ValueInputOption(valueInputUserEntered).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return 0, err
	}

	if resp.Updates == nil {
		return int64(len(values)), nil
	}
	return resp.Updates.UpdatedRows, nil
}
