package exporting

import (
	"bytes"
	"context"
	"time"

	"github.com/vfg2006/ads-report-api/infrastructure/integrator/google/sheets"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/export"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

// Abas escritas pelo SyncSheets, nessa ordem
const (
	SheetMarketingAPI       = "MarketingAPI"
	SheetAds                = "Ads"
	SheetCampaigns          = "Campaigns"
	SheetPerformanceMetrics = "PerformanceMetrics"
)

type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
)

// ParseFormat valida o formato pedido; vazio vira csv
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "":
		return FormatCSV, nil
	case FormatCSV, FormatExcel:
		return Format(s), nil
	}
	return "", NewExportError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, `use "csv" ou "excel"`)
}

// File é o conteúdo pronto para download
type File struct {
	ContentType string
	FileName    string
	Content     []byte
}

type SheetResult struct {
	Sheet string `json:"sheet"`
	Rows  int64  `json:"rows"`
	Error string `json:"error,omitempty"`
}

type SyncResult struct {
	ExportID string        `json:"exportId"`
	Sheets   []SheetResult `json:"sheets"`
}

// Failed conta as abas que não foram escritas
func (r *SyncResult) Failed() int {
	failed := 0
	for _, s := range r.Sheets {
		if s.Error != "" {
			failed++
		}
	}
	return failed
}

type LookerResult struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

type Service struct {
	cfg      *config.Config
	reporter reporting.Reporter
	sink     sheets.Sink
}

// NewService cria o serviço de exportação; sink nil desabilita as operações do Google Sheets
func NewService(cfg *config.Config, reporter reporting.Reporter, sink sheets.Sink) Exporter {
	return &Service{
		cfg:      cfg,
		reporter: reporter,
		sink:     sink,
	}
}

func (s *Service) ExportFile(ctx context.Context, accessToken string, filters *domain.InsightFilters, format Format, level string) (*File, error) {
	exportLevel, err := export.ParseLevel(level)
	if err != nil {
		return nil, NewExportError(ErrInvalidLevel, apiErrors.ErrInvalidFormat, `use "ads", "campaigns" ou "all"`)
	}

	insights, err := s.reporter.GetInsights(ctx, accessToken, filters)
	if err != nil {
		return nil, err
	}

	table := export.TableForLevel(insights, exportLevel)

	log.ForContext(ctx).WithFields(log.Fields{
		"format":     string(format),
		"level":      string(exportLevel),
		"rows":       len(table.Rows),
		"account_id": filters.AccountID,
	}).Info("Gerando arquivo de exportação")

	return render(table, format)
}

func (s *Service) ExportSheet(ctx context.Context, format Format) (*File, error) {
	if s.sink == nil {
		return nil, NewExportError(ErrSheetsNotConfigured, apiErrors.ErrNotConfigured, "")
	}

	values, err := s.sink.Read(ctx, s.cfg.Looker.SheetName)
	if err != nil {
		return nil, err
	}

	table := export.Table{Headers: domain.Headers(domain.UnifiedColumns)}
	if len(values) > 0 {
		table.Headers = values[0]
		table.Rows = values[1:]
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"sheet":  s.cfg.Looker.SheetName,
		"rows":   len(table.Rows),
		"format": string(format),
	}).Info("Exportando conteúdo da planilha")

	return render(table, format)
}

// SyncSheets grava cada aba de forma independente: uma falha não desfaz as outras.
// Só retorna erro quando nenhuma aba pôde ser escrita.
func (s *Service) SyncSheets(ctx context.Context, accessToken string, filters *domain.InsightFilters) (*SyncResult, error) {
	if s.sink == nil {
		return nil, NewExportError(ErrSheetsNotConfigured, apiErrors.ErrNotConfigured, "")
	}

	if err := reporting.ValidateFilters(filters); err != nil {
		return nil, err
	}

	exportID, err := utils.GenerateID()
	if err != nil {
		return nil, NewExportError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"export_id":  exportID,
		"account_id": filters.AccountID,
	})

	insights, err := s.reporter.GetInsights(ctx, accessToken, filters)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar insights para exportação")
		return nil, err
	}

	rows := insights.Rows()
	tables := []struct {
		sheet string
		table export.Table
	}{
		{SheetMarketingAPI, export.UnifiedTable(rows)},
		{SheetAds, export.AdTable(insights.Ads)},
		{SheetCampaigns, export.CampaignTable(insights.Campaigns)},
		{SheetPerformanceMetrics, export.MetricsTable(reporting.AggregatePerformance(rows))},
	}

	result := &SyncResult{
		ExportID: exportID,
		Sheets:   make([]SheetResult, 0, len(tables)),
	}

	started := time.Now()
	for _, t := range tables {
		written, err := s.sink.Replace(ctx, t.sheet, t.table)
		sheetResult := SheetResult{Sheet: t.sheet, Rows: written.Rows}
		if err != nil {
			sheetResult.Error = err.Error()
			logger.WithField("sheet", t.sheet).WithError(err).Error("Erro ao escrever aba")
		}
		result.Sheets = append(result.Sheets, sheetResult)
	}

	logger.WithFields(log.Fields{
		"export_sheets": len(result.Sheets),
		"export_failed": result.Failed(),
		"duration_ms":   time.Since(started).Milliseconds(),
	}).Info("Exportação para o Google Sheets concluída")

	if result.Failed() == len(result.Sheets) {
		return result, &ExportError{
			Err:      ErrSinkWrite,
			Code:     apiErrors.ErrSinkWrite,
			ExportID: exportID,
			Details:  result.Sheets[0].Error,
		}
	}

	return result, nil
}

func (s *Service) LookerReport(ctx context.Context) (*LookerResult, error) {
	if s.sink == nil {
		return nil, NewExportError(ErrSheetsNotConfigured, apiErrors.ErrNotConfigured, "")
	}

	worksheetID, err := s.sink.WorksheetID(ctx, s.cfg.Looker.SheetName)
	if err != nil {
		return nil, err
	}

	layout, err := export.LoadLookerLayout(s.cfg.Looker.LayoutFile)
	if err != nil {
		return nil, NewExportError(ErrLookerLayout, apiErrors.ErrInternalServer, err.Error())
	}

	url, err := export.LookerLink(s.sink.SpreadsheetID(), worksheetID, s.cfg.Looker.ReportName, layout)
	if err != nil {
		return nil, NewExportError(ErrLookerLayout, apiErrors.ErrInternalServer, err.Error())
	}

	return &LookerResult{Success: true, URL: url}, nil
}

func (s *Service) SheetsStatus(ctx context.Context) (*sheets.SpreadsheetInfo, error) {
	if s.sink == nil {
		return nil, NewExportError(ErrSheetsNotConfigured, apiErrors.ErrNotConfigured, "")
	}

	return s.sink.Describe(ctx)
}

func render(table export.Table, format Format) (*File, error) {
	var buf bytes.Buffer

	switch format {
	case FormatExcel:
		if err := export.WriteXLSX(&buf, table, export.DefaultSheetName); err != nil {
			return nil, NewExportError(ErrRenderFile, apiErrors.ErrInternalServer, err.Error())
		}
		return &File{ContentType: export.XLSXContentType, FileName: export.XLSXFileName, Content: buf.Bytes()}, nil
	case FormatCSV:
		if err := export.WriteCSV(&buf, table); err != nil {
			return nil, NewExportError(ErrRenderFile, apiErrors.ErrInternalServer, err.Error())
		}
		return &File{ContentType: export.CSVContentType, FileName: export.CSVFileName, Content: buf.Bytes()}, nil
	}

	return nil, NewExportError(ErrInvalidFormat, apiErrors.ErrInvalidFormat, string(format))
}
