package exporting

import (
	"context"

	"github.com/vfg2006/ads-report-api/infrastructure/integrator/google/sheets"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

// Exporter transforma os relatórios em arquivos e abas do Google Sheets
type Exporter interface {
	// ExportFile gera o arquivo CSV ou Excel com as linhas do nível pedido
	ExportFile(ctx context.Context, accessToken string, filters *domain.InsightFilters, format Format, level string) (*File, error)

	// ExportSheet baixa o conteúdo atual da aba MarketingAPI como arquivo
	ExportSheet(ctx context.Context, format Format) (*File, error)

	// SyncSheets substitui as abas MarketingAPI, Ads, Campaigns e PerformanceMetrics
	SyncSheets(ctx context.Context, accessToken string, filters *domain.InsightFilters) (*SyncResult, error)

	// LookerReport monta o link do Looker Studio para a aba MarketingAPI
	LookerReport(ctx context.Context) (*LookerResult, error)

	// SheetsStatus verifica o acesso à planilha e lista as abas
	SheetsStatus(ctx context.Context) (*sheets.SpreadsheetInfo, error)
}
