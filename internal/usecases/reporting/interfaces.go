package reporting

import (
	"context"

	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

// ReportFetcher é a fonte dos dados brutos do relatório (implementada por meta.MetaIntegrator)
type ReportFetcher interface {
	FetchReportData(ctx context.Context, accessToken string, filters *domain.InsightFilters, done meta.StageDone) (*meta.RawReport, error)
	GetAdAccounts(ctx context.Context, accessToken string) ([]domain.AdAccount, error)
}

// Reporter monta os relatórios normalizados consumidos pelos handlers e pelas exportações
type Reporter interface {
	// GetInsights executa fetch → join → normalize e devolve as linhas de anúncio e campanha
	GetInsights(ctx context.Context, accessToken string, filters *domain.InsightFilters) (*domain.InsightsResponse, error)

	// GetPerformance agrega as linhas de GetInsights por data, tipo e campanha
	GetPerformance(ctx context.Context, accessToken string, filters *domain.InsightFilters) ([]domain.PerformanceMetricRow, error)

	// GetAdAccounts lista as contas de anúncio acessíveis pelo token
	GetAdAccounts(ctx context.Context, accessToken string) ([]domain.AdAccount, error)
}
