package reporting

import (
	"context"
	"strings"

	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
)

type Service struct {
	fetcher  ReportFetcher
	observer Observer
}

func NewService(fetcher ReportFetcher, observer Observer) Reporter {
	if observer == nil {
		observer = LogObserver{}
	}

	return &Service{
		fetcher:  fetcher,
		observer: observer,
	}
}

// ValidateFilters confere os parâmetros obrigatórios e a ordem das datas
func ValidateFilters(filters *domain.InsightFilters) error {
	if filters == nil || strings.TrimSpace(filters.AccountID) == "" || filters.StartDate.IsZero() || filters.EndDate.IsZero() {
		return NewReportError(ErrMissingParameters, apiErrors.ErrMissingRequiredData, "accountId, from e to são obrigatórios")
	}

	if filters.EndDate.Before(filters.StartDate) {
		return NewReportError(ErrInvalidDateRange, apiErrors.ErrInvalidRequest, "from deve ser anterior ou igual a to")
	}

	return nil
}

func (s *Service) GetInsights(ctx context.Context, accessToken string, filters *domain.InsightFilters) (*domain.InsightsResponse, error) {
	if accessToken == "" {
		return nil, NewReportError(ErrUnauthorized, apiErrors.ErrInvalidToken, "access token ausente")
	}

	if err := ValidateFilters(filters); err != nil {
		return nil, err
	}

	s.observer.FetchStarted(ctx, filters)

	raw, err := s.fetcher.FetchReportData(ctx, accessToken, filters, func(stage meta.Stage, records int) {
		s.observer.StageFetched(ctx, stage, records)
	})
	if err != nil {
		s.observer.FetchFailed(ctx, err)
		return nil, upstreamError(err)
	}

	response := &domain.InsightsResponse{
		Ads:       make([]domain.AdRow, 0, len(raw.AdInsights)),
		Campaigns: make([]domain.CampaignRow, 0, len(raw.CampaignInsights)),
	}

	for _, j := range Join(raw.CampaignInsights, raw.Campaigns, raw.AdSets) {
		s.inspect(ctx, j)
		response.Campaigns = append(response.Campaigns, NormalizeCampaign(j))
	}

	for _, j := range Join(raw.AdInsights, raw.Campaigns, raw.AdSets) {
		s.inspect(ctx, j)
		response.Ads = append(response.Ads, NormalizeAd(j))
	}

	s.observer.Normalized(ctx, len(response.Ads), len(response.Campaigns))

	return response, nil
}

func (s *Service) GetPerformance(ctx context.Context, accessToken string, filters *domain.InsightFilters) ([]domain.PerformanceMetricRow, error) {
	insights, err := s.GetInsights(ctx, accessToken, filters)
	if err != nil {
		return nil, err
	}

	return AggregatePerformance(insights.Rows()), nil
}

func (s *Service) GetAdAccounts(ctx context.Context, accessToken string) ([]domain.AdAccount, error) {
	if accessToken == "" {
		return nil, NewReportError(ErrUnauthorized, apiErrors.ErrInvalidToken, "access token ausente")
	}

	accounts, err := s.fetcher.GetAdAccounts(ctx, accessToken)
	if err != nil {
		s.observer.FetchFailed(ctx, err)
		return nil, upstreamError(err)
	}

	return accounts, nil
}

// inspect reporta ao observer as anomalias que a normalização tolera em silêncio
func (s *Service) inspect(ctx context.Context, j JoinedInsight) {
	if _, ok := ParseDateParts(j.Insight.DateStart); !ok {
		s.observer.InvalidDate(ctx, j.Insight.DateStart)
	}

	if !j.CampaignFound {
		s.observer.UnmatchedCampaign(ctx, j.Insight.CampaignID)
	}
}

// upstreamError converte falhas do Graph API; token expirado vira erro de autenticação
func upstreamError(err error) error {
	if metaclient.IsTokenError(err) {
		return &ReportError{
			Err:     ErrUnauthorized,
			Code:    apiErrors.ErrExpiredToken,
			Details: err.Error(),
			Cause:   err,
		}
	}

	return NewUpstreamFetchError(apiErrors.ErrUpstreamFetch, err)
}
