package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const (
	levelCampaign = "campaign"
	levelAd       = "ad"
)

func (c *MetaClient) GetCampaignInsights(ctx context.Context, accessToken string, filters *domain.InsightFilters) ([]metadomain.Insight, error) {
	return c.getInsights(ctx, accessToken, filters, levelCampaign, metadomain.CampaignInsightFields)
}

func (c *MetaClient) GetAdInsights(ctx context.Context, accessToken string, filters *domain.InsightFilters) ([]metadomain.Insight, error) {
	return c.getInsights(ctx, accessToken, filters, levelAd, metadomain.AdInsightFields)
}

func (c *MetaClient) getInsights(ctx context.Context, accessToken string, filters *domain.InsightFilters, level string, fields []string) ([]metadomain.Insight, error) {
	if filters == nil {
		return nil, fmt.Errorf("meta: filtros de insights não informados")
	}

	timeRange, err := TimeRange(filters.StartDate, filters.EndDate)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("level", level)
	params.Set("time_range", timeRange)
	params.Set("time_increment", "1")
	params.Set("fields", strings.Join(fields, ","))
	params.Set("limit", c.pageSize())

	return FetchAllPages[metadomain.Insight](ctx, c.HTTPClient, c.Limiter,
		c.endpoint(AccountPath(filters.AccountID)+"/insights", accessToken, params))
}

// TimeRange serializa o intervalo no formato {"since":"YYYY-MM-DD","until":"YYYY-MM-DD"}
func TimeRange(since, until time.Time) (string, error) {
	raw, err := json.Marshal(map[string]string{
		"since": since.Format(time.DateOnly),
		"until": until.Format(time.DateOnly),
	})
	if err != nil {
		return "", fmt.Errorf("meta: erro ao serializar time_range: %w", err)
	}

	return string(raw), nil
}
