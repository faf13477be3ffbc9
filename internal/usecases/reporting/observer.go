package reporting

import (
	"context"

	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

// Observer recebe os eventos de progresso do pipeline fetch → join → normalize
type Observer interface {
	FetchStarted(ctx context.Context, filters *domain.InsightFilters)
	StageFetched(ctx context.Context, stage meta.Stage, records int)
	FetchFailed(ctx context.Context, err error)
	InvalidDate(ctx context.Context, value string)
	UnmatchedCampaign(ctx context.Context, campaignID string)
	Normalized(ctx context.Context, ads, campaigns int)
}

// LogObserver envia os eventos para o logrus com o correlation id da requisição
type LogObserver struct{}

func (LogObserver) FetchStarted(ctx context.Context, filters *domain.InsightFilters) {
	log.ForContext(ctx).WithFields(log.Fields{
		"account_id": filters.AccountID,
		"from":       filters.StartDate.Format("2006-01-02"),
		"to":         filters.EndDate.Format("2006-01-02"),
	}).Info("insights: fetching report data")
}

func (LogObserver) StageFetched(ctx context.Context, stage meta.Stage, records int) {
	log.ForContext(ctx).WithFields(log.Fields{
		"stage":   string(stage),
		"records": records,
	}).Debug("insights: stage fetched")
}

func (LogObserver) FetchFailed(ctx context.Context, err error) {
	log.ForContext(ctx).WithError(err).Error("insights: failed to fetch report data")
}

func (LogObserver) InvalidDate(ctx context.Context, value string) {
	log.ForContext(ctx).WithField("date_start", value).Warn("insights: invalid date_start, derived fields left empty")
}

func (LogObserver) UnmatchedCampaign(ctx context.Context, campaignID string) {
	log.ForContext(ctx).WithField("campaign_id", campaignID).Debug("insights: campaign not found for insight")
}

func (LogObserver) Normalized(ctx context.Context, ads, campaigns int) {
	log.ForContext(ctx).WithFields(log.Fields{
		"ads":       ads,
		"campaigns": campaigns,
	}).Info("insights: rows normalized")
}
