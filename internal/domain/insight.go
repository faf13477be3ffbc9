package domain

import (
	"time"
)

type InsightFilters struct {
	AccountID string
	StartDate time.Time
	EndDate   time.Time
}

// InsightsResponse é o corpo de GET /v1/insights
type InsightsResponse struct {
	Ads       []AdRow       `json:"ads"`
	Campaigns []CampaignRow `json:"campaigns"`
}

// Rows devolve anúncios e campanhas como uma única lista de linhas
func (r *InsightsResponse) Rows() []Row {
	rows := make([]Row, 0, len(r.Ads)+len(r.Campaigns))
	for _, ad := range r.Ads {
		rows = append(rows, ad)
	}
	for _, campaign := range r.Campaigns {
		rows = append(rows, campaign)
	}
	return rows
}
