package reporting

import (
	"sort"

	"github.com/samber/lo"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

type metricKey struct {
	Date     string
	Type     domain.RowType
	Campaign string
}

// funnel são os totais somáveis extraídos de uma linha canônica
type funnel struct {
	spend, impressions, clicks, linkClicks, landingPageViews float64
	addToCart, initiateCheckout, purchases, purchaseValue     float64
	leads                                                     float64
}

func funnelOf(row domain.Row) funnel {
	switch r := row.(type) {
	case domain.AdRow:
		return funnel{
			spend:            utils.ParseNumber(r.AmountSpent),
			impressions:      utils.ParseNumber(r.Impressions),
			clicks:           utils.ParseNumber(r.ClicksAll),
			linkClicks:       utils.ParseNumber(r.LinkClicks),
			landingPageViews: utils.ParseNumber(r.LandingPageViews),
			addToCart:        utils.ParseNumber(r.AddToCart),
			initiateCheckout: utils.ParseNumber(r.InitiatedCheckout),
			purchases:        utils.ParseNumber(r.Purchase),
			purchaseValue:    utils.ParseNumber(r.PurchaseConversionValue),
			leads:            utils.ParseNumber(r.Leads),
		}
	case domain.CampaignRow:
		return funnel{
			spend:            utils.ParseNumber(r.AmountSpent),
			impressions:      utils.ParseNumber(r.Impressions),
			clicks:           utils.ParseNumber(r.ClicksAll),
			linkClicks:       utils.ParseNumber(r.LinkClicks),
			landingPageViews: utils.ParseNumber(r.LandingPageViews),
		}
	}
	return funnel{}
}

func keyOf(row domain.Row) metricKey {
	switch r := row.(type) {
	case domain.AdRow:
		return metricKey{Date: r.Date, Type: domain.RowTypeAd, Campaign: r.CampaignName}
	case domain.CampaignRow:
		return metricKey{Date: r.Date, Type: domain.RowTypeCampaign, Campaign: r.CampaignName}
	}
	return metricKey{Type: row.Type()}
}

// AggregatePerformance agrupa as linhas por (data, tipo, campanha), soma o funil e calcula
// as razões. Todo denominador zero resulta em 0.
func AggregatePerformance(rows []domain.Row) []domain.PerformanceMetricRow {
	groups := lo.GroupBy(rows, keyOf)

	keys := lo.Keys(groups)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Date != keys[j].Date {
			return keys[i].Date < keys[j].Date
		}
		if keys[i].Type != keys[j].Type {
			return keys[i].Type < keys[j].Type
		}
		return keys[i].Campaign < keys[j].Campaign
	})

	return lo.Map(keys, func(k metricKey, _ int) domain.PerformanceMetricRow {
		total := lo.Reduce(groups[k], func(acc funnel, row domain.Row, _ int) funnel {
			f := funnelOf(row)
			acc.spend += f.spend
			acc.impressions += f.impressions
			acc.clicks += f.clicks
			acc.linkClicks += f.linkClicks
			acc.landingPageViews += f.landingPageViews
			acc.addToCart += f.addToCart
			acc.initiateCheckout += f.initiateCheckout
			acc.purchases += f.purchases
			acc.purchaseValue += f.purchaseValue
			acc.leads += f.leads
			return acc
		}, funnel{})

		return buildMetricRow(k, total)
	})
}

func buildMetricRow(k metricKey, f funnel) domain.PerformanceMetricRow {
	round := utils.RoundWithTwoDecimalPlace

	return domain.PerformanceMetricRow{
		Date:             k.Date,
		Type:             k.Type,
		Campaign:         k.Campaign,
		Spend:            round(f.spend),
		Impressions:      f.impressions,
		Clicks:           f.clicks,
		LinkClicks:       f.linkClicks,
		LandingPageViews: f.landingPageViews,
		AddToCart:        f.addToCart,
		InitiateCheckout: f.initiateCheckout,
		Purchases:        f.purchases,
		PurchaseValue:    round(f.purchaseValue),
		Leads:            f.leads,
		ROAS:             round(utils.SafeDivide(f.purchaseValue, f.spend)),
		ROI:              round(utils.SafeDivide(f.purchaseValue-f.spend, f.spend)),
		CPA:              round(utils.SafeDivide(f.spend, f.purchases)),
		CPC:              round(utils.SafeDivide(f.spend, f.clicks)),
		CPM:              round(utils.SafeDivide(f.spend, f.impressions) * 1000),
		CTR:              round(utils.SafeDivide(f.clicks, f.impressions) * 100),
		ConversionRate:   round(utils.SafeDivide(f.purchases, f.clicks) * 100),
		CostPerLead:      round(utils.SafeDivide(f.spend, f.leads)),
	}
}
