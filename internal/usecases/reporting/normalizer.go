package reporting

import (
	"github.com/samber/lo"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const outboundClickType = "outbound_click"

// NormalizeAd converte um insight de anúncio no layout canônico de AdRow
func NormalizeAd(j JoinedInsight) domain.AdRow {
	insight := j.Insight
	dates, _ := ParseDateParts(insight.DateStart)
	actions := indexActions(insight.Actions)
	values := indexActions(insight.ActionValues)

	return domain.NewAdRow(domain.AdRow{
		Date:              insight.DateStart,
		ISOWeek:           dates.ISOWeek,
		Month:             dates.Month,
		Year:              dates.Year,
		AdName:            insight.AdName,
		AdSetName:         coalesce(j.AdSet.Name, insight.AdSetName),
		CampaignName:      coalesce(j.Campaign.Name, insight.CampaignName),
		CampaignObjective: coalesce(j.Campaign.Objective, insight.Objective),
		BuyingType:        j.Campaign.BuyingType,
		BidStrategy:       coalesce(j.AdSet.BidStrategy, j.Campaign.BidStrategy),
		AmountSpent:       insight.Spend,
		Reach:             insight.Reach,
		Impressions:       insight.Impressions,
		ClicksAll:         insight.Clicks,
		LinkClicks:        linkClicks(insight, actions),
		LandingPageViews:  actions.Get(domain.ActionLandingPageView),

		ViewContent:                      actions.Get(domain.ActionViewContent),
		ViewContentConversionValue:       values.Get(domain.ActionViewContent),
		AddToWishlist:                    actions.Get(domain.ActionAddToWishlist),
		AddToWishlistConversionValue:     values.Get(domain.ActionAddToWishlist),
		AddToCart:                        actions.Get(domain.ActionAddToCart),
		AddToCartConversionValue:         values.Get(domain.ActionAddToCart),
		InitiatedCheckout:                actions.Get(domain.ActionInitiateCheckout),
		InitiatedCheckoutConversionValue: values.Get(domain.ActionInitiateCheckout),
		AddsPaymentInfo:                  actions.Get(domain.ActionAddPaymentInfo),
		AddPaymentInfoConversionValue:    values.Get(domain.ActionAddPaymentInfo),
		Purchase:                         actions.Get(domain.ActionPurchase),
		PurchaseConversionValue:          values.Get(domain.ActionPurchase),
		Leads:                            actions.Get(domain.ActionLead),
		LeadConversionValue:              values.Get(domain.ActionLead),
		Contact:                          actions.Get(domain.ActionContact),
		ContactConversionValue:           values.Get(domain.ActionContact),
	})
}

// NormalizeCampaign converte um insight de campanha no layout canônico de CampaignRow
func NormalizeCampaign(j JoinedInsight) domain.CampaignRow {
	insight := j.Insight
	dates, _ := ParseDateParts(insight.DateStart)
	actions := indexActions(insight.Actions)

	return domain.NewCampaignRow(domain.CampaignRow{
		Date:              insight.DateStart,
		ISOWeek:           dates.ISOWeek,
		Month:             dates.Month,
		Year:              dates.Year,
		CampaignName:      coalesce(j.Campaign.Name, insight.CampaignName),
		CampaignObjective: coalesce(j.Campaign.Objective, insight.Objective),
		BuyingType:        j.Campaign.BuyingType,
		BidStrategy:       j.Campaign.BidStrategy,
		AmountSpent:       insight.Spend,
		Reach:             insight.Reach,
		Impressions:       insight.Impressions,
		ClicksAll:         insight.Clicks,
		LinkClicks:        linkClicks(insight, actions),
		LandingPageViews:  actions.Get(domain.ActionLandingPageView),
	})
}

func indexActions(actions []metadomain.Action) domain.ActionIndex {
	idx := domain.NewActionIndex(len(actions))
	for _, a := range actions {
		idx.Add(a.ActionType, a.Value)
	}
	return idx
}

// linkClicks prefere outbound_clicks e cai para link_click de actions
func linkClicks(insight metadomain.Insight, actions domain.ActionIndex) string {
	outbound, found := lo.Find(insight.OutboundClicks, func(a metadomain.Action) bool {
		return a.Value != "" && (a.ActionType == outboundClickType || a.ActionType == string(domain.ActionLinkClick))
	})
	if found {
		return outbound.Value
	}

	return actions.Get(domain.ActionLinkClick)
}

func coalesce(values ...string) string {
	v, _ := lo.Coalesce(values...)
	return v
}
