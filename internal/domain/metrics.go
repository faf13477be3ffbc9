package domain

import (
	"strconv"
)

// PerformanceMetricRow agrega as linhas de um mesmo (data, tipo, campanha)
type PerformanceMetricRow struct {
	Date             string  `json:"date"`
	Type             RowType `json:"type"`
	Campaign         string  `json:"campaign"`
	Spend            float64 `json:"spend"`
	Impressions      float64 `json:"impressions"`
	Clicks           float64 `json:"clicks"`
	LinkClicks       float64 `json:"linkClicks"`
	LandingPageViews float64 `json:"landingPageViews"`
	AddToCart        float64 `json:"addToCart"`
	InitiateCheckout float64 `json:"initiateCheckout"`
	Purchases        float64 `json:"purchases"`
	PurchaseValue    float64 `json:"purchaseValue"`
	Leads            float64 `json:"leads"`
	ROAS             float64 `json:"roas"`
	ROI              float64 `json:"roi"`
	CPA              float64 `json:"cpa"`
	CPC              float64 `json:"cpc"`
	CPM              float64 `json:"cpm"`
	CTR              float64 `json:"ctr"`
	ConversionRate   float64 `json:"conversionRate"`
	CostPerLead      float64 `json:"costPerLead"`
}

var PerformanceMetricColumns = []Column{
	text("Date", ""),
	text("Type", ""),
	text("Campaign", ""),
	number("Spend"),
	number("Impressions"),
	number("Clicks"),
	number("Link Clicks"),
	number("Landing Page Views"),
	number("Add To Cart"),
	number("Initiate Checkout"),
	number("Purchases"),
	number("Purchase Value"),
	number("Leads"),
	number("ROAS"),
	number("ROI"),
	number("CPA"),
	number("CPC"),
	number("CPM"),
	number("CTR"),
	number("Conversion Rate"),
	number("Cost Per Lead"),
}

func (m PerformanceMetricRow) Values() []string {
	return []string{
		m.Date,
		string(m.Type),
		m.Campaign,
		formatFloat(m.Spend),
		formatFloat(m.Impressions),
		formatFloat(m.Clicks),
		formatFloat(m.LinkClicks),
		formatFloat(m.LandingPageViews),
		formatFloat(m.AddToCart),
		formatFloat(m.InitiateCheckout),
		formatFloat(m.Purchases),
		formatFloat(m.PurchaseValue),
		formatFloat(m.Leads),
		formatFloat(m.ROAS),
		formatFloat(m.ROI),
		formatFloat(m.CPA),
		formatFloat(m.CPC),
		formatFloat(m.CPM),
		formatFloat(m.CTR),
		formatFloat(m.ConversionRate),
		formatFloat(m.CostPerLead),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
