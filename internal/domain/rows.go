package domain

type RowType string

const (
	RowTypeAd       RowType = "Ad"
	RowTypeCampaign RowType = "Campaign"
)

// Row é uma linha canônica do relatório, pronta para qualquer exportação
type Row interface {
	Type() RowType
	Values() []string
}

// Column descreve uma coluna do relatório e o valor usado quando a origem não traz o campo
type Column struct {
	Header  string
	Default string
	Numeric bool
}

func text(header, def string) Column { return Column{Header: header, Default: def} }
func number(header string) Column    { return Column{Header: header, Default: "0", Numeric: true} }

// CampaignTotalAdName identifica uma linha de campanha dentro do layout unificado
const CampaignTotalAdName = "Campaign Total"

var AdColumns = []Column{
	text("Date", ""),
	text("ISO Week", ""),
	text("Month", ""),
	text("Year", ""),
	text("Ad Name", "Unknown"),
	text("Ad Set Name", "Unknown"),
	text("Campaing Name", "Unknown"),
	text("Campaing Objective", "Unknown"),
	text("Buying Type", "AUCTION"),
	text("Bid Strategy", "Unknown"),
	number("Amount Spent"),
	number("Reach"),
	number("Impressions"),
	number("Clicks (all)"),
	number("Link Clicks"),
	number("Landing Page views"),
	number("View Content"),
	number("View Content Conversion Value"),
	number("Add To Wishlist"),
	number("Add To Wishlist Conversion Value"),
	number("Add To Cart"),
	number("Add To Cart Conversion Value"),
	number("Initiated Checkout"),
	number("Initiated Checkout Conversion Value"),
	number("Adds Payment Info"),
	number("Add Payment Info Conversion Value"),
	number("Purchase"),
	number("Purchase Conversion Value"),
	number("Leads"),
	number("Lead Conversion Value"),
	number("Contact"),
	number("Contact Conversion Value"),
}

var CampaignColumns = []Column{
	text("Date", ""),
	text("ISO Week", ""),
	text("Month", ""),
	text("Year", ""),
	text("Campaing Name", "Unknown"),
	text("Campaing Objective", "Unknown"),
	text("Buying Type", "AUCTION"),
	text("Bid Strategy", ""),
	number("Amount Spent"),
	number("Reach"),
	number("Impressions"),
	number("Clicks (all)"),
	number("Link Clicks"),
	number("Landing Page views"),
}

// UnifiedColumns é o layout da aba MarketingAPI: Type seguido das colunas de anúncio
var UnifiedColumns = append([]Column{text("Type", "")}, AdColumns...)

func Headers(columns []Column) []string {
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Header
	}
	return headers
}

func applyDefaults(fields []*string, columns []Column) {
	for i, f := range fields {
		if *f == "" {
			*f = columns[i].Default
		}
	}
}

func collect(fields []*string) []string {
	values := make([]string, len(fields))
	for i, f := range fields {
		values[i] = *f
	}
	return values
}

type AdRow struct {
	Date                             string `json:"Date"`
	ISOWeek                          string `json:"ISO Week"`
	Month                            string `json:"Month"`
	Year                             string `json:"Year"`
	AdName                           string `json:"Ad Name"`
	AdSetName                        string `json:"Ad Set Name"`
	CampaignName                     string `json:"Campaing Name"`
	CampaignObjective                string `json:"Campaing Objective"`
	BuyingType                       string `json:"Buying Type"`
	BidStrategy                      string `json:"Bid Strategy"`
	AmountSpent                      string `json:"Amount Spent"`
	Reach                            string `json:"Reach"`
	Impressions                      string `json:"Impressions"`
	ClicksAll                        string `json:"Clicks (all)"`
	LinkClicks                       string `json:"Link Clicks"`
	LandingPageViews                 string `json:"Landing Page views"`
	ViewContent                      string `json:"View Content"`
	ViewContentConversionValue       string `json:"View Content Conversion Value"`
	AddToWishlist                    string `json:"Add To Wishlist"`
	AddToWishlistConversionValue     string `json:"Add To Wishlist Conversion Value"`
	AddToCart                        string `json:"Add To Cart"`
	AddToCartConversionValue         string `json:"Add To Cart Conversion Value"`
	InitiatedCheckout                string `json:"Initiated Checkout"`
	InitiatedCheckoutConversionValue string `json:"Initiated Checkout Conversion Value"`
	AddsPaymentInfo                  string `json:"Adds Payment Info"`
	AddPaymentInfoConversionValue    string `json:"Add Payment Info Conversion Value"`
	Purchase                         string `json:"Purchase"`
	PurchaseConversionValue          string `json:"Purchase Conversion Value"`
	Leads                            string `json:"Leads"`
	LeadConversionValue              string `json:"Lead Conversion Value"`
	Contact                          string `json:"Contact"`
	ContactConversionValue           string `json:"Contact Conversion Value"`
}

// NewAdRow preenche todo campo vazio com o default da coluna
func NewAdRow(r AdRow) AdRow {
	applyDefaults(r.fields(), AdColumns)
	return r
}

// fields segue a mesma ordem de AdColumns
func (r *AdRow) fields() []*string {
	return []*string{
		&r.Date, &r.ISOWeek, &r.Month, &r.Year,
		&r.AdName, &r.AdSetName, &r.CampaignName, &r.CampaignObjective,
		&r.BuyingType, &r.BidStrategy,
		&r.AmountSpent, &r.Reach, &r.Impressions, &r.ClicksAll,
		&r.LinkClicks, &r.LandingPageViews,
		&r.ViewContent, &r.ViewContentConversionValue,
		&r.AddToWishlist, &r.AddToWishlistConversionValue,
		&r.AddToCart, &r.AddToCartConversionValue,
		&r.InitiatedCheckout, &r.InitiatedCheckoutConversionValue,
		&r.AddsPaymentInfo, &r.AddPaymentInfoConversionValue,
		&r.Purchase, &r.PurchaseConversionValue,
		&r.Leads, &r.LeadConversionValue,
		&r.Contact, &r.ContactConversionValue,
	}
}

func (r AdRow) Type() RowType { return RowTypeAd }

func (r AdRow) Values() []string { return collect(r.fields()) }

type CampaignRow struct {
	Date              string `json:"Date"`
	ISOWeek           string `json:"ISO Week"`
	Month             string `json:"Month"`
	Year              string `json:"Year"`
	CampaignName      string `json:"Campaing Name"`
	CampaignObjective string `json:"Campaing Objective"`
	BuyingType        string `json:"Buying Type"`
	BidStrategy       string `json:"Bid Strategy"`
	AmountSpent       string `json:"Amount Spent"`
	Reach             string `json:"Reach"`
	Impressions       string `json:"Impressions"`
	ClicksAll         string `json:"Clicks (all)"`
	LinkClicks        string `json:"Link Clicks"`
	LandingPageViews  string `json:"Landing Page views"`
}

func NewCampaignRow(r CampaignRow) CampaignRow {
	applyDefaults(r.fields(), CampaignColumns)
	return r
}

func (r *CampaignRow) fields() []*string {
	return []*string{
		&r.Date, &r.ISOWeek, &r.Month, &r.Year,
		&r.CampaignName, &r.CampaignObjective, &r.BuyingType, &r.BidStrategy,
		&r.AmountSpent, &r.Reach, &r.Impressions, &r.ClicksAll,
		&r.LinkClicks, &r.LandingPageViews,
	}
}

func (r CampaignRow) Type() RowType { return RowTypeCampaign }

func (r CampaignRow) Values() []string { return collect(r.fields()) }

// UnifiedValues projeta qualquer linha no layout de UnifiedColumns. Linhas de campanha
// viram "Campaign Total", sem conjunto de anúncios e com o funil zerado.
func UnifiedValues(row Row) []string {
	switch r := row.(type) {
	case AdRow:
		return append([]string{string(RowTypeAd)}, r.Values()...)
	case CampaignRow:
		embedded := AdRow{
			Date:              r.Date,
			ISOWeek:           r.ISOWeek,
			Month:             r.Month,
			Year:              r.Year,
			AdName:            CampaignTotalAdName,
			CampaignName:      r.CampaignName,
			CampaignObjective: r.CampaignObjective,
			BuyingType:        r.BuyingType,
			BidStrategy:       r.BidStrategy,
			AmountSpent:       r.AmountSpent,
			Reach:             r.Reach,
			Impressions:       r.Impressions,
			ClicksAll:         r.ClicksAll,
			LinkClicks:        r.LinkClicks,
			LandingPageViews:  r.LandingPageViews,
		}
		values := embedded.Values()
		for i := range values {
			if values[i] == "" && AdColumns[i].Numeric {
				values[i] = "0"
			}
		}
		return append([]string{string(RowTypeCampaign)}, values...)
	default:
		return append([]string{string(row.Type())}, row.Values()...)
	}
}
