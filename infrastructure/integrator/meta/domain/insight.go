package metadomain

// Action é um item das coleções actions, action_values e outbound_clicks
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight representa uma linha de /insights, tanto no nível de anúncio quanto de campanha.
// Os campos de nível de anúncio ficam vazios quando a consulta é feita com level=campaign.
type Insight struct {
	AdID           string   `json:"ad_id,omitempty"`
	AdName         string   `json:"ad_name,omitempty"`
	AdSetID        string   `json:"adset_id,omitempty"`
	AdSetName      string   `json:"adset_name,omitempty"`
	CampaignID     string   `json:"campaign_id"`
	CampaignName   string   `json:"campaign_name"`
	Objective      string   `json:"objective,omitempty"`
	DateStart      string   `json:"date_start"`
	DateStop       string   `json:"date_stop"`
	Spend          string   `json:"spend"`
	Impressions    string   `json:"impressions"`
	Clicks         string   `json:"clicks"`
	Reach          string   `json:"reach"`
	Actions        []Action `json:"actions,omitempty"`
	ActionValues   []Action `json:"action_values,omitempty"`
	OutboundClicks []Action `json:"outbound_clicks,omitempty"`
}

// CampaignInsightFields são os campos pedidos em level=campaign
var CampaignInsightFields = []string{
	"campaign_id",
	"campaign_name",
	"objective",
	"date_start",
	"date_stop",
	"spend",
	"impressions",
	"clicks",
	"outbound_clicks",
	"actions",
	"reach",
}

// AdInsightFields são os campos pedidos em level=ad
var AdInsightFields = []string{
	"ad_id",
	"ad_name",
	"adset_id",
	"adset_name",
	"campaign_id",
	"campaign_name",
	"objective",
	"date_start",
	"date_stop",
	"spend",
	"impressions",
	"clicks",
	"outbound_clicks",
	"reach",
	"actions",
	"action_values",
}
