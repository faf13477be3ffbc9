package metadomain

// Campaign é o objeto de campanha retornado por /act_<id>/campaigns
type Campaign struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Objective   string `json:"objective"`
	BuyingType  string `json:"buying_type"`
	BidStrategy string `json:"bid_strategy,omitempty"`
}

// AdSet é o objeto de conjunto de anúncios retornado por /act_<id>/adsets
type AdSet struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BidStrategy string `json:"bid_strategy"`
	CampaignID  string `json:"campaign_id"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}
