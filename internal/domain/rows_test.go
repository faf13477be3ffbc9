package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdRow_FillsEveryMissingField(t *testing.T) {
	row := NewAdRow(AdRow{Date: "2025-04-10", Purchase: "3"})

	values := row.Values()
	require.Len(t, values, len(AdColumns))
	require.Len(t, values, 32)

	for i, c := range AdColumns {
		if c.Numeric {
			assert.NotEmpty(t, values[i], c.Header)
		}
	}

	assert.Equal(t, "3", row.Purchase)
	assert.Equal(t, "0", row.Leads)
	assert.Equal(t, "0", row.ContactConversionValue)
	assert.Equal(t, "Unknown", row.AdName)
	assert.Equal(t, "AUCTION", row.BuyingType)
	assert.Equal(t, "Unknown", row.BidStrategy)
}

func TestNewCampaignRow_Defaults(t *testing.T) {
	row := NewCampaignRow(CampaignRow{CampaignName: "Summer Sale"})

	require.Len(t, row.Values(), 14)
	assert.Equal(t, "Summer Sale", row.CampaignName)
	assert.Equal(t, "Unknown", row.CampaignObjective)
	assert.Equal(t, "", row.BidStrategy)
	assert.Equal(t, "0", row.LandingPageViews)
}

func TestRowJSONKeysMatchHeaders(t *testing.T) {
	tests := []struct {
		name    string
		row     Row
		columns []Column
	}{
		{name: "ad", row: NewAdRow(AdRow{}), columns: AdColumns},
		{name: "campaign", row: NewCampaignRow(CampaignRow{}), columns: CampaignColumns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.row)
			require.NoError(t, err)

			var decoded map[string]string
			require.NoError(t, json.Unmarshal(raw, &decoded))

			assert.Len(t, decoded, len(tt.columns))
			for i, header := range Headers(tt.columns) {
				assert.Equal(t, tt.row.Values()[i], decoded[header], header)
			}
		})
	}
}

func TestUnifiedValues(t *testing.T) {
	ad := NewAdRow(AdRow{Date: "2025-04-10", AdName: "Ad 1", AdSetName: "Set 1", Purchase: "3"})
	campaign := NewCampaignRow(CampaignRow{Date: "2025-04-10", CampaignName: "Summer Sale", AmountSpent: "100"})

	headers := Headers(UnifiedColumns)
	index := func(header string) int {
		for i, h := range headers {
			if h == header {
				return i
			}
		}
		t.Fatalf("header %q não encontrado", header)
		return -1
	}

	adValues := UnifiedValues(ad)
	require.Len(t, adValues, len(UnifiedColumns))
	assert.Equal(t, "Ad", adValues[0])
	assert.Equal(t, "Ad 1", adValues[index("Ad Name")])
	assert.Equal(t, "3", adValues[index("Purchase")])

	campaignValues := UnifiedValues(campaign)
	require.Len(t, campaignValues, len(UnifiedColumns))
	assert.Equal(t, "Campaign", campaignValues[0])
	assert.Equal(t, CampaignTotalAdName, campaignValues[index("Ad Name")])
	assert.Equal(t, "", campaignValues[index("Ad Set Name")])
	assert.Equal(t, "Summer Sale", campaignValues[index("Campaing Name")])
	assert.Equal(t, "100", campaignValues[index("Amount Spent")])
	for _, header := range []string{"View Content", "Purchase", "Purchase Conversion Value", "Leads", "Contact Conversion Value"} {
		assert.Equal(t, "0", campaignValues[index(header)], header)
	}
}

func TestActionIndex(t *testing.T) {
	idx := NewActionIndex(4)
	idx.Add("purchase", "3")
	idx.Add("purchase", "99")
	idx.Add("offsite_conversion.fb_pixel_custom", "7")
	idx.Add("lead", "")

	assert.Equal(t, "3", idx.Get(ActionPurchase))
	assert.Equal(t, "0", idx.Get(ActionLead))
	assert.Equal(t, "0", idx.Get(ActionContact))
	_, leadIndexed := idx[ActionLead]
	assert.True(t, leadIndexed)
	assert.Len(t, idx, 2)
}

func TestPerformanceMetricRow_Values(t *testing.T) {
	m := PerformanceMetricRow{Date: "2025-04-10", Type: RowTypeAd, Campaign: "c", Spend: 100, ROAS: 1.5}

	values := m.Values()
	require.Len(t, values, len(PerformanceMetricColumns))
	assert.Equal(t, "100", values[3])
	assert.Equal(t, "1.5", values[13])
}
