package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
)

func TestJoin(t *testing.T) {
	campaigns := []metadomain.Campaign{
		{ID: "c1", Name: "Primeira"},
		{ID: "c2", Name: "Segunda"},
		{ID: "c1", Name: "Summer Sale"},
	}
	adSets := []metadomain.AdSet{
		{ID: "as1", Name: "Set 1", CampaignID: "c1", BidStrategy: "LOWEST_COST"},
	}
	insights := []metadomain.Insight{
		{AdID: "a1", AdSetID: "as1", CampaignID: "c1"},
		{AdID: "a2", AdSetID: "missing", CampaignID: "missing"},
		{CampaignID: "c2"},
		{},
	}

	joined := Join(insights, campaigns, adSets)

	require.Len(t, joined, 4)

	assert.True(t, joined[0].CampaignFound)
	assert.Equal(t, "Summer Sale", joined[0].Campaign.Name, "última ocorrência do id prevalece")
	assert.True(t, joined[0].AdSetFound)
	assert.Equal(t, "LOWEST_COST", joined[0].AdSet.BidStrategy)

	assert.False(t, joined[1].CampaignFound)
	assert.False(t, joined[1].AdSetFound)
	assert.Equal(t, metadomain.Campaign{}, joined[1].Campaign)
	assert.Equal(t, metadomain.AdSet{}, joined[1].AdSet)

	assert.True(t, joined[2].CampaignFound)
	assert.False(t, joined[2].AdSetFound)

	assert.False(t, joined[3].CampaignFound)
	assert.Equal(t, insights[3], joined[3].Insight)
}

func TestJoin_EmptyInputs(t *testing.T) {
	assert.Empty(t, Join(nil, nil, nil))

	joined := Join([]metadomain.Insight{{CampaignID: "c1"}}, nil, nil)
	require.Len(t, joined, 1)
	assert.False(t, joined[0].CampaignFound)
}
