package reporting

import (
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
)

// JoinedInsight é um insight já resolvido contra sua campanha e seu conjunto de anúncios.
// Quando a chave estrangeira não existe, a entidade fica com o valor zero e o flag
// correspondente em false.
type JoinedInsight struct {
	Insight       metadomain.Insight
	Campaign      metadomain.Campaign
	AdSet         metadomain.AdSet
	CampaignFound bool
	AdSetFound    bool
}

// Join resolve cada insight contra campanhas e conjuntos por id. Ids duplicados: a última
// ocorrência prevalece. Nunca falha.
func Join(insights []metadomain.Insight, campaigns []metadomain.Campaign, adSets []metadomain.AdSet) []JoinedInsight {
	campaignByID := make(map[string]metadomain.Campaign, len(campaigns))
	for _, c := range campaigns {
		campaignByID[c.ID] = c
	}

	adSetByID := make(map[string]metadomain.AdSet, len(adSets))
	for _, a := range adSets {
		adSetByID[a.ID] = a
	}

	joined := make([]JoinedInsight, 0, len(insights))
	for _, insight := range insights {
		j := JoinedInsight{Insight: insight}

		if insight.CampaignID != "" {
			j.Campaign, j.CampaignFound = campaignByID[insight.CampaignID]
		}

		if insight.AdSetID != "" {
			j.AdSet, j.AdSetFound = adSetByID[insight.AdSetID]
		}

		joined = append(joined, j)
	}

	return joined
}
