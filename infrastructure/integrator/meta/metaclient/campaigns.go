package metaclient

import (
	"context"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetCampaigns(ctx context.Context, accessToken, accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Set("fields", "id,name,objective,buying_type,bid_strategy")
	params.Set("limit", c.pageSize())

	campaigns, err := FetchAllPages[metadomain.Campaign](ctx, c.HTTPClient, c.Limiter,
		c.endpoint(AccountPath(accountID)+"/campaigns", accessToken, params))
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"campaigns":  len(campaigns),
	}).Debug("meta: campaigns fetched")

	return campaigns, nil
}

func (c *MetaClient) GetAdSets(ctx context.Context, accessToken, accountID string) ([]metadomain.AdSet, error) {
	params := url.Values{}
	params.Set("fields", "id,name,bid_strategy,campaign_id")
	params.Set("limit", c.pageSize())

	adSets, err := FetchAllPages[metadomain.AdSet](ctx, c.HTTPClient, c.Limiter,
		c.endpoint(AccountPath(accountID)+"/adsets", accessToken, params))
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"ad_sets":    len(adSets),
	}).Debug("meta: ad sets fetched")

	return adSets, nil
}
