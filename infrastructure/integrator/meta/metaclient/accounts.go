package metaclient

import (
	"context"
	"fmt"
	"net/url"

	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
)

func (c *MetaClient) GetAdAccounts(ctx context.Context, accessToken string) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Set("fields", "id,name,account_id,account_status")
	params.Set("limit", c.pageSize())

	return FetchAllPages[metadomain.AdAccount](ctx, c.HTTPClient, c.Limiter,
		c.endpoint("me/adaccounts", accessToken, params))
}

func (c *MetaClient) GetUser(ctx context.Context, accessToken string) (*metadomain.User, error) {
	params := url.Values{}
	params.Set("fields", "id,name,email")

	var user metadomain.User
	if err := getObject(ctx, c.HTTPClient, c.Limiter, c.endpoint("me", accessToken, params), &user); err != nil {
		return nil, err
	}

	if user.ID == "" {
		return nil, &FetchError{Message: "resposta de /me sem id"}
	}

	return &user, nil
}

func (c *MetaClient) GetPermissions(ctx context.Context, accessToken, userID string) ([]metadomain.Permission, error) {
	if userID == "" {
		userID = "me"
	}

	return FetchAllPages[metadomain.Permission](ctx, c.HTTPClient, c.Limiter,
		c.endpoint(fmt.Sprintf("%s/permissions", userID), accessToken, nil))
}
