package metaclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetCampaigns(ctx context.Context, accessToken, accountID string) ([]metadomain.Campaign, error)
	GetAdSets(ctx context.Context, accessToken, accountID string) ([]metadomain.AdSet, error)
	GetCampaignInsights(ctx context.Context, accessToken string, filters *domain.InsightFilters) ([]metadomain.Insight, error)
	GetAdInsights(ctx context.Context, accessToken string, filters *domain.InsightFilters) ([]metadomain.Insight, error)
	GetAdAccounts(ctx context.Context, accessToken string) ([]metadomain.AdAccount, error)
	GetUser(ctx context.Context, accessToken string) (*metadomain.User, error)
	GetPermissions(ctx context.Context, accessToken, userID string) ([]metadomain.Permission, error)
	ExchangeLongLivedToken(ctx context.Context, shortLivedToken string) (*TokenResponse, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
	Limiter    *rate.Limiter
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Meta.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	limit := rate.Inf
	if cfg.Meta.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.Meta.RequestsPerSecond)
	}

	return &MetaClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    rate.NewLimiter(limit, 1),
	}
}

// endpoint monta a URL de um edge do Graph API com o token no query string
func (c *MetaClient) endpoint(path string, accessToken string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", accessToken)

	return strings.TrimRight(c.Cfg.Meta.URL, "/") + "/" + strings.TrimLeft(path, "/") + "?" + params.Encode()
}

func (c *MetaClient) pageSize() string {
	if c.Cfg.Meta.PageSize <= 0 {
		return "500"
	}
	return strconv.Itoa(c.Cfg.Meta.PageSize)
}

// AccountPath normaliza o ID da conta para o formato act_<id> usado pelo Graph API
func AccountPath(accountID string) string {
	accountID = strings.TrimSpace(accountID)
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}

// redactURL remove o access_token antes de a URL ir para os logs
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<url inválida>"
	}

	q := u.Query()
	if q.Has("access_token") {
		q.Set("access_token", "REDACTED")
		u.RawQuery = q.Encode()
	}

	return u.String()
}
