package meta

import (
	"context"
	"fmt"

	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// RawReport reúne as quatro coleções necessárias para montar o relatório
type RawReport struct {
	Campaigns        []metadomain.Campaign
	AdSets           []metadomain.AdSet
	CampaignInsights []metadomain.Insight
	AdInsights       []metadomain.Insight
}

// Stage identifica cada busca feita no Graph API
type Stage string

const (
	StageCampaigns        Stage = "campaigns"
	StageAdSets           Stage = "ad_sets"
	StageCampaignInsights Stage = "campaign_insights"
	StageAdInsights       Stage = "ad_insights"
)

// StageError indica qual busca falhou
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("meta: %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// StageDone é chamado ao fim de cada busca bem sucedida, de forma concorrente
type StageDone func(stage Stage, records int)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchReportData dispara as quatro buscas em paralelo. Nenhuma depende da outra; a
// primeira falha cancela as demais através do contexto do errgroup.
func (s *MetaIntegrator) FetchReportData(ctx context.Context, accessToken string, filters *domain.InsightFilters, done StageDone) (*RawReport, error) {
	if done == nil {
		done = func(Stage, int) {}
	}

	report := &RawReport{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		campaigns, err := s.Client.GetCampaigns(gctx, accessToken, filters.AccountID)
		if err != nil {
			return &StageError{Stage: StageCampaigns, Err: err}
		}
		report.Campaigns = campaigns
		done(StageCampaigns, len(campaigns))
		return nil
	})

	g.Go(func() error {
		adSets, err := s.Client.GetAdSets(gctx, accessToken, filters.AccountID)
		if err != nil {
			return &StageError{Stage: StageAdSets, Err: err}
		}
		report.AdSets = adSets
		done(StageAdSets, len(adSets))
		return nil
	})

	g.Go(func() error {
		insights, err := s.Client.GetCampaignInsights(gctx, accessToken, filters)
		if err != nil {
			return &StageError{Stage: StageCampaignInsights, Err: err}
		}
		report.CampaignInsights = insights
		done(StageCampaignInsights, len(insights))
		return nil
	})

	g.Go(func() error {
		insights, err := s.Client.GetAdInsights(gctx, accessToken, filters)
		if err != nil {
			return &StageError{Stage: StageAdInsights, Err: err}
		}
		report.AdInsights = insights
		done(StageAdInsights, len(insights))
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}

// GetAdAccounts lista as contas de anúncio do usuário dono do token
func (s *MetaIntegrator) GetAdAccounts(ctx context.Context, accessToken string) ([]domain.AdAccount, error) {
	accounts, err := s.Client.GetAdAccounts(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	result := make([]domain.AdAccount, 0, len(accounts))
	for _, a := range accounts {
		status := domain.AdAccountStatusInactive
		if a.IsActive() {
			status = domain.AdAccountStatusActive
		}

		result = append(result, domain.AdAccount{
			ID:        a.ID,
			Name:      a.Name,
			AccountID: a.AccountID,
			Status:    status,
		})
	}

	return result, nil
}

// VerifyToken valida o token em /me e devolve as permissões obrigatórias que faltam
func (s *MetaIntegrator) VerifyToken(ctx context.Context, accessToken string) (*domain.User, []string, error) {
	user, err := s.Client.GetUser(ctx, accessToken)
	if err != nil {
		return nil, nil, err
	}

	permissions, err := s.Client.GetPermissions(ctx, accessToken, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return &domain.User{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, metadomain.MissingPermissions(permissions), nil
}

// ExchangeToken troca um token de curta duração por um de longa duração quando habilitado
func (s *MetaIntegrator) ExchangeToken(ctx context.Context, accessToken string) (string, int64, error) {
	if !s.cfg.Auth.LongLivedToken {
		return accessToken, 0, nil
	}

	resp, err := s.Client.ExchangeLongLivedToken(ctx, accessToken)
	if err != nil {
		return "", 0, err
	}

	return resp.AccessToken, resp.ExpiresIn, nil
}
