package meta

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestMetaIntegrator_FetchReportData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	filters := &domain.InsightFilters{
		AccountID: "act_1",
		StartDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, report *RawReport, stages map[Stage]int, err error)
	}{
		{
			name: "Todas as buscas com sucesso",
			setup: func() {
				mockClient.EXPECT().GetCampaigns(gomock.Any(), "token", "act_1").
					Return([]metadomain.Campaign{{ID: "c1"}}, nil)
				mockClient.EXPECT().GetAdSets(gomock.Any(), "token", "act_1").
					Return([]metadomain.AdSet{{ID: "as1"}, {ID: "as2"}}, nil)
				mockClient.EXPECT().GetCampaignInsights(gomock.Any(), "token", filters).
					Return([]metadomain.Insight{{CampaignID: "c1"}}, nil)
				mockClient.EXPECT().GetAdInsights(gomock.Any(), "token", filters).
					Return([]metadomain.Insight{{AdID: "a1"}, {AdID: "a2"}, {AdID: "a3"}}, nil)
			},
			validate: func(t *testing.T, report *RawReport, stages map[Stage]int, err error) {
				require.NoError(t, err)
				assert.Len(t, report.Campaigns, 1)
				assert.Len(t, report.AdSets, 2)
				assert.Len(t, report.CampaignInsights, 1)
				assert.Len(t, report.AdInsights, 3)
				assert.Equal(t, map[Stage]int{
					StageCampaigns:        1,
					StageAdSets:           2,
					StageCampaignInsights: 1,
					StageAdInsights:       3,
				}, stages)
			},
		},
		{
			name: "Falha em uma busca interrompe o relatório",
			setup: func() {
				upstream := &metaclient.FetchError{Status: 400, Message: "Invalid parameter"}
				mockClient.EXPECT().GetCampaigns(gomock.Any(), "token", "act_1").
					Return(nil, upstream)
				mockClient.EXPECT().GetAdSets(gomock.Any(), "token", "act_1").
					Return([]metadomain.AdSet{}, nil).AnyTimes()
				mockClient.EXPECT().GetCampaignInsights(gomock.Any(), "token", filters).
					Return([]metadomain.Insight{}, nil).AnyTimes()
				mockClient.EXPECT().GetAdInsights(gomock.Any(), "token", filters).
					Return([]metadomain.Insight{}, nil).AnyTimes()
			},
			validate: func(t *testing.T, report *RawReport, stages map[Stage]int, err error) {
				assert.Nil(t, report)
				require.Error(t, err)

				var stageErr *StageError
				require.True(t, errors.As(err, &stageErr))
				assert.Equal(t, StageCampaigns, stageErr.Stage)

				var fetchErr *metaclient.FetchError
				require.True(t, errors.As(err, &fetchErr))
				assert.Equal(t, "Invalid parameter", fetchErr.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			var mu sync.Mutex
			stages := map[Stage]int{}
			report, err := integrator.FetchReportData(context.Background(), "token", filters, func(stage Stage, records int) {
				mu.Lock()
				defer mu.Unlock()
				stages[stage] = records
			})

			tt.validate(t, report, stages, err)
		})
	}
}

func TestMetaIntegrator_GetAdAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	mockClient.EXPECT().GetAdAccounts(gomock.Any(), "token").Return([]metadomain.AdAccount{
		{ID: "act_1", AccountID: "1", Name: "Loja A", AccountStatus: 1},
		{ID: "act_2", AccountID: "2", Name: "Loja B", AccountStatus: 2},
	}, nil)

	accounts, err := integrator.GetAdAccounts(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, []domain.AdAccount{
		{ID: "act_1", Name: "Loja A", AccountID: "1", Status: domain.AdAccountStatusActive},
		{ID: "act_2", Name: "Loja B", AccountID: "2", Status: domain.AdAccountStatusInactive},
	}, accounts)
}

func TestMetaIntegrator_VerifyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(&config.Config{}, mockClient)

	mockClient.EXPECT().GetUser(gomock.Any(), "token").Return(&metadomain.User{ID: "u1", Name: "Maria"}, nil)
	mockClient.EXPECT().GetPermissions(gomock.Any(), "token", "u1").Return([]metadomain.Permission{
		{Permission: "ads_read", Status: "granted"},
		{Permission: "ads_management", Status: "declined"},
	}, nil)

	user, missing, err := integrator.VerifyToken(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, []string{"ads_management", "business_management"}, missing)
}

func TestMetaIntegrator_ExchangeToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	t.Run("Troca desabilitada devolve o próprio token", func(t *testing.T) {
		integrator := New(&config.Config{}, mockClient)

		token, expiresIn, err := integrator.ExchangeToken(context.Background(), "short")

		require.NoError(t, err)
		assert.Equal(t, "short", token)
		assert.Zero(t, expiresIn)
	})

	t.Run("Troca habilitada", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Auth.LongLivedToken = true
		integrator := New(cfg, mockClient)

		mockClient.EXPECT().ExchangeLongLivedToken(gomock.Any(), "short").
			Return(&metaclient.TokenResponse{AccessToken: "long", ExpiresIn: 3600}, nil)

		token, expiresIn, err := integrator.ExchangeToken(context.Background(), "short")

		require.NoError(t, err)
		assert.Equal(t, "long", token)
		assert.Equal(t, int64(3600), expiresIn)
	})
}
