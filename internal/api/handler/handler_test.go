package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/google/sheets"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/ads-report-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ads-report-api/internal/usecases/exporting"
	exportmocks "github.com/vfg2006/ads-report-api/internal/usecases/exporting/mocks"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	reportmocks "github.com/vfg2006/ads-report-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var testClaims = &domain.Claims{UserID: "u1", UserName: "Maria", UserEmail: "maria@example.com"}

// withSession simula o que o AuthMiddleware coloca no contexto
func withSession(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.ContextKeyUser, testClaims)
	ctx = context.WithValue(ctx, middleware.ContextKeyAccessToken, "fb-token")
	return r.WithContext(ctx)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestParseFilters(t *testing.T) {
	t.Run("Datas válidas", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/v1/insights?accountId=%20act_1%20&from=2025-04-01&to=2025-04-07", nil)

		filters, err := parseFilters(r)
		require.NoError(t, err)
		assert.Equal(t, "act_1", filters.AccountID)
		assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), filters.StartDate)
		assert.Equal(t, time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC), filters.EndDate)
	})

	t.Run("Parâmetros ausentes ficam para o caso de uso", func(t *testing.T) {
		filters, err := parseFilters(httptest.NewRequest(http.MethodGet, "/v1/insights", nil))
		require.NoError(t, err)
		assert.Empty(t, filters.AccountID)
		assert.True(t, filters.StartDate.IsZero())
	})

	t.Run("Data fora do formato", func(t *testing.T) {
		_, err := parseFilters(httptest.NewRequest(http.MethodGet, "/v1/insights?accountId=act_1&from=01/04/2025", nil))
		assert.ErrorIs(t, err, reporting.ErrInvalidDate)
	})
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "Erro de validação",
			err:    reporting.NewReportError(reporting.ErrMissingParameters, apiErrors.ErrMissingRequiredData, "accountId"),
			status: http.StatusBadRequest,
			code:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:   "Erro de autenticação",
			err:    authenticating.NewAuthError(authenticating.ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, ""),
			status: http.StatusForbidden,
			code:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:   "Erro de exportação",
			err:    exporting.NewExportError(exporting.ErrSheetsNotConfigured, apiErrors.ErrNotConfigured, ""),
			status: http.StatusServiceUnavailable,
			code:   apiErrors.ErrNotConfigured,
		},
		{
			name:   "Falha na planilha",
			err:    &sheets.SinkWriteError{Sheet: "Ads", Err: errors.New("quota")},
			status: http.StatusBadGateway,
			code:   apiErrors.ErrSinkWrite,
		},
		{
			name:   "Erro desconhecido",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			code:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/v1/insights", nil), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestGetInsights(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		setup    func(reporter *reportmocks.MockReporter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Devolve anúncios e campanhas",
			url:  "/v1/insights?accountId=act_1&from=2025-04-01&to=2025-04-07",
			setup: func(reporter *reportmocks.MockReporter) {
				reporter.EXPECT().GetInsights(gomock.Any(), "fb-token", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, filters *domain.InsightFilters) (*domain.InsightsResponse, error) {
						assert.Equal(t, "act_1", filters.AccountID)
						return &domain.InsightsResponse{
							Ads:       []domain.AdRow{{AdName: "Ad 1"}},
							Campaigns: []domain.CampaignRow{},
						}, nil
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

				var body domain.InsightsResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				require.Len(t, body.Ads, 1)
				assert.Equal(t, "Ad 1", body.Ads[0].AdName)
			},
		},
		{
			name:  "Data inválida não chega ao caso de uso",
			url:   "/v1/insights?accountId=act_1&from=abril&to=2025-04-07",
			setup: func(reporter *reportmocks.MockReporter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
			},
		},
		{
			name: "Falha no Graph API",
			url:  "/v1/insights?accountId=act_1&from=2025-04-01&to=2025-04-07",
			setup: func(reporter *reportmocks.MockReporter) {
				reporter.EXPECT().GetInsights(gomock.Any(), "fb-token", gomock.Any()).
					Return(nil, reporting.NewUpstreamFetchError(apiErrors.ErrUpstreamFetch, errors.New("(#17) User request limit reached")))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, apiErrors.ErrUpstreamFetch, decodeError(t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reporter := reportmocks.NewMockReporter(ctrl)
			tt.setup(reporter)

			rec := httptest.NewRecorder()
			GetInsights(reporter).ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, tt.url, nil)))
			tt.validate(t, rec)
		})
	}
}

func TestGetPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportmocks.NewMockReporter(ctrl)
	reporter.EXPECT().GetPerformance(gomock.Any(), "fb-token", gomock.Any()).Return(nil, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/insights/performance?accountId=act_1&from=2025-04-01&to=2025-04-07", nil)
	GetPerformance(reporter).ServeHTTP(rec, withSession(req))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"metrics":[]}`, rec.Body.String())
}

func TestListAdAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportmocks.NewMockReporter(ctrl)
	reporter.EXPECT().GetAdAccounts(gomock.Any(), "fb-token").Return([]domain.AdAccount{
		{ID: "act_1", Name: "Loja", AccountID: "1", Status: domain.AdAccountStatusActive},
	}, nil)

	rec := httptest.NewRecorder()
	ListAdAccounts(reporter).ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/v1/ad-accounts", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"accounts":[{"id":"act_1","name":"Loja","accountId":"1","status":"Active"}]}`, rec.Body.String())
}

func TestExportFile(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		setup    func(exporter *exportmocks.MockExporter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "CSV como anexo",
			url:  "/v1/export?accountId=act_1&from=2025-04-01&to=2025-04-07&level=ads",
			setup: func(exporter *exportmocks.MockExporter) {
				exporter.EXPECT().ExportFile(gomock.Any(), "fb-token", gomock.Any(), exporting.FormatCSV, "ads").
					Return(&exporting.File{ContentType: "text/csv", FileName: "ads.csv", Content: []byte("a,b\n")}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
				assert.Equal(t, `attachment; filename="ads.csv"`, rec.Header().Get("Content-Disposition"))
				assert.Equal(t, "4", rec.Header().Get("Content-Length"))
				assert.Equal(t, "a,b\n", rec.Body.String())
			},
		},
		{
			name:  "Formato inválido",
			url:   "/v1/export?accountId=act_1&from=2025-04-01&to=2025-04-07&format=pdf",
			setup: func(exporter *exportmocks.MockExporter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
			},
		},
		{
			name: "Nível inválido",
			url:  "/v1/export?accountId=act_1&from=2025-04-01&to=2025-04-07&format=excel&level=adsets",
			setup: func(exporter *exportmocks.MockExporter) {
				exporter.EXPECT().ExportFile(gomock.Any(), "fb-token", gomock.Any(), exporting.FormatExcel, "adsets").
					Return(nil, exporting.NewExportError(exporting.ErrInvalidLevel, apiErrors.ErrInvalidFormat, ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			exporter := exportmocks.NewMockExporter(ctrl)
			tt.setup(exporter)

			rec := httptest.NewRecorder()
			ExportFile(exporter).ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, tt.url, nil)))
			tt.validate(t, rec)
		})
	}
}

func TestExportSheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	exporter := exportmocks.NewMockExporter(ctrl)
	exporter.EXPECT().ExportSheet(gomock.Any(), exporting.FormatExcel).
		Return(&exporting.File{ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", FileName: "sheet.xlsx", Content: []byte("xlsx")}, nil)

	rec := httptest.NewRecorder()
	ExportSheet(exporter).ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/v1/export/sheets?format=excel", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "sheet.xlsx")
}

func TestSyncSheets(t *testing.T) {
	t.Run("Falha parcial responde 200 com o erro da aba", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exporter := exportmocks.NewMockExporter(ctrl)
		exporter.EXPECT().SyncSheets(gomock.Any(), "fb-token", gomock.Any()).Return(&exporting.SyncResult{
			ExportID: "exp1",
			Sheets: []exporting.SheetResult{
				{Sheet: exporting.SheetMarketingAPI, Rows: 3},
				{Sheet: exporting.SheetAds, Error: "quota"},
			},
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/export/sheets?accountId=act_1&from=2025-04-01&to=2025-04-07", nil)
		SyncSheets(exporter).ServeHTTP(rec, withSession(req))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"exportId":"exp1","sheets":[{"sheet":"MarketingAPI","rows":3},{"sheet":"Ads","rows":0,"error":"quota"}]}`, rec.Body.String())
	})

	t.Run("Sheets não configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		exporter := exportmocks.NewMockExporter(ctrl)
		exporter.EXPECT().SyncSheets(gomock.Any(), "fb-token", gomock.Any()).
			Return(nil, exporting.NewExportError(exporting.ErrSheetsNotConfigured, apiErrors.ErrNotConfigured, ""))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/export/sheets?accountId=act_1&from=2025-04-01&to=2025-04-07", nil)
		SyncSheets(exporter).ServeHTTP(rec, withSession(req))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestLookerReportAndSheetsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	exporter := exportmocks.NewMockExporter(ctrl)
	exporter.EXPECT().LookerReport(gomock.Any()).Return(&exporting.LookerResult{Success: true, URL: "https://lookerstudio.google.com/reporting/create?c.reportId=x"}, nil)
	exporter.EXPECT().SheetsStatus(gomock.Any()).Return(&sheets.SpreadsheetInfo{
		SpreadsheetID: "sheet-1",
		Title:         "Ads Report",
		Sheets:        []sheets.SheetInfo{},
	}, nil)

	rec := httptest.NewRecorder()
	LookerReport(exporter).ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/v1/export/looker", nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	rec = httptest.NewRecorder()
	SheetsStatus(exporter).ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/v1/sheets/status", nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"spreadsheetId":"sheet-1","spreadsheetTitle":"Ads Report","sheets":[]}`, rec.Body.String())
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{SessionTTL: time.Hour, CookieSecure: true},
	}
}

func TestFacebookLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().LoginURL().Return("https://www.facebook.com/dialog/oauth?state=abc", "abc", nil)

	rec := httptest.NewRecorder()
	FacebookLogin(auth, testConfig()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/auth/facebook/login", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://www.facebook.com/dialog/oauth?state=abc", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, stateCookie, cookies[0].Name)
	assert.Equal(t, "abc", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
}

func TestFacebookCallback(t *testing.T) {
	session := &domain.Session{Token: "session-jwt", User: domain.User{ID: "u1", Name: "Maria"}}

	tests := []struct {
		name     string
		url      string
		cookie   string
		setup    func(auth *authmocks.MockAuthenticator)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Cria a sessão e grava o cookie",
			url:    "/v1/auth/facebook/callback?code=the-code&state=abc",
			cookie: "abc",
			setup: func(auth *authmocks.MockAuthenticator) {
				auth.EXPECT().Callback(gomock.Any(), "the-code", "abc", "abc").Return(session, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"token":"session-jwt","user":{"id":"u1","name":"Maria"}}`, rec.Body.String())

				values := map[string]string{}
				for _, c := range rec.Result().Cookies() {
					values[c.Name] = c.Value
				}
				assert.Equal(t, "session-jwt", values[middleware.SessionCookie])
				assert.Equal(t, "", values[stateCookie])
			},
		},
		{
			name:  "Sem cookie de state",
			url:   "/v1/auth/facebook/callback?code=the-code&state=abc",
			setup: func(auth *authmocks.MockAuthenticator) {
				auth.EXPECT().Callback(gomock.Any(), "the-code", "abc", "").
					Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidState, apiErrors.ErrOAuthState, ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrOAuthState, decodeError(t, rec).Code)
			},
		},
		{
			name:  "Usuário negou o acesso no Facebook",
			url:   "/v1/auth/facebook/callback?error=access_denied&error_description=Permissions+error",
			setup: func(auth *authmocks.MockAuthenticator) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				body := decodeError(t, rec)
				assert.Equal(t, apiErrors.ErrOAuthExchange, body.Code)
				assert.Equal(t, "Permissions error", body.Details)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := authmocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: stateCookie, Value: tt.cookie})
			}

			rec := httptest.NewRecorder()
			FacebookCallback(auth, testConfig()).ServeHTTP(rec, req)
			tt.validate(t, rec)
		})
	}
}

func TestTokenLogin(t *testing.T) {
	t.Run("Token válido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().TokenLogin(gomock.Any(), "fb-token").
			Return(&domain.Session{Token: "session-jwt", User: domain.User{ID: "u1"}}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", strings.NewReader(`{"accessToken":"fb-token"}`))
		TokenLogin(auth, testConfig()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token":"session-jwt"`)
	})

	t.Run("Corpo inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", strings.NewReader(`{`))
		TokenLogin(auth, testConfig()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("Permissões ausentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := authmocks.NewMockAuthenticator(ctrl)
		auth.EXPECT().TokenLogin(gomock.Any(), "fb-token").
			Return(nil, authenticating.NewUserAuthError(authenticating.ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, "u1", "permissões ausentes: ads_read"))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", strings.NewReader(`{"accessToken":"fb-token"}`))
		TokenLogin(auth, testConfig()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "permissões ausentes: ads_read", decodeError(t, rec).Details)
	})
}

func TestGetMe(t *testing.T) {
	rec := httptest.NewRecorder()
	GetMe().ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/v1/me", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"u1","name":"Maria","email":"maria@example.com"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	GetMe().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

type fakeSheetsSync struct {
	accepted bool
	calls    int
}

func (f *fakeSheetsSync) TriggerManualSync() bool {
	f.calls++
	return f.accepted
}

func (f *fakeSheetsSync) GetStatus() map[string]any {
	return map[string]any{"sync_running": !f.accepted}
}

func TestRunSheetsSync(t *testing.T) {
	tests := []struct {
		name     string
		services CronJobServices
		status   int
	}{
		{
			name:     "Execução iniciada",
			services: CronJobServices{SheetsSyncService: &fakeSheetsSync{accepted: true}},
			status:   http.StatusAccepted,
		},
		{
			name:     "Execução já em andamento",
			services: CronJobServices{SheetsSyncService: &fakeSheetsSync{accepted: false}},
			status:   http.StatusConflict,
		},
		{
			name:     "Agendador ausente",
			services: CronJobServices{},
			status:   http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RunSheetsSync(tt.services).ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodPost, "/v1/cron/sheets-sync/run", nil)))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	services := CronJobServices{SheetsSyncService: &fakeSheetsSync{accepted: true}}
	GetCronStatus(services).ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sheets-sync":{"sync_running":false}}`, rec.Body.String())
}

func TestHealthcheck(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthcheckHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
