package handler

import (
	"net/http"

	"github.com/vfg2006/ads-report-api/internal/api/handler/router"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-report-api/internal/usecases/exporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/facebook/login",
			Method:  http.MethodGet,
			Handler: FacebookLogin(service, cfg),
		},
		{
			Path:    "/v1/auth/facebook/callback",
			Method:  http.MethodGet,
			Handler: FacebookCallback(service, cfg),
		},
		{
			Path:    "/v1/auth/token",
			Method:  http.MethodPost,
			Handler: TokenLogin(service, cfg),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(),
		},
	}
}

func AdAccounts(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ad-accounts",
			Method:  http.MethodGet,
			Handler: ListAdAccounts(service),
		},
	}
}

func Insights(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(service),
		},
		{
			Path:    "/v1/insights/performance",
			Method:  http.MethodGet,
			Handler: GetPerformance(service),
		},
	}
}

func Export(service exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/export",
			Method:  http.MethodGet,
			Handler: ExportFile(service),
		},
		{
			Path:    "/v1/export/sheets",
			Method:  http.MethodGet,
			Handler: ExportSheet(service),
		},
		{
			Path:    "/v1/export/sheets",
			Method:  http.MethodPost,
			Handler: SyncSheets(service),
		},
		{
			Path:    "/v1/export/looker",
			Method:  http.MethodGet,
			Handler: LookerReport(service),
		},
		{
			Path:    "/v1/sheets/status",
			Method:  http.MethodGet,
			Handler: SheetsStatus(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/sheets-sync/run",
			Method:  http.MethodPost,
			Handler: RunSheetsSync(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
