package handler

import (
	"net/http"

	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/log"
	"github.com/vfg2006/ads-report-api/pkg/middleware"
)

type AdAccountsResponse struct {
	Accounts []domain.AdAccount `json:"accounts"`
}

type PerformanceResponse struct {
	Metrics []domain.PerformanceMetricRow `json:"metrics"`
}

func ListAdAccounts(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.GetAdAccounts(r.Context(), middleware.AccessTokenFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if accounts == nil {
			accounts = []domain.AdAccount{}
		}

		respondJSON(w, r, http.StatusOK, AdAccountsResponse{Accounts: accounts})
	}
}

func GetInsights(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("account_id", filters.AccountID).Debug("INIT - GetInsights")

		insights, err := service.GetInsights(r.Context(), middleware.AccessTokenFromContext(r.Context()), filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, insights)
	}
}

func GetPerformance(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		metrics, err := service.GetPerformance(r.Context(), middleware.AccessTokenFromContext(r.Context()), filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if metrics == nil {
			metrics = []domain.PerformanceMetricRow{}
		}

		respondJSON(w, r, http.StatusOK, PerformanceResponse{Metrics: metrics})
	}
}
