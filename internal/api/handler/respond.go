package handler

import (
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/google/sheets"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-report-api/internal/usecases/exporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros dos casos de uso para o envelope {error, code}
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		reportErr *reporting.ReportError
		authErr   *authenticating.AuthError
		exportErr *exporting.ExportError
		sinkErr   *sheets.SinkWriteError
	)

	code := apiErrors.ErrInternalServer
	message := "Erro interno no servidor"
	details := ""

	switch {
	case errors.As(err, &reportErr):
		code, message, details = reportErr.Code, reportErr.Err.Error(), reportErr.Details
	case errors.As(err, &authErr):
		code, message, details = authErr.Code, authErr.Err.Error(), authErr.Details
	case errors.As(err, &exportErr):
		code, message, details = exportErr.Code, exportErr.Err.Error(), exportErr.Details
	case errors.As(err, &sinkErr):
		code, message, details = apiErrors.ErrSinkWrite, exporting.ErrSinkWrite.Error(), sinkErr.Error()
	}

	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"error":      err.Error(),
		"error_code": code,
		"path":       r.URL.Path,
	})
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error("Erro ao processar requisição")
	} else {
		logger.Warn("Requisição recusada")
	}

	if details == "" {
		apiErrors.WriteError(w, code, message, nil)
		return
	}
	apiErrors.WriteError(w, code, message, details)
}

// parseFilters lê accountId, from e to da query; a obrigatoriedade é validada no caso de uso
func parseFilters(r *http.Request) (*domain.InsightFilters, error) {
	q := r.URL.Query()

	filters := &domain.InsightFilters{
		AccountID: strings.TrimSpace(q.Get("accountId")),
	}

	dates := []struct {
		param string
		dst   *time.Time
	}{
		{"from", &filters.StartDate},
		{"to", &filters.EndDate},
	}

	for _, d := range dates {
		value := strings.TrimSpace(q.Get(d.param))
		if value == "" {
			continue
		}

		parsed, err := utils.ParseDate(value)
		if err != nil {
			return nil, reporting.NewReportError(reporting.ErrInvalidDate, apiErrors.ErrInvalidFormat,
				d.param+" deve estar no formato YYYY-MM-DD")
		}
		*d.dst = parsed
	}

	return filters, nil
}
