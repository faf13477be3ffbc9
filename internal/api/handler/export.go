package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/ads-report-api/infrastructure/integrator/google/sheets"
	"github.com/vfg2006/ads-report-api/internal/usecases/exporting"
	"github.com/vfg2006/ads-report-api/pkg/log"
	"github.com/vfg2006/ads-report-api/pkg/middleware"
)

type SheetsStatusResponse struct {
	Success bool `json:"success"`
	*sheets.SpreadsheetInfo
}

// ExportFile devolve o relatório como anexo csv ou xlsx
func ExportFile(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		format, err := exporting.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		file, err := service.ExportFile(r.Context(), middleware.AccessTokenFromContext(r.Context()), filters, format, r.URL.Query().Get("level"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeFile(w, r, file)
	}
}

// ExportSheet baixa o conteúdo atual da aba do Looker
func ExportSheet(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, err := exporting.ParseFormat(r.URL.Query().Get("format"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		file, err := service.ExportSheet(r.Context(), format)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeFile(w, r, file)
	}
}

func SyncSheets(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		result, err := service.SyncSheets(r.Context(), middleware.AccessTokenFromContext(r.Context()), filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, result)
	}
}

func LookerReport(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.LookerReport(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, result)
	}
}

func SheetsStatus(service exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := service.SheetsStatus(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, SheetsStatusResponse{Success: true, SpreadsheetInfo: info})
	}
}

func writeFile(w http.ResponseWriter, r *http.Request, file *exporting.File) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(file.Content); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar arquivo")
	}
}
