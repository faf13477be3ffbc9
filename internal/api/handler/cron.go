package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
)

// SheetsSyncRunner é o agendador de exportação para o Google Sheets (scheduler.SheetsSyncService)
type SheetsSyncRunner interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SheetsSyncService SheetsSyncRunner
}

// RunSheetsSync executa manualmente a exportação agendada para o Google Sheets
func RunSheetsSync(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunSheetsSync")

		if services.SheetsSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotConfigured, "Serviço de exportação agendada não disponível", nil)
			return
		}

		if !services.SheetsSyncService.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Exportação para o Google Sheets já em andamento", nil)
			return
		}

		respondJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    "sheets-sync",
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"sheets-sync": nil,
		}
		if services.SheetsSyncService != nil {
			status["sheets-sync"] = services.SheetsSyncService.GetStatus()
		}

		respondJSON(w, r, http.StatusOK, status)
	}
}
