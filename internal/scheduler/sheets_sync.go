package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/exporting"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

// SheetsSyncConfig representa a configuração do snapshot agendado para o Google Sheets
type SheetsSyncConfig struct {
	CronSchedule string
	AccountID    string
	LookbackDays int
	SyncEnabled  bool
}

// SheetsSyncService agenda a exportação periódica de uma conta para a planilha
type SheetsSyncService struct {
	scheduler           *gocron.Scheduler
	config              SheetsSyncConfig
	accessToken         string
	exporter            exporting.Exporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *exporting.SyncResult
	lastError           string
	now                 func() time.Time
}

func NewSheetsSyncService(exporter exporting.Exporter, appConfig *config.Config) *SheetsSyncService {
	syncConfig := SheetsSyncConfig{
		CronSchedule: appConfig.SheetsSync.CronSchedule,
		AccountID:    appConfig.SheetsSync.AccountID,
		LookbackDays: appConfig.SheetsSync.LookbackDays,
		SyncEnabled:  appConfig.SheetsSync.Enabled,
	}

	if syncConfig.LookbackDays <= 0 {
		syncConfig.LookbackDays = 7
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"account_id":    syncConfig.AccountID,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de exportação para o Google Sheets carregada")

	return &SheetsSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      syncConfig,
		accessToken: appConfig.Meta.AccessToken,
		exporter:    exporter,
		now:         time.Now,
	}
}

// Start inicia o agendador
func (s *SheetsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Exportação agendada para o Google Sheets desabilitada por configuração")
		return nil
	}

	if s.config.AccountID == "" || s.accessToken == "" {
		return fmt.Errorf("exportação agendada exige SHEETS_SYNC_ACCOUNT_ID e META_ACCESS_TOKEN")
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de exportação para o Google Sheets")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSheets(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar exportação para o Google Sheets: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de exportação para o Google Sheets")
		s.scheduler.Stop()
	}()

	return nil
}

// filters cobre os últimos LookbackDays dias, terminando ontem
func (s *SheetsSyncService) filters() *domain.InsightFilters {
	now := s.now()
	return &domain.InsightFilters{
		AccountID: s.config.AccountID,
		StartDate: utils.DaysAgo(now, s.config.LookbackDays),
		EndDate:   utils.DaysAgo(now, 1),
	}
}

// syncSheets executa uma exportação; execuções sobrepostas são ignoradas
func (s *SheetsSyncService) syncSheets(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Exportação para o Google Sheets já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	s.runSync(ctx)
}

func (s *SheetsSyncService) runSync(ctx context.Context) {
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	filters := s.filters()
	logrus.WithFields(logrus.Fields{
		"account_id": filters.AccountID,
		"start_date": filters.StartDate.Format(time.DateOnly),
		"end_date":   filters.EndDate.Format(time.DateOnly),
	}).Info("Iniciando exportação agendada para o Google Sheets")

	result, err := s.exporter.SyncSheets(ctx, s.accessToken, filters)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.lastResult = result
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro na exportação agendada para o Google Sheets")
		return
	}

	s.lastSyncCompletedAt = s.now()
	logrus.WithFields(logrus.Fields{
		"export_id":     result.ExportID,
		"export_failed": result.Failed(),
	}).Info("Exportação agendada para o Google Sheets concluída")
}

// TriggerManualSync inicia manualmente uma exportação; false quando já existe uma em andamento
func (s *SheetsSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Exportação para o Google Sheets já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	logrus.Info("Iniciando exportação manual para o Google Sheets")
	go s.runSync(context.Background())

	return true
}

// IsRunning indica se há uma exportação em andamento
func (s *SheetsSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *SheetsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_account_id":        s.config.AccountID,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
		"last_error":             s.lastError,
	}
}
