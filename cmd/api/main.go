package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/google/sheets"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-report-api/internal/api"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/scheduler"
	"github.com/vfg2006/ads-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-report-api/internal/usecases/exporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, ok := log.Configure(cfg.App.LogLevel)
	if !ok {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	reporter := reporting.NewService(metaIntegrator, reporting.LogObserver{})
	exporter := exporting.NewService(cfg, reporter, sheetsSink(ctx, cfg))

	authenticator := authenticating.NewService(cfg, authenticating.NewOAuthConfig(cfg), metaIntegrator)

	sheetsSyncService := scheduler.NewSheetsSyncService(exporter, cfg)
	if err := sheetsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de exportação para o Google Sheets")
	}

	server, err := api.New(cfg, reporter, exporter, authenticator, sheetsSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// sheetsSink cria o writer do Google Sheets; nil quando a integração não está configurada
func sheetsSink(ctx context.Context, cfg *config.Config) sheets.Sink {
	if !cfg.SheetsEnabled() {
		logrus.Warn("Google Sheets não configurado, exportações para planilha desabilitadas")
		return nil
	}

	sheetsAPI, err := sheets.NewService(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar cliente do Google Sheets, exportações para planilha desabilitadas")
		return nil
	}

	logrus.WithField("spreadsheet_id", cfg.Google.SheetsID).Info("Cliente do Google Sheets configurado")
	return sheets.NewWriter(sheetsAPI, cfg.Google.SheetsID)
}
