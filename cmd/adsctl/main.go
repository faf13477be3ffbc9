package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/google/sheets"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/exporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/log"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

type options struct {
	accountID   string
	from        string
	to          string
	accessToken string
	timeout     time.Duration
}

func main() {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "adsctl",
		Short:         "Relatórios de anúncios do Facebook pela linha de comando",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.accountID, "account", "a", "", "ID da conta de anúncios (act_...)")
	rootCmd.PersistentFlags().StringVar(&opts.from, "from", "", "Data inicial (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&opts.to, "to", "", "Data final (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVarP(&opts.accessToken, "token", "t", "", "Access token do Facebook (padrão: META_ACCESS_TOKEN)")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 5*time.Minute, "Tempo máximo de execução")

	rootCmd.AddCommand(exportCmd(opts), sheetsSyncCmd(opts), lookerCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func exportCmd(opts *options) *cobra.Command {
	var format, level, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Gera o relatório em csv ou excel",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			cfg, exporter, err := build(ctx, false)
			if err != nil {
				return err
			}

			filters, err := opts.filters()
			if err != nil {
				return err
			}

			f, err := exporting.ParseFormat(format)
			if err != nil {
				return err
			}

			file, err := exporter.ExportFile(ctx, opts.token(cfg), filters, f, level)
			if err != nil {
				return err
			}

			if output == "" {
				output = file.FileName
			}
			if err := os.WriteFile(output, file.Content, 0o644); err != nil {
				return fmt.Errorf("erro ao gravar %s: %w", output, err)
			}

			logrus.WithFields(logrus.Fields{
				"file":  output,
				"bytes": len(file.Content),
			}).Info("Relatório exportado")
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(exporting.FormatCSV), `Formato do arquivo: "csv" ou "excel"`)
	cmd.Flags().StringVarP(&level, "level", "l", "all", `Nível: "ads", "campaigns" ou "all"`)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Caminho do arquivo gerado")

	return cmd
}

func sheetsSyncCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sheets-sync",
		Short: "Atualiza as abas do Google Sheets com o período informado",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			cfg, exporter, err := build(ctx, true)
			if err != nil {
				return err
			}

			filters, err := opts.filters()
			if err != nil {
				return err
			}

			result, err := exporter.SyncSheets(ctx, opts.token(cfg), filters)
			if err != nil {
				return err
			}

			fmt.Println(utils.PrettyJson(result))
			if result.Failed() > 0 {
				return fmt.Errorf("%d aba(s) não foram atualizadas", result.Failed())
			}
			return nil
		},
	}
}

func lookerCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "looker",
		Short: "Gera o link do Looker Studio para a planilha",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			_, exporter, err := build(ctx, true)
			if err != nil {
				return err
			}

			result, err := exporter.LookerReport(ctx)
			if err != nil {
				return err
			}

			fmt.Println(utils.PrettyJson(result))
			return nil
		},
	}
}

func (o *options) token(cfg *config.Config) string {
	if o.accessToken != "" {
		return o.accessToken
	}
	return cfg.Meta.AccessToken
}

// filters monta o período; sem datas usa os últimos 7 dias terminando ontem
func (o *options) filters() (*domain.InsightFilters, error) {
	now := time.Now()
	filters := &domain.InsightFilters{
		AccountID: o.accountID,
		StartDate: utils.DaysAgo(now, 7),
		EndDate:   utils.DaysAgo(now, 1),
	}

	if o.from != "" {
		from, err := utils.ParseDate(o.from)
		if err != nil {
			return nil, fmt.Errorf("--from inválido: %w", err)
		}
		filters.StartDate = from
	}

	if o.to != "" {
		to, err := utils.ParseDate(o.to)
		if err != nil {
			return nil, fmt.Errorf("--to inválido: %w", err)
		}
		filters.EndDate = to
	}

	return filters, nil
}

func build(ctx context.Context, needSheets bool) (*config.Config, exporting.Exporter, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	log.Configure(cfg.App.LogLevel)

	reporter := reporting.NewService(meta.New(cfg, metaclient.NewClient(cfg)), reporting.LogObserver{})

	var sink sheets.Sink
	if cfg.SheetsEnabled() {
		sheetsAPI, err := sheets.NewService(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		sink = sheets.NewWriter(sheetsAPI, cfg.Google.SheetsID)
	} else if needSheets {
		return nil, nil, fmt.Errorf("google sheets não configurado: defina GOOGLE_SERVICE_ACCOUNT_EMAIL, GOOGLE_PRIVATE_KEY e GOOGLE_SHEETS_ID")
	}

	return cfg, exporting.NewService(cfg, reporter, sink), nil
}
