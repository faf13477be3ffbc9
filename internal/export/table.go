package export

import (
	"fmt"

	"github.com/vfg2006/ads-report-api/internal/domain"
)

type Level string

const (
	LevelAds       Level = "ads"
	LevelCampaigns Level = "campaigns"
	LevelAll       Level = "all"
)

func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case "":
		return LevelAll, nil
	case LevelAds, LevelCampaigns, LevelAll:
		return Level(s), nil
	}
	return "", fmt.Errorf("nível de exportação inválido: %q", s)
}

// Table é a matriz cabeçalho + linhas que todos os destinos de exportação consomem
type Table struct {
	Headers []string
	Rows    [][]string
	Numeric []bool
}

func newTable(columns []domain.Column, capacity int) Table {
	numeric := make([]bool, len(columns))
	for i, c := range columns {
		numeric[i] = c.Numeric
	}

	return Table{
		Headers: domain.Headers(columns),
		Rows:    make([][]string, 0, capacity),
		Numeric: numeric,
	}
}

// IsNumeric indica se a coluna i deve ser convertida para número nos destinos tipados
func (t Table) IsNumeric(i int) bool {
	return i < len(t.Numeric) && t.Numeric[i]
}

func AdTable(rows []domain.AdRow) Table {
	t := newTable(domain.AdColumns, len(rows))
	for _, r := range rows {
		t.Rows = append(t.Rows, r.Values())
	}
	return t
}

func CampaignTable(rows []domain.CampaignRow) Table {
	t := newTable(domain.CampaignColumns, len(rows))
	for _, r := range rows {
		t.Rows = append(t.Rows, r.Values())
	}
	return t
}

// UnifiedTable mistura anúncios e campanhas no layout da aba MarketingAPI
func UnifiedTable(rows []domain.Row) Table {
	t := newTable(domain.UnifiedColumns, len(rows))
	for _, r := range rows {
		t.Rows = append(t.Rows, domain.UnifiedValues(r))
	}
	return t
}

func MetricsTable(metrics []domain.PerformanceMetricRow) Table {
	t := newTable(domain.PerformanceMetricColumns, len(metrics))
	for _, m := range metrics {
		t.Rows = append(t.Rows, m.Values())
	}
	return t
}

// TableForLevel escolhe a tabela de acordo com o nível pedido na exportação
func TableForLevel(resp *domain.InsightsResponse, level Level) Table {
	switch level {
	case LevelAds:
		return AdTable(resp.Ads)
	case LevelCampaigns:
		return CampaignTable(resp.Campaigns)
	default:
		return UnifiedTable(resp.Rows())
	}
}
