package export

import (
	"bytes"
	"encoding/csv"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

func sampleResponse() *domain.InsightsResponse {
	return &domain.InsightsResponse{
		Ads: []domain.AdRow{
			domain.NewAdRow(domain.AdRow{Date: "2025-04-10", ISOWeek: "15", Month: "April", Year: "2025", AdName: `Ad "A", v2`, CampaignName: "Summer Sale", AmountSpent: "100", Purchase: "3"}),
		},
		Campaigns: []domain.CampaignRow{
			domain.NewCampaignRow(domain.CampaignRow{Date: "2025-04-10", CampaignName: "Summer Sale", AmountSpent: "100"}),
		},
	}
}

func TestEscapeCSV(t *testing.T) {
	assert.Equal(t, "plain", EscapeCSV("plain"))
	assert.Equal(t, `"a,b"`, EscapeCSV("a,b"))
	assert.Equal(t, `"say ""hi"""`, EscapeCSV(`say "hi"`))
	assert.Equal(t, `""","""`, EscapeCSV(`","`))
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	values := []string{
		"a,b",
		`quote "inside"`,
		`both, "here"`,
		`"`,
		",",
		`,,""`,
		"no special chars",
	}

	for _, v := range values {
		t.Run(v, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteCSV(&buf, Table{Headers: []string{"h"}, Rows: [][]string{{v}}}))

			records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
			require.NoError(t, err)
			require.Len(t, records, 2)
			assert.Equal(t, []string{v}, records[1])
		})
	}
}

func TestWriteCSV_Layout(t *testing.T) {
	var buf bytes.Buffer
	table := Table{
		Headers: []string{"Date", "Name"},
		Rows:    [][]string{{"2025-04-10", "x"}, {"2025-04-11", "y,z"}},
	}

	require.NoError(t, WriteCSV(&buf, table))
	assert.Equal(t, "Date,Name\n2025-04-10,x\n2025-04-11,\"y,z\"", buf.String())
}

func TestTables(t *testing.T) {
	resp := sampleResponse()

	ads := TableForLevel(resp, LevelAds)
	assert.Equal(t, domain.Headers(domain.AdColumns), ads.Headers)
	require.Len(t, ads.Rows, 1)
	assert.Len(t, ads.Rows[0], 32)

	campaigns := TableForLevel(resp, LevelCampaigns)
	assert.Len(t, campaigns.Headers, 14)
	require.Len(t, campaigns.Rows, 1)

	all := TableForLevel(resp, LevelAll)
	assert.Equal(t, "Type", all.Headers[0])
	require.Len(t, all.Rows, 2)
	assert.Equal(t, "Ad", all.Rows[0][0])
	assert.Equal(t, "Campaign", all.Rows[1][0])
	assert.Equal(t, domain.CampaignTotalAdName, all.Rows[1][5])

	assert.False(t, ads.IsNumeric(0))
	assert.True(t, ads.IsNumeric(10))
	assert.False(t, ads.IsNumeric(100))

	metrics := MetricsTable([]domain.PerformanceMetricRow{{Date: "2025-04-10", Type: domain.RowTypeAd, Campaign: "c"}})
	assert.Len(t, metrics.Headers, len(domain.PerformanceMetricColumns))
	require.Len(t, metrics.Rows, 1)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelAll, level)

	level, err = ParseLevel("campaigns")
	require.NoError(t, err)
	assert.Equal(t, LevelCampaigns, level)

	_, err = ParseLevel("adsets")
	assert.Error(t, err)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	table := TableForLevel(sampleResponse(), LevelAds)

	require.NoError(t, WriteXLSX(&buf, table, ""))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{DefaultSheetName}, f.GetSheetList())

	rows, err := f.GetRows(DefaultSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "2025-04-10", rows[1][0])
	assert.Equal(t, `Ad "A", v2`, rows[1][4])

	spend, err := f.GetCellValue(DefaultSheetName, "K2")
	require.NoError(t, err)
	assert.Equal(t, "100", spend)
}

func TestWriteXLSX_ColunaDate(t *testing.T) {
	tests := []struct {
		name     string
		table    Table
		dateCell string
		textCell string
	}{
		{
			name:     "Nível all com Type antes de Date",
			table:    TableForLevel(sampleResponse(), LevelAll),
			dateCell: "B2",
			textCell: "A2",
		},
		{
			name:     "Nível ads com Date na primeira coluna",
			table:    TableForLevel(sampleResponse(), LevelAds),
			dateCell: "A2",
			textCell: "E2",
		},
		{
			name:     "Sem cabeçalho Date usa a primeira coluna",
			table:    Table{Headers: []string{"Dia", "Nome"}, Rows: [][]string{{"2025-04-10", "x"}}},
			dateCell: "A2",
			textCell: "B2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteXLSX(&buf, tt.table, ""))

			f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			defer f.Close()

			formatted, err := f.GetCellValue(DefaultSheetName, tt.dateCell)
			require.NoError(t, err)
			assert.Equal(t, "2025-04-10", formatted)

			raw, err := f.GetCellValue(DefaultSheetName, tt.dateCell, excelize.Options{RawCellValue: true})
			require.NoError(t, err)
			assert.Equal(t, "45757", raw)

			cellType, err := f.GetCellType(DefaultSheetName, tt.textCell)
			require.NoError(t, err)
			assert.Equal(t, excelize.CellTypeSharedString, cellType)
		})
	}
}

func TestWriteXLSX_NonDateFirstColumn(t *testing.T) {
	var buf bytes.Buffer
	table := Table{Headers: []string{"Name", "Value"}, Rows: [][]string{{"bad-date", "1"}}, Numeric: []bool{false, true}}

	require.NoError(t, WriteXLSX(&buf, table, "Custom"))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Custom")
	require.NoError(t, err)
	assert.Equal(t, "bad-date", rows[1][0])
}

func TestLookerLink(t *testing.T) {
	link, err := LookerLink("sheet-123", 0, "Facebook Ads Data", DefaultLookerLayout())
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "lookerstudio.google.com", u.Host)
	assert.Equal(t, "/reporting/create", u.Path)

	q := u.Query()
	assert.Equal(t, "googleSheets", q.Get("ds.connector"))
	assert.Equal(t, "sheet-123", q.Get("ds.spreadsheetId"))
	assert.Equal(t, "0", q.Get("ds.worksheetId"))
	assert.Equal(t, "Facebook Ads Data", q.Get("r.reportName"))

	var layout LookerLayout
	require.NoError(t, json.Unmarshal([]byte(q.Get("r.layout")), &layout))
	assert.Equal(t, DefaultLookerLayout(), &layout)

	_, err = LookerLink("", 0, "x", nil)
	assert.Error(t, err)

	noLayout, err := LookerLink("s", 42, "x", nil)
	require.NoError(t, err)
	assert.NotContains(t, noLayout, "r.layout")
	assert.Contains(t, noLayout, "ds.worksheetId=42")
}

func TestLoadLookerLayout(t *testing.T) {
	layout, err := LoadLookerLayout("")
	require.NoError(t, err)
	assert.Equal(t, DefaultLookerLayout(), layout)

	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pages:
  - name: Resumo
    charts:
      - type: scorecard
        metrics: [Amount Spent]
`), 0o600))

	layout, err = LoadLookerLayout(path)
	require.NoError(t, err)
	require.Len(t, layout.Pages, 1)
	assert.Equal(t, "Resumo", layout.Pages[0].Name)
	assert.Equal(t, []string{"Amount Spent"}, layout.Pages[0].Charts[0].Metrics)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("pages: []\n"), 0o600))
	_, err = LoadLookerLayout(empty)
	assert.Error(t, err)

	_, err = LoadLookerLayout(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
