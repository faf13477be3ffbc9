package export

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const lookerCreateURL = "https://lookerstudio.google.com/reporting/create"

// LookerLayout é a configuração de relatório enviada no parâmetro r.layout
type LookerLayout struct {
	Pages []LookerPage `yaml:"pages" json:"pages"`
}

type LookerPage struct {
	Name   string        `yaml:"name" json:"name"`
	Charts []LookerChart `yaml:"charts" json:"charts"`
}

type LookerChart struct {
	Type       string   `yaml:"type" json:"type"`
	Title      string   `yaml:"title,omitempty" json:"title,omitempty"`
	Dimensions []string `yaml:"dimensions,omitempty" json:"dimensions,omitempty"`
	Metrics    []string `yaml:"metrics,omitempty" json:"metrics,omitempty"`
}

// DefaultLookerLayout é usado quando nenhum arquivo de layout é configurado
func DefaultLookerLayout() *LookerLayout {
	return &LookerLayout{
		Pages: []LookerPage{
			{
				Name: "Overview",
				Charts: []LookerChart{
					{Type: "scorecard", Metrics: []string{"Amount Spent"}},
					{Type: "scorecard", Metrics: []string{"Impressions"}},
					{Type: "scorecard", Metrics: []string{"Clicks (all)"}},
					{Type: "scorecard", Metrics: []string{"Purchase Conversion Value"}},
					{Type: "timeseries", Title: "Spend by day", Dimensions: []string{"Date"}, Metrics: []string{"Amount Spent", "Purchase"}},
					{Type: "table", Title: "Campaigns", Dimensions: []string{"Campaing Name", "Type"}, Metrics: []string{"Amount Spent", "Impressions", "Link Clicks", "Purchase", "Purchase Conversion Value"}},
				},
			},
			{
				Name: "Ads",
				Charts: []LookerChart{
					{Type: "table", Dimensions: []string{"Ad Name", "Ad Set Name", "Campaing Name"}, Metrics: []string{"Amount Spent", "Leads", "Add To Cart", "Purchase"}},
				},
			},
		},
	}
}

// LoadLookerLayout lê o layout de um arquivo YAML; caminho vazio devolve o layout padrão
func LoadLookerLayout(path string) (*LookerLayout, error) {
	if path == "" {
		return DefaultLookerLayout(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("looker: erro ao ler layout %s: %w", path, err)
	}

	var layout LookerLayout
	if err := yaml.Unmarshal(raw, &layout); err != nil {
		return nil, fmt.Errorf("looker: layout inválido em %s: %w", path, err)
	}

	if len(layout.Pages) == 0 {
		return nil, fmt.Errorf("looker: layout em %s não tem páginas", path)
	}

	return &layout, nil
}

// LookerLink monta a URL da Linking API do Looker Studio apontando para a aba da planilha
func LookerLink(spreadsheetID string, worksheetID int64, reportName string, layout *LookerLayout) (string, error) {
	if spreadsheetID == "" {
		return "", fmt.Errorf("looker: spreadsheetId não informado")
	}

	params := url.Values{}
	params.Set("ds.connector", "googleSheets")
	params.Set("ds.spreadsheetId", spreadsheetID)
	params.Set("ds.worksheetId", strconv.FormatInt(worksheetID, 10))
	params.Set("r.reportName", reportName)

	if layout != nil {
		encoded, err := json.Marshal(layout)
		if err != nil {
			return "", fmt.Errorf("looker: erro ao serializar layout: %w", err)
		}
		params.Set("r.layout", string(encoded))
	}

	return lookerCreateURL + "?" + params.Encode(), nil
}
