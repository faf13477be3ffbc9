package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/export"
	gsheets "google.golang.org/api/sheets/v4"
)

// Sink é a planilha remota usada como destino das exportações
type Sink interface {
	// Replace substitui todo o conteúdo da aba pela tabela (snapshot completo)
	Replace(ctx context.Context, sheetName string, table export.Table) (WriteResult, error)

	// Read devolve todas as linhas da aba, cabeçalho incluído
	Read(ctx context.Context, sheetName string) ([][]string, error)

	// Describe devolve título e abas da planilha
	Describe(ctx context.Context) (*SpreadsheetInfo, error)

	// WorksheetID devolve o id numérico da aba pedida ou, se ela não existir, da primeira
	WorksheetID(ctx context.Context, sheetName string) (int64, error)

	SpreadsheetID() string
}

type WriteResult struct {
	Sheet         string `json:"sheet"`
	Rows          int64  `json:"rows"`
	Created       bool   `json:"created"`
	HeaderUpdated bool   `json:"headerUpdated"`
}

type SheetInfo struct {
	Title   string `json:"title"`
	SheetID int64  `json:"sheetId"`
	Index   int64  `json:"index"`
}

type SpreadsheetInfo struct {
	SpreadsheetID string      `json:"spreadsheetId"`
	Title         string      `json:"spreadsheetTitle"`
	Sheets        []SheetInfo `json:"sheets"`
}

type Writer struct {
	api           API
	spreadsheetID string
}

func NewWriter(api API, spreadsheetID string) *Writer {
	return &Writer{
		api:           api,
		spreadsheetID: spreadsheetID,
	}
}

func (w *Writer) SpreadsheetID() string {
	return w.spreadsheetID
}

// Replace segue a sequência: garante a aba, limpa e reescreve o cabeçalho se diferente, limpa
// tudo abaixo dele e anexa as linhas novas. Não há lock: exportações concorrentes na
// mesma aba resultam em "último a escrever vence".
func (w *Writer) Replace(ctx context.Context, sheetName string, table export.Table) (WriteResult, error) {
	result := WriteResult{Sheet: sheetName}

	created, err := w.ensureSheet(ctx, sheetName)
	if err != nil {
		return result, err
	}
	result.Created = created

	current, err := w.api.GetValues(ctx, w.spreadsheetID, a1(sheetName, "1:1"))
	if err != nil {
		return result, sinkError(sheetName, err, "erro ao ler cabeçalho")
	}

	if !headersMatch(current, table.Headers) {
		// cabeçalho antigo mais largo deixaria células sobrando
		if err := w.api.ClearValues(ctx, w.spreadsheetID, a1(sheetName, "1:1")); err != nil {
			return result, sinkError(sheetName, err, "erro ao limpar cabeçalho")
		}
		if err := w.api.UpdateValues(ctx, w.spreadsheetID, a1(sheetName, "A1"), [][]any{toAny(table.Headers)}); err != nil {
			return result, sinkError(sheetName, err, "erro ao escrever cabeçalho")
		}
		result.HeaderUpdated = true
	}

	if err := w.api.ClearValues(ctx, w.spreadsheetID, a1(sheetName, "A2:ZZ")); err != nil {
		return result, sinkError(sheetName, err, "erro ao limpar linhas")
	}

	if len(table.Rows) == 0 {
		return result, nil
	}

	rows, err := w.api.AppendValues(ctx, w.spreadsheetID, a1(sheetName, "A2"), coerceRows(table))
	if err != nil {
		return result, sinkError(sheetName, err, "erro ao anexar linhas")
	}
	result.Rows = rows

	logrus.WithFields(logrus.Fields{
		"sheet":   sheetName,
		"rows":    rows,
		"created": created,
	}).Info("sheets: sheet replaced")

	return result, nil
}

func (w *Writer) Read(ctx context.Context, sheetName string) ([][]string, error) {
	values, err := w.api.GetValues(ctx, w.spreadsheetID, a1(sheetName, "A:ZZ"))
	if err != nil {
		return nil, sinkError(sheetName, err, "erro ao ler aba")
	}

	rows := make([][]string, 0, len(values))
	for _, v := range values {
		row := make([]string, len(v))
		for i, cell := range v {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (w *Writer) Describe(ctx context.Context) (*SpreadsheetInfo, error) {
	spreadsheet, err := w.api.GetSpreadsheet(ctx, w.spreadsheetID)
	if err != nil {
		return nil, sinkError("", err, "erro ao acessar planilha")
	}

	info := &SpreadsheetInfo{
		SpreadsheetID: w.spreadsheetID,
		Sheets:        make([]SheetInfo, 0, len(spreadsheet.Sheets)),
	}
	if spreadsheet.Properties != nil {
		info.Title = spreadsheet.Properties.Title
	}

	for _, s := range spreadsheet.Sheets {
		if s.Properties == nil {
			continue
		}
		info.Sheets = append(info.Sheets, SheetInfo{
			Title:   s.Properties.Title,
			SheetID: s.Properties.SheetId,
			Index:   s.Properties.Index,
		})
	}

	return info, nil
}

func (w *Writer) WorksheetID(ctx context.Context, sheetName string) (int64, error) {
	info, err := w.Describe(ctx)
	if err != nil {
		return 0, err
	}

	if len(info.Sheets) == 0 {
		return 0, &SinkWriteError{Sheet: sheetName, Err: ErrNoSheets}
	}

	for _, s := range info.Sheets {
		if strings.TrimSpace(s.Title) == sheetName {
			return s.SheetID, nil
		}
	}

	return info.Sheets[0].SheetID, nil
}

// ensureSheet cria a aba via batchUpdate quando ela ainda não existe
func (w *Writer) ensureSheet(ctx context.Context, sheetName string) (bool, error) {
	spreadsheet, err := w.api.GetSpreadsheet(ctx, w.spreadsheetID)
	if err != nil {
		return false, sinkError(sheetName, err, "erro ao acessar planilha")
	}

	for _, s := range spreadsheet.Sheets {
		if s.Properties != nil && s.Properties.Title == sheetName {
			return false, nil
		}
	}

	req := &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			AddSheet: &gsheets.AddSheetRequest{
				Properties: &gsheets.SheetProperties{Title: sheetName},
			},
		}},
	}
	if err := w.api.BatchUpdate(ctx, w.spreadsheetID, req); err != nil {
		return false, sinkError(sheetName, err, "erro ao criar aba")
	}

	return true, nil
}

// a1 monta a notação A1 com o nome da aba entre aspas simples
func a1(sheetName, rng string) string {
	return "'" + strings.ReplaceAll(sheetName, "'", "''") + "'!" + rng
}

// headersMatch compara a primeira linha da aba com o cabeçalho esperado, sem diferenciar maiúsculas
func headersMatch(current [][]any, expected []string) bool {
	if len(current) == 0 || len(current[0]) != len(expected) {
		return false
	}

	for i, cell := range current[0] {
		if !strings.EqualFold(fmt.Sprint(cell), expected[i]) {
			return false
		}
	}

	return true
}

// coerceRows converte as colunas numéricas para número antes do append
func coerceRows(table export.Table) [][]any {
	rows := make([][]any, 0, len(table.Rows))
	for _, r := range table.Rows {
		row := make([]any, len(r))
		for i, v := range r {
			row[i] = v
			if table.IsNumeric(i) {
				if n, err := strconv.ParseFloat(v, 64); err == nil {
					row[i] = n
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
