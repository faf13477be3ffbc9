package export

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	XLSXContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	XLSXFileName     = "facebook-ads-data.xlsx"
	DefaultSheetName = "Facebook Ads"
	dateNumFmt       = "yyyy-mm-dd"
	dateHeader       = "Date"
)

// WriteXLSX gera uma planilha de uma aba com cabeçalho e linhas. Células da coluna
// Date que são datas YYYY-MM-DD viram datas do Excel; colunas numéricas viram números.
func WriteXLSX(w io.Writer, t Table, sheetName string) error {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("xlsx: erro ao renomear aba: %w", err)
	}

	dateFmt := dateNumFmt
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return fmt.Errorf("xlsx: erro ao criar estilo de data: %w", err)
	}

	header := make([]any, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: erro ao escrever cabeçalho: %w", err)
	}

	dateCol := dateColumn(t.Headers)

	for r, row := range t.Rows {
		cells := make([]any, len(row))
		isDate := false

		for c, value := range row {
			cells[c] = value

			if c == dateCol {
				if d, err := time.Parse(time.DateOnly, value); err == nil {
					cells[c] = d
					isDate = true
					continue
				}
			}

			if t.IsNumeric(c) {
				if n, err := strconv.ParseFloat(value, 64); err == nil {
					cells[c] = n
				}
			}
		}

		axis, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow(sheetName, axis, &cells); err != nil {
			return fmt.Errorf("xlsx: erro ao escrever linha %d: %w", r+2, err)
		}

		if isDate {
			dateAxis, err := excelize.CoordinatesToCellName(dateCol+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheetName, dateAxis, dateAxis, dateStyle); err != nil {
				return fmt.Errorf("xlsx: erro ao formatar data: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: erro ao gerar arquivo: %w", err)
	}

	return nil
}

// dateColumn devolve o índice do cabeçalho Date ou a primeira coluna quando não há
func dateColumn(headers []string) int {
	for i, h := range headers {
		if h == dateHeader {
			return i
		}
	}
	return 0
}
