package export

import (
	"bufio"
	"io"
	"strings"
)

const (
	CSVContentType = "text/csv"
	CSVFileName    = "facebook-ads-data.csv"
)

// WriteCSV escreve a tabela separando campos por "," e linhas por "\n". Só campos com
// vírgula ou aspas são envolvidos em aspas, com as aspas internas duplicadas.
func WriteCSV(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)

	lines := make([][]string, 0, len(t.Rows)+1)
	lines = append(lines, t.Headers)
	lines = append(lines, t.Rows...)

	for i, line := range lines {
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}

		for j, field := range line {
			if j > 0 {
				if err := bw.WriteByte(','); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(EscapeCSV(field)); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

func EscapeCSV(field string) string {
	if !strings.ContainsAny(field, `,"`) {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
