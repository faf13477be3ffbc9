package sheets

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNotConfigured = errors.New("google sheets não configurado")
	ErrNoSheets      = errors.New("planilha não tem abas")
)

// SinkWriteError é uma falha ao ler ou escrever numa aba da planilha
type SinkWriteError struct {
	Sheet string
	Err   error
}

func (e *SinkWriteError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("sheets: %v", e.Err)
	}
	return fmt.Sprintf("sheets: aba %s: %v", e.Sheet, e.Err)
}

func (e *SinkWriteError) Unwrap() error {
	return e.Err
}

func sinkError(sheet string, err error, op string) error {
	return &SinkWriteError{Sheet: sheet, Err: errors.Wrap(err, op)}
}
