package exporting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de exportação
var (
	// Erros de validação
	ErrInvalidFormat = errors.New("invalid export format")
	ErrInvalidLevel  = errors.New("invalid export level")

	// Erros de configuração
	ErrSheetsNotConfigured = errors.New("google sheets is not configured")

	// Erros de serviços externos
	ErrSinkWrite    = errors.New("error writing to google sheets")
	ErrRenderFile   = errors.New("error rendering export file")
	ErrLookerLayout = errors.New("error loading looker layout")
	ErrGenerateID   = errors.New("error generating export id")
)

// ExportError é um erro com contexto adicional para exportações
type ExportError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	ExportID string // Id da exportação (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ExportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError cria um novo ExportError
func NewExportError(err error, code string, details string) *ExportError {
	return &ExportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
