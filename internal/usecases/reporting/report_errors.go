package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de relatórios
var (
	// Erros de validação
	ErrMissingParameters = errors.New("parâmetros obrigatórios ausentes")
	ErrInvalidDate       = errors.New("data inválida")
	ErrInvalidDateRange  = errors.New("intervalo de datas inválido")

	// Erros de autenticação
	ErrUnauthorized = errors.New("não autorizado")

	// Erros de serviços externos
	ErrUpstreamFetch = errors.New("erro ao buscar dados na Meta")
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
	Cause   error  // Erro original do integrador, quando houver
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap expõe tanto o sentinel quanto a causa original
func (e *ReportError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// NewReportError cria um novo ReportError
func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewUpstreamFetchError envolve uma falha do Graph API
func NewUpstreamFetchError(code string, cause error) *ReportError {
	return &ReportError{
		Err:     ErrUpstreamFetch,
		Code:    code,
		Details: cause.Error(),
		Cause:   cause,
	}
}
