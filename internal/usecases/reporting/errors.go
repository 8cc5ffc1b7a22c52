package reporting

import (
	stderrors "errors"
	"fmt"

	"github.com/vfg2006/sales-report/infrastructure/source"
	"github.com/vfg2006/sales-report/pkg/apiErrors"
)

// Erros específicos para o contexto de relatórios
var (
	// Reexportados da carga para que os chamadores não dependam do pacote source
	ErrSourceNotFound = source.ErrSourceNotFound
	ErrMalformedInput = source.ErrMalformedInput

	// Produto sem nenhuma venda; o chamador exibe "sem dados" e não trata como falha
	ErrNoMatchingData = stderrors.New("no matching sales data")

	ErrProductRequired = stderrors.New("product is required")
	ErrRenderChart     = stderrors.New("error rendering chart")
	ErrStoreUpload     = stderrors.New("error storing uploaded image")
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Product string // Produto envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError cria um ReportError classificando o erro base
func NewReportError(err error, product string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    CodeFor(err),
		Product: product,
	}
}

// CodeFor traduz o erro para o código usado pela API
func CodeFor(err error) string {
	var reportErr *ReportError
	if stderrors.As(err, &reportErr) && reportErr.Code != "" {
		return reportErr.Code
	}

	switch {
	case stderrors.Is(err, ErrSourceNotFound):
		return apiErrors.ErrSourceNotFound
	case stderrors.Is(err, ErrNoMatchingData):
		return apiErrors.ErrNoMatchingData
	case stderrors.Is(err, ErrMalformedInput):
		return apiErrors.ErrInvalidFormat
	case stderrors.Is(err, ErrProductRequired):
		return apiErrors.ErrMissingRequiredData
	case stderrors.Is(err, ErrRenderChart), stderrors.Is(err, ErrStoreUpload):
		return apiErrors.ErrFileOperation
	default:
		return apiErrors.ErrInternalServer
	}
}

// IsUserVisible indica erros que viram mensagem para o usuário em vez de falha do servidor
func IsUserVisible(err error) bool {
	return stderrors.Is(err, ErrSourceNotFound) ||
		stderrors.Is(err, ErrNoMatchingData) ||
		stderrors.Is(err, ErrMalformedInput) ||
		stderrors.Is(err, ErrProductRequired)
}
