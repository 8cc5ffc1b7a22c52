package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-report/internal/usecases/reporting"
	"github.com/vfg2006/sales-report/pkg/apiErrors"
	"github.com/vfg2006/sales-report/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ListProducts retorna os produtos distintos da fonte de vendas
func ListProducts(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.Products(r.Context())
		if err != nil {
			writeReportError(w, r, err, "Erro ao listar produtos")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"products": products,
			"total":    len(products),
		})
	}
}

// GetProductReport retorna o relatório agregado de um produto
func GetProductReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		product := httprouter.ParamsFromContext(r.Context()).ByName("product")
		if product == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Produto não especificado", nil)
			return
		}

		report, err := service.Report(r.Context(), product)
		if err != nil {
			writeReportError(w, r, err, "Erro ao gerar relatório do produto")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// GetSummary retorna o resumo geral das vendas
func GetSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context())
		if err != nil {
			writeReportError(w, r, err, "Erro ao gerar resumo das vendas")
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// writeReportError traduz erros do relatório para o formato padronizado da API.
// Erros internos não expõem a mensagem original.
func writeReportError(w http.ResponseWriter, r *http.Request, err error, message string) {
	apiErr := apiErrors.FromError(err, reporting.CodeFor(err))

	if !reporting.IsUserVisible(err) {
		log.ForContext(r.Context()).WithError(err).Error(message)
		apiErrors.WriteError(w, apiErr.Code, message, nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Warn(message)
	apiErrors.WriteError(w, apiErr.Code, message, apiErr.Message)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}
