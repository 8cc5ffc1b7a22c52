package handler

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-report/internal/usecases/reporting"
	"github.com/vfg2006/sales-report/pkg/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = template.Must(
	template.New("pages").
		Funcs(template.FuncMap{
			"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
		}).
		ParseFS(templatesFS, "templates/*.html"),
)

// Campos do formulário de análise
const (
	FormProduct      = "product"
	FormProductImage = "product_image"
)

// PageSettings são os dados de configuração usados pelas páginas HTML
type PageSettings struct {
	SourceName     string // nome do arquivo de vendas exibido nas mensagens de erro
	MaxUploadBytes int64
}

// Index exibe o formulário com os produtos disponíveis
func Index(service reporting.Reporter, settings PageSettings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.Products(r.Context())
		if err != nil {
			writePageError(w, r, err, settings, "")
			return
		}

		renderPage(w, r, "index.html", map[string]any{
			"Products": products,
		})
	}
}

// Analyze processa a seleção de produto e a imagem opcional
func Analyze(service reporting.Reporter, settings PageSettings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		tooLarge := fmt.Sprintf("Error: uploaded image exceeds %d MB.", settings.MaxUploadBytes>>20)

		if r.ContentLength > settings.MaxUploadBytes {
			logger.WithField("content_length", r.ContentLength).Warn("Imagem enviada excede o limite")
			writeText(w, http.StatusRequestEntityTooLarge, tooLarge)
			return
		}

		err := r.ParseMultipartForm(settings.MaxUploadBytes)
		if err != nil && !errors.Is(err, http.ErrNotMultipart) {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				logger.WithError(err).Warn("Imagem enviada excede o limite")
				writeText(w, http.StatusRequestEntityTooLarge, tooLarge)
				return
			}

			logger.WithError(err).Warn("Formulário inválido")
			writeText(w, http.StatusBadRequest, "Error: invalid form submission.")
			return
		}
		if r.MultipartForm != nil {
			defer r.MultipartForm.RemoveAll()
		}

		product := strings.TrimSpace(r.FormValue(FormProduct))
		req := reporting.AnalyzeRequest{Product: product}

		file, header, err := r.FormFile(FormProductImage)
		switch {
		case err == nil:
			defer file.Close()
			req.Image = &reporting.UploadedImage{
				Filename: header.Filename,
				Content:  file,
			}
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		default:
			logger.WithError(err).Warn("Erro ao ler imagem enviada")
			writeText(w, http.StatusBadRequest, "Error: invalid product image.")
			return
		}

		view, err := service.Analyze(r.Context(), req)
		if err != nil {
			writePageError(w, r, err, settings, product)
			return
		}

		renderPage(w, r, "result.html", view)
	}
}

// writePageError reproduz as mensagens em texto simples da interface web.
// Fonte ausente e produto sem vendas respondem 200 com a mensagem em texto.
func writePageError(w http.ResponseWriter, r *http.Request, err error, settings PageSettings, product string) {
	logger := log.ForContext(r.Context()).WithError(err).WithField("product", product)

	switch {
	case errors.Is(err, reporting.ErrSourceNotFound):
		logger.Warn("Fonte de vendas não encontrada")
		writeText(w, http.StatusOK, fmt.Sprintf("Error: %s not found.", settings.SourceName))
	case errors.Is(err, reporting.ErrNoMatchingData):
		writeText(w, http.StatusOK, fmt.Sprintf("No data found for %s", product))
	case errors.Is(err, reporting.ErrProductRequired):
		writeText(w, http.StatusBadRequest, "Error: product is required.")
	case errors.Is(err, reporting.ErrMalformedInput):
		logger.Warn("Fonte de vendas malformada")
		writeText(w, http.StatusBadRequest, fmt.Sprintf("Error: %s is malformed: %s", settings.SourceName, err.Error()))
	default:
		logger.Error("Erro ao gerar página")
		writeText(w, http.StatusInternalServerError, "Erro interno no servidor")
	}
}

func renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		log.ForContext(r.Context()).WithError(err).WithField("template", name).Error("Erro ao renderizar página")
		writeText(w, http.StatusInternalServerError, "Erro interno no servidor")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar página")
	}
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
