package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report/internal/domain"
)

// DefaultRemoteTimeout limita a busca de uma fonte publicada por HTTP
const DefaultRemoteTimeout = 30 * time.Second

// Loader carrega a fonte de vendas de um arquivo local ou de uma URL http(s)
type Loader struct {
	httpClient *http.Client
	timeout    time.Duration
}

// NewLoader cria um Loader; timeout <= 0 usa DefaultRemoteTimeout
func NewLoader(timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}

	return &Loader{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// IsRemote indica se a fonte é uma URL http(s)
func IsRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Open carrega a fonte, decidindo pelo formato do endereço
func (l *Loader) Open(source string) (*domain.SalesTable, error) {
	if IsRemote(source) {
		return l.Fetch(source)
	}
	return Load(source)
}

// Fetch baixa o CSV publicado em rawURL. 404 e 410 equivalem a arquivo ausente.
func (l *Loader) Fetch(rawURL string) (*domain.SalesTable, error) {
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar %s", rawURL)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, errors.Wrapf(ErrSourceNotFound, "%s", rawURL)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("requisição para %s falhou com status: %s", rawURL, resp.Status)
	}

	return Read(resp.Body, rawURL)
}
