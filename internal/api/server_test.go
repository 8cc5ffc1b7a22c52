package api

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report/infrastructure/chart"
	"github.com/vfg2006/sales-report/infrastructure/upload"
	"github.com/vfg2006/sales-report/internal/config"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/internal/usecases/reporting"
	"github.com/vfg2006/sales-report/pkg/log"
)

const salesCSV = `Date,Product,Quantity_Sold,Price_per_Unit
2024-01-01,Mouse,2,10
2024-01-02,Mouse,1,10
2024-01-01,Keyboard,1,45
`

func newTestServer(t *testing.T, writeSource bool) (*Server, *config.Config) {
	t.Helper()
	log.SetupTestLogger()

	dir := t.TempDir()
	cfg := &config.Config{
		Server: config.Server{Host: "127.0.0.1", Port: "0"},
		Sales:  config.Sales{Source: filepath.Join(dir, "sales_data.csv"), PlotsDir: filepath.Join(dir, "plots")},
		Static: config.Static{Dir: filepath.Join(dir, "static"), MaxUploadMB: 1},
	}
	if writeSource {
		require.NoError(t, os.WriteFile(cfg.Sales.Source, []byte(salesCSV), 0o644))
	}

	service := reporting.NewService(
		reporting.Settings{
			Source:    cfg.Sales.Source,
			ImagesDir: cfg.Static.ImagesDir(),
			ImagesURL: "/static/images",
		},
		domain.DefaultProductCatalog(),
		chart.NewRenderer(),
		upload.NewStore(cfg.Static.UploadsDir(), "/static/uploads"),
	)

	srv, err := New(cfg, service, nil)
	require.NoError(t, err)

	return srv, cfg
}

func do(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_IndexAndAnalyze(t *testing.T) {
	srv, cfg := newTestServer(t, true)

	index := do(srv, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, index.Code)
	assert.Contains(t, index.Body.String(), `<option value="Mouse">Mouse</option>`)
	assert.NotEmpty(t, index.Header().Get("X-Correlation-ID"))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("product", "Mouse"))
	part, err := mw.CreateFormFile("product_image", "../my mouse.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	result := do(srv, req)

	require.Equal(t, http.StatusOK, result.Code, result.Body.String())
	page := result.Body.String()
	assert.Contains(t, page, "Total Revenue: 30.00")
	assert.Contains(t, page, "Average Price per Unit: 10.00")
	assert.Contains(t, page, "An essential input device designed for precision and comfort.")
	assert.Contains(t, page, `src="/static/images/plot_Mouse.png"`)
	assert.Contains(t, page, `src="/static/uploads/my_mouse.png"`)

	plot := do(srv, httptest.NewRequest(http.MethodGet, "/static/images/plot_Mouse.png", nil))
	assert.Equal(t, http.StatusOK, plot.Code)
	assert.Equal(t, "image/png", plot.Header().Get("Content-Type"))

	uploaded, err := os.ReadFile(filepath.Join(cfg.Static.UploadsDir(), "my_mouse.png"))
	require.NoError(t, err)
	assert.Equal(t, "fake image", string(uploaded))
}

func TestServer_MissingSource(t *testing.T) {
	srv, cfg := newTestServer(t, false)

	index := do(srv, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, index.Code)
	assert.Equal(t, "Error: sales_data.csv not found.", index.Body.String())

	summary := do(srv, httptest.NewRequest(http.MethodGet, "/v1/summary", nil))
	assert.Equal(t, http.StatusNotFound, summary.Code)
	assert.Contains(t, summary.Body.String(), `"code":"SRC_001"`)

	entries, err := os.ReadDir(cfg.Static.ImagesDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestServer_NotFoundAndUnknownProduct(t *testing.T) {
	srv, _ := newTestServer(t, true)

	missing := do(srv, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Contains(t, missing.Body.String(), `"code":"NF_001"`)

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewBufferString("product=Tablet"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	result := do(srv, req)
	assert.Equal(t, http.StatusOK, result.Code)
	assert.Equal(t, "No data found for Tablet", result.Body.String())
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	srv, _ := newTestServer(t, true)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("servidor não desligou após o cancelamento do contexto")
	}
}
