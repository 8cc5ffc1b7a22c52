package handler

import (
	"net/http"
	"os"

	"github.com/vfg2006/sales-report/internal/api/handler/router"
	"github.com/vfg2006/sales-report/internal/usecases/reporting"
	"github.com/vfg2006/sales-report/pkg/middleware"
)

// StaticPrefix é o prefixo público dos gráficos e imagens enviadas
const StaticPrefix = "/static"

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Pages retorna as rotas da interface web
func Pages(service reporting.Reporter, settings PageSettings) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: Index(service, settings),
		},
		{
			Path:        "/analyze",
			Method:      http.MethodPost,
			Handler:     Analyze(service, settings),
			Middlewares: []func(http.Handler) http.Handler{middleware.LimitBody(settings.MaxUploadBytes)},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/products/:product/report",
			Method:  http.MethodGet,
			Handler: GetProductReport(service),
		},
		{
			Path:    "/v1/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
	}
}

func ReportSync(syncer ReportSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/sync/run",
			Method:  http.MethodPost,
			Handler: RunReportSync(syncer),
		},
		{
			Path:    "/v1/reports/sync/status",
			Method:  http.MethodGet,
			Handler: GetReportSyncStatus(syncer),
		},
	}
}

// Static serve os arquivos de dir sob StaticPrefix, sem listagem de diretórios
func Static(dir string) []router.Route {
	files := http.StripPrefix(StaticPrefix, http.FileServer(noListingFS{http.Dir(dir)}))

	return []router.Route{
		{
			Path:    StaticPrefix + "/*filepath",
			Method:  http.MethodGet,
			Handler: files,
		},
	}
}

// noListingFS responde 404 para diretórios
type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}

	return f, nil
}
