//go:generate mockgen -source=interfaces.go -destination=mocks/mock_reporting.go -package=mocks

package reporting

import (
	"context"
	"io"

	"github.com/vfg2006/sales-report/internal/domain"
)

// Reporter é a interface consumida pela interface web e pelo relatório em lote.
// Cada chamada recarrega a fonte de vendas.
type Reporter interface {
	// Products lista os produtos distintos na ordem em que aparecem
	Products(ctx context.Context) ([]string, error)

	// Report calcula o relatório agregado de um produto
	Report(ctx context.Context, product string) (*domain.AggregateReport, error)

	// Analyze calcula o relatório, gera o gráfico diário do produto e guarda a imagem enviada
	Analyze(ctx context.Context, req AnalyzeRequest) (*domain.ProductView, error)

	// Summary calcula o resumo geral (receita total, mais vendido, média diária)
	Summary(ctx context.Context) (*domain.SalesSummary, error)

	// RenderOverview gera os gráficos gerais em dir
	RenderOverview(ctx context.Context, dir string) (*domain.OverviewCharts, error)
}

// ChartRenderer gera os arquivos de imagem dos gráficos
type ChartRenderer interface {
	RenderBarChart(series []domain.ProductTotal, destination string) error
	RenderLineChart(series []domain.DailyRevenue, title, destination string) error
	RenderProductTrend(report *domain.AggregateReport, destination string) error
}

// ImageStore guarda as imagens enviadas pelo usuário e devolve a URL pública
type ImageStore interface {
	Save(filename string, content io.Reader) (string, error)
}

// SourceLoader carrega a tabela de vendas a partir do caminho configurado
type SourceLoader func(path string) (*domain.SalesTable, error)

// AnalyzeRequest é a seleção de produto vinda do formulário
type AnalyzeRequest struct {
	Product string
	Image   *UploadedImage
}

// UploadedImage é a imagem opcional enviada junto com a seleção
type UploadedImage struct {
	Filename string
	Content  io.Reader
}
