// Package reporting contém a agregação das vendas e a montagem dos relatórios
package reporting

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report/infrastructure/chart"
	"github.com/vfg2006/sales-report/infrastructure/source"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/pkg/log"
)

// Settings define a fonte de vendas e onde ficam os gráficos por produto
type Settings struct {
	Source    string
	ImagesDir string
	ImagesURL string
}

// Service implementa Reporter
type Service struct {
	settings Settings
	load     SourceLoader
	catalog  domain.ProductCatalog
	charts   ChartRenderer
	uploads  ImageStore
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(
	settings Settings,
	catalog domain.ProductCatalog,
	charts ChartRenderer,
	uploads ImageStore,
) *Service {
	return &Service{
		settings: settings,
		load:     source.Load,
		catalog:  catalog,
		charts:   charts,
		uploads:  uploads,
	}
}

// WithLoader substitui a função de carga (usado em testes)
func (s *Service) WithLoader(load SourceLoader) *Service {
	s.load = load
	return s
}

func (s *Service) loadTable(ctx context.Context) (*domain.SalesTable, error) {
	table, err := s.load(s.settings.Source)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("source", s.settings.Source).Warn("reporting: erro ao carregar vendas")
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"source":     s.settings.Source,
		"total_rows": table.Len(),
	}).Debug("reporting: vendas carregadas")

	return table, nil
}

func (s *Service) Products(ctx context.Context) ([]string, error) {
	table, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}
	return Products(table), nil
}

func (s *Service) Report(ctx context.Context, product string) (*domain.AggregateReport, error) {
	product = strings.TrimSpace(product)
	if product == "" {
		return nil, ErrProductRequired
	}

	table, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}

	report, err := ReportFor(table, product)
	if err != nil {
		return nil, NewReportError(err, product)
	}

	return report, nil
}

// Analyze só grava arquivos depois que o relatório foi calculado com sucesso,
// então uma fonte ausente ou um produto sem vendas não deixam saída parcial.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (*domain.ProductView, error) {
	logger := log.ForContext(ctx).WithField("product", req.Product)

	report, err := s.Report(ctx, req.Product)
	if err != nil {
		return nil, err
	}

	view := &domain.ProductView{
		Report:      report,
		Description: s.catalog.Describe(report.Product),
	}

	if req.Image != nil && req.Image.Filename != "" {
		url, err := s.uploads.Save(req.Image.Filename, req.Image.Content)
		if err != nil {
			logger.WithError(err).Error("reporting: erro ao salvar imagem enviada")
			return nil, errors.Wrap(ErrStoreUpload, err.Error())
		}
		view.UploadedImageURL = url
	}

	name := chart.ProductPlotName(report.Product)
	destination := filepath.Join(s.settings.ImagesDir, name)
	if err := s.charts.RenderProductTrend(report, destination); err != nil {
		logger.WithError(err).WithField("destination", destination).Error("reporting: erro ao gerar gráfico do produto")
		return nil, errors.Wrap(ErrRenderChart, err.Error())
	}
	view.PlotURL = path.Join(s.settings.ImagesURL, name)

	logger.WithFields(log.Fields{
		"product":        report.Product,
		"total_revenue":  report.TotalRevenue.StringFixed(2),
		"total_quantity": report.TotalQuantity,
	}).Info("reporting: relatório do produto gerado com sucesso")

	return view, nil
}

func (s *Service) Summary(ctx context.Context) (*domain.SalesSummary, error) {
	table, err := s.loadTable(ctx)
	if err != nil {
		return nil, err
	}

	return Summarize(table)
}

func (s *Service) RenderOverview(ctx context.Context, dir string) (*domain.OverviewCharts, error) {
	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}

	return s.RenderSummaryCharts(ctx, summary, dir)
}

// RenderSummaryCharts gera os gráficos gerais a partir de um resumo já calculado
func (s *Service) RenderSummaryCharts(ctx context.Context, summary *domain.SalesSummary, dir string) (*domain.OverviewCharts, error) {
	charts := &domain.OverviewCharts{
		ProductSalesPath: filepath.Join(dir, chart.ProductSalesFile),
		DailyTrendPath:   filepath.Join(dir, chart.DailyTrendFile),
	}

	if err := s.charts.RenderBarChart(summary.ProductTotals, charts.ProductSalesPath); err != nil {
		return nil, errors.Wrap(ErrRenderChart, err.Error())
	}

	if err := s.charts.RenderLineChart(summary.DailyTotals, chart.DailyTrendTitle, charts.DailyTrendPath); err != nil {
		return nil, errors.Wrap(ErrRenderChart, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"destination": dir,
		"total_days":  len(summary.DailyTotals),
	}).Info("reporting: gráficos gerais gerados")

	return charts, nil
}
