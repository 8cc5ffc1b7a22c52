// Package chart gera os gráficos de vendas em PNG com gonum/plot
package chart

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/pkg/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	ProductSalesTitle = "Product-wise Total Sales"
	DailyTrendTitle   = "Daily Sales Trend"

	ProductSalesFile = "product_sales.png"
	DailyTrendFile   = "daily_sales_trend.png"

	imageFormat = "png"
)

var ErrEmptySeries = errors.New("chart: série vazia")

var (
	barColor     = color.RGBA{R: 135, G: 206, B: 235, A: 255} // skyblue
	trendColor   = color.RGBA{R: 0, G: 128, B: 0, A: 255}     // green
	productColor = color.RGBA{R: 128, G: 0, B: 128, A: 255}   // purple
)

// Renderer não guarda estado entre chamadas: cada gráfico cria e descarta o próprio plot
type Renderer struct {
	Width  vg.Length
	Height vg.Length
}

func NewRenderer() *Renderer {
	return &Renderer{
		Width:  10 * vg.Inch,
		Height: 6 * vg.Inch,
	}
}

// RenderBarChart gera uma barra por produto e sobrescreve destination
func (r *Renderer) RenderBarChart(series []domain.ProductTotal, destination string) error {
	if len(series) == 0 {
		return ErrEmptySeries
	}

	p := plot.New()
	p.Title.Text = ProductSalesTitle
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Product"
	p.Y.Label.Text = "Total Sales (Currency)"

	values := make(plotter.Values, len(series))
	labels := make([]string, len(series))
	for i, total := range series {
		values[i] = utils.RoundWithTwoDecimalPlace(total.Revenue)
		labels[i] = total.Product
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return fmt.Errorf("erro ao criar gráfico de barras: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.Y.Min = 0

	return r.save(p, destination)
}

// RenderLineChart liga os pontos na ordem recebida (datas crescentes) com um marcador em cada ponto
func (r *Renderer) RenderLineChart(series []domain.DailyRevenue, title, destination string) error {
	return r.renderLine(series, title, trendColor, destination)
}

// RenderProductTrend é o gráfico diário de um produto, usado na página de resultado
func (r *Renderer) RenderProductTrend(report *domain.AggregateReport, destination string) error {
	if report == nil {
		return ErrEmptySeries
	}
	title := fmt.Sprintf("Daily Sales Trend for %s", report.Product)
	return r.renderLine(report.DailySeries, title, productColor, destination)
}

func (r *Renderer) renderLine(series []domain.DailyRevenue, title string, c color.Color, destination string) error {
	if len(series) == 0 {
		return ErrEmptySeries
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Sales"
	p.X.Tick.Marker = plot.TimeTicks{Format: domain.DateLayout}

	points := make(plotter.XYs, len(series))
	for i, day := range series {
		points[i].X = float64(day.Date.Unix())
		points[i].Y = utils.RoundWithTwoDecimalPlace(day.Revenue)
	}

	line, scatter, err := plotter.NewLinePoints(points)
	if err != nil {
		return fmt.Errorf("erro ao criar gráfico de linha: %w", err)
	}
	line.Color = c
	line.Width = vg.Points(2)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Color = c
	scatter.GlyphStyle.Radius = vg.Points(4)

	p.Add(plotter.NewGrid())
	p.Add(line, scatter)

	return r.save(p, destination)
}

func (r *Renderer) save(p *plot.Plot, destination string) error {
	writerTo, err := p.WriterTo(r.Width, r.Height, imageFormat)
	if err != nil {
		return fmt.Errorf("erro ao desenhar gráfico: %w", err)
	}

	return utils.WriteFileAtomic(destination, func(w io.Writer) error {
		_, err := writerTo.WriteTo(w)
		return err
	})
}

// ProductPlotName gera o nome do arquivo do gráfico de um produto.
// Quando o nome precisa ser alterado, um sufixo do hash evita colisão entre produtos
// como "A B" e "A_B".
func ProductPlotName(product string) string {
	safe := utils.SanitizeFilename(product)
	if safe != product || safe == "" {
		sum := sha1.Sum([]byte(product))
		safe = fmt.Sprintf("%s_%s", safe, hex.EncodeToString(sum[:])[:8])
	}
	return fmt.Sprintf("plot_%s.png", safe)
}
