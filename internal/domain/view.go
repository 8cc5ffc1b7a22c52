package domain

// ProductView reúne o relatório, a descrição e os caminhos das imagens para exibição
type ProductView struct {
	Report           *AggregateReport `json:"report"`
	Description      string           `json:"description"`
	PlotURL          string           `json:"plot_url"`
	UploadedImageURL string           `json:"uploaded_image_url,omitempty"`
}

// OverviewCharts são os gráficos gerais gerados pelo relatório em lote
type OverviewCharts struct {
	ProductSalesPath string `json:"product_sales_path"`
	DailyTrendPath   string `json:"daily_trend_path"`
}
