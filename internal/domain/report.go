package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DailyRevenue struct {
	Date    time.Time       `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type ProductTotal struct {
	Product string          `json:"product"`
	Revenue decimal.Decimal `json:"revenue"`
}

// AggregateReport é o resumo calculado para um único produto
type AggregateReport struct {
	Product          string          `json:"product"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalQuantity    int             `json:"total_quantity"`
	AverageUnitPrice decimal.Decimal `json:"average_unit_price"` // média simples dos preços, sem ponderar por quantidade
	DailySeries      []DailyRevenue  `json:"daily_series"`
}

// SalesSummary é o resumo geral usado pelo relatório em lote
type SalesSummary struct {
	Source              string          `json:"source"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	BestSeller          string          `json:"best_seller"`
	AverageDailyRevenue decimal.Decimal `json:"average_daily_revenue"`
	ProductTotals       []ProductTotal  `json:"product_totals"`
	DailyTotals         []DailyRevenue  `json:"daily_totals"`
}
