package reporting

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-report/internal/domain"
)

// Products retorna os produtos distintos na ordem em que aparecem na tabela
func Products(table *domain.SalesTable) []string {
	products := make([]string, 0)
	if table == nil {
		return products
	}

	seen := make(map[string]struct{})
	for _, record := range table.Records {
		if _, ok := seen[record.Product]; ok {
			continue
		}
		seen[record.Product] = struct{}{}
		products = append(products, record.Product)
	}

	return products
}

// ReportFor calcula o relatório de um produto. Retorna ErrNoMatchingData se não houver vendas.
func ReportFor(table *domain.SalesTable, product string) (*domain.AggregateReport, error) {
	if table == nil {
		return nil, errors.Wrapf(ErrNoMatchingData, "%s", product)
	}

	report := &domain.AggregateReport{
		Product:      product,
		TotalRevenue: decimal.Zero,
	}

	priceSum := decimal.Zero
	matches := make([]domain.SalesRecord, 0)
	for _, record := range table.Records {
		if record.Product != product {
			continue
		}
		matches = append(matches, record)
		report.TotalRevenue = report.TotalRevenue.Add(record.TotalSales())
		report.TotalQuantity += record.QuantitySold
		priceSum = priceSum.Add(record.PricePerUnit)
	}

	if len(matches) == 0 {
		return nil, errors.Wrapf(ErrNoMatchingData, "%s", product)
	}

	report.AverageUnitPrice = priceSum.Div(decimal.NewFromInt(int64(len(matches))))
	report.DailySeries = dailySeries(matches)

	return report, nil
}

// ProductTotals soma a receita por produto, na ordem de aparição
func ProductTotals(table *domain.SalesTable) []domain.ProductTotal {
	totals := make([]domain.ProductTotal, 0)
	if table == nil {
		return totals
	}

	index := make(map[string]int)
	for _, record := range table.Records {
		i, ok := index[record.Product]
		if !ok {
			i = len(totals)
			index[record.Product] = i
			totals = append(totals, domain.ProductTotal{Product: record.Product, Revenue: decimal.Zero})
		}
		totals[i].Revenue = totals[i].Revenue.Add(record.TotalSales())
	}

	return totals
}

// BestSeller retorna o produto com maior receita total.
// Em caso de empate vence o menor nome em ordem lexicográfica.
func BestSeller(table *domain.SalesTable) (string, error) {
	totals := ProductTotals(table)
	if len(totals) == 0 {
		return "", errors.Wrap(ErrNoMatchingData, "tabela de vendas vazia")
	}

	best := totals[0]
	for _, total := range totals[1:] {
		cmp := total.Revenue.Cmp(best.Revenue)
		if cmp > 0 || (cmp == 0 && total.Product < best.Product) {
			best = total
		}
	}

	return best.Product, nil
}

// DailyTotals soma a receita por data canônica, em ordem crescente de data
func DailyTotals(table *domain.SalesTable) []domain.DailyRevenue {
	if table == nil {
		return []domain.DailyRevenue{}
	}
	return dailySeries(table.Records)
}

// AverageDailyRevenue é a média das somas diárias entre as datas distintas, não a média por linha
func AverageDailyRevenue(table *domain.SalesTable) decimal.Decimal {
	daily := DailyTotals(table)
	if len(daily) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, day := range daily {
		sum = sum.Add(day.Revenue)
	}

	return sum.Div(decimal.NewFromInt(int64(len(daily))))
}

// TotalRevenue soma a receita de todas as linhas
func TotalRevenue(table *domain.SalesTable) decimal.Decimal {
	total := decimal.Zero
	if table == nil {
		return total
	}
	for _, record := range table.Records {
		total = total.Add(record.TotalSales())
	}
	return total
}

// Summarize monta o resumo geral usado pelo relatório em lote
func Summarize(table *domain.SalesTable) (*domain.SalesSummary, error) {
	bestSeller, err := BestSeller(table)
	if err != nil {
		return nil, err
	}

	return &domain.SalesSummary{
		Source:              table.Source,
		TotalRevenue:        TotalRevenue(table),
		BestSeller:          bestSeller,
		AverageDailyRevenue: AverageDailyRevenue(table),
		ProductTotals:       ProductTotals(table),
		DailyTotals:         DailyTotals(table),
	}, nil
}

// dailySeries agrupa pela data canônica, nunca pelo texto original
func dailySeries(records []domain.SalesRecord) []domain.DailyRevenue {
	index := make(map[string]int)
	series := make([]domain.DailyRevenue, 0)
	for _, record := range records {
		key := record.DateKey()
		i, ok := index[key]
		if !ok {
			i = len(series)
			index[key] = i
			series = append(series, domain.DailyRevenue{
				Date:    domain.CanonicalDate(record.Date),
				Revenue: decimal.Zero,
			})
		}
		series[i].Revenue = series[i].Revenue.Add(record.TotalSales())
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series
}
