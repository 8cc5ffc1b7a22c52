package reporting

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report/internal/domain"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sale(day time.Time, product string, quantity int, price string) domain.SalesRecord {
	return domain.SalesRecord{
		Date:         day,
		Product:      product,
		QuantitySold: quantity,
		PricePerUnit: dec(price),
	}
}

func table(records ...domain.SalesRecord) *domain.SalesTable {
	return &domain.SalesTable{Source: "sales_data.csv", Records: records}
}

func mouseTable() *domain.SalesTable {
	return table(
		sale(date(2024, 1, 1), "Mouse", 2, "10.0"),
		sale(date(2024, 1, 2), "Mouse", 1, "10.0"),
		sale(date(2024, 1, 2), "Keyboard", 1, "45.0"),
	)
}

// randomTable gera vendas aleatórias com quantidades e preços variados
func randomTable(rng *rand.Rand) *domain.SalesTable {
	products := []string{"Laptop", "Mouse", "Keyboard", "Monitor", "Headphones"}
	rows := rng.Intn(40) + 1

	t := table()
	for i := 0; i < rows; i++ {
		t.Records = append(t.Records, sale(
			date(2024, 1, rng.Intn(10)+1),
			products[rng.Intn(len(products))],
			rng.Intn(20),
			fmt.Sprintf("%d.%02d", rng.Intn(1500), rng.Intn(100)),
		))
	}
	return t
}

func TestReportFor_MouseScenario(t *testing.T) {
	report, err := ReportFor(mouseTable(), "Mouse")
	require.NoError(t, err)

	assert.Equal(t, "Mouse", report.Product)
	assert.True(t, report.TotalRevenue.Equal(dec("30.0")), "total_revenue: %s", report.TotalRevenue)
	assert.Equal(t, 3, report.TotalQuantity)
	assert.True(t, report.AverageUnitPrice.Equal(dec("10.0")), "average_unit_price: %s", report.AverageUnitPrice)

	require.Len(t, report.DailySeries, 2)
	assert.Equal(t, date(2024, 1, 1), report.DailySeries[0].Date)
	assert.True(t, report.DailySeries[0].Revenue.Equal(dec("20.0")))
	assert.Equal(t, date(2024, 1, 2), report.DailySeries[1].Date)
	assert.True(t, report.DailySeries[1].Revenue.Equal(dec("10.0")))
}

func TestReportFor_UnknownProduct(t *testing.T) {
	tests := []struct {
		name    string
		table   *domain.SalesTable
		product string
	}{
		{name: "produto inexistente", table: mouseTable(), product: "Toaster"},
		{name: "diferença de maiúsculas", table: mouseTable(), product: "mouse"},
		{name: "tabela vazia", table: table(), product: "Mouse"},
		{name: "tabela nula", table: nil, product: "Mouse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := ReportFor(tt.table, tt.product)
			assert.Nil(t, report)
			assert.True(t, errors.Is(err, ErrNoMatchingData))
		})
	}
}

func TestReportFor_AverageIsUnweightedMean(t *testing.T) {
	tbl := table(
		sale(date(2024, 1, 1), "Mouse", 9, "10.00"),
		sale(date(2024, 1, 2), "Mouse", 1, "20.00"),
	)

	report, err := ReportFor(tbl, "Mouse")
	require.NoError(t, err)

	// média simples dos preços: (10 + 20) / 2
	assert.True(t, report.AverageUnitPrice.Equal(dec("15")))

	// receita / quantidade = 110 / 10 = 11, diferente da média simples
	weighted := report.TotalRevenue.Div(decimal.NewFromInt(int64(report.TotalQuantity)))
	assert.True(t, weighted.Equal(dec("11")))
	assert.False(t, weighted.Equal(report.AverageUnitPrice))
}

func TestReportFor_DailySeriesSortedAndCollapsed(t *testing.T) {
	noon := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)
	tbl := table(
		sale(date(2024, 1, 3), "Mouse", 1, "5"),
		sale(date(2024, 1, 1), "Mouse", 1, "5"),
		sale(noon, "Mouse", 2, "5"),
	)

	report, err := ReportFor(tbl, "Mouse")
	require.NoError(t, err)

	require.Len(t, report.DailySeries, 2)
	assert.Equal(t, date(2024, 1, 1), report.DailySeries[0].Date)
	assert.Equal(t, date(2024, 1, 3), report.DailySeries[1].Date)
	assert.True(t, report.DailySeries[1].Revenue.Equal(dec("15")))
}

func TestProducts(t *testing.T) {
	assert.Equal(t, []string{"Mouse", "Keyboard"}, Products(mouseTable()))
	assert.ElementsMatch(t, []string{"Keyboard", "Mouse"}, Products(mouseTable()))
	assert.Empty(t, Products(table()))
	assert.Empty(t, Products(nil))
}

func TestBestSeller(t *testing.T) {
	best, err := BestSeller(mouseTable())
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", best)

	_, err = BestSeller(table())
	assert.True(t, errors.Is(err, ErrNoMatchingData))
}

func TestBestSeller_TieBreakIsLexicographic(t *testing.T) {
	tbl := table(
		sale(date(2024, 1, 1), "Mouse", 2, "50"),
		sale(date(2024, 1, 1), "Laptop", 1, "100"),
		sale(date(2024, 1, 2), "Keyboard", 4, "10"),
	)

	best, err := BestSeller(tbl)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", best)
}

func TestAverageDailyRevenue(t *testing.T) {
	// dia 1: 20, dia 2: 10 + 45 = 55 -> média 37.5 (por linha seria 75 / 3 = 25)
	avg := AverageDailyRevenue(mouseTable())
	assert.True(t, avg.Equal(dec("37.5")), "média diária: %s", avg)

	assert.True(t, AverageDailyRevenue(table()).IsZero())
}

func TestSummarize(t *testing.T) {
	summary, err := Summarize(mouseTable())
	require.NoError(t, err)

	assert.Equal(t, "sales_data.csv", summary.Source)
	assert.True(t, summary.TotalRevenue.Equal(dec("75")))
	assert.Equal(t, "Keyboard", summary.BestSeller)
	assert.True(t, summary.AverageDailyRevenue.Equal(dec("37.5")))
	require.Len(t, summary.ProductTotals, 2)
	assert.Equal(t, "Mouse", summary.ProductTotals[0].Product)
	require.Len(t, summary.DailyTotals, 2)

	_, err = Summarize(table())
	assert.True(t, errors.Is(err, ErrNoMatchingData))
}

func TestProperty_PartitionOfRevenue(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		t.Run(fmt.Sprintf("iteration_%d", i), func(t *testing.T) {
			tbl := randomTable(rng)

			sum := decimal.Zero
			for _, product := range Products(tbl) {
				report, err := ReportFor(tbl, product)
				require.NoError(t, err)
				sum = sum.Add(report.TotalRevenue)
			}

			assert.True(t, sum.Equal(TotalRevenue(tbl)), "soma por produto %s != total %s", sum, TotalRevenue(tbl))
		})
	}
}

func TestProperty_BestSellerDominates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		tbl := randomTable(rng)

		best, err := BestSeller(tbl)
		require.NoError(t, err)

		bestReport, err := ReportFor(tbl, best)
		require.NoError(t, err)

		for _, total := range ProductTotals(tbl) {
			assert.True(t, bestReport.TotalRevenue.GreaterThanOrEqual(total.Revenue),
				"iteração %d: %s (%s) < %s (%s)", i, best, bestReport.TotalRevenue, total.Product, total.Revenue)
		}
	}
}

func TestProperty_AverageUnitPriceIsMeanOfPrices(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 100; i++ {
		tbl := randomTable(rng)

		for _, product := range Products(tbl) {
			report, err := ReportFor(tbl, product)
			require.NoError(t, err)

			sum := decimal.Zero
			count := 0
			for _, record := range tbl.Records {
				if record.Product == product {
					sum = sum.Add(record.PricePerUnit)
					count++
				}
			}

			mean := sum.Div(decimal.NewFromInt(int64(count)))
			assert.True(t, report.AverageUnitPrice.Equal(mean), "iteração %d produto %s", i, product)
		}
	}
}

func TestProperty_DailyTotalsMatchTotalRevenue(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 50; i++ {
		tbl := randomTable(rng)

		sum := decimal.Zero
		daily := DailyTotals(tbl)
		for j, day := range daily {
			sum = sum.Add(day.Revenue)
			if j > 0 {
				assert.True(t, daily[j-1].Date.Before(day.Date))
			}
		}

		assert.True(t, sum.Equal(TotalRevenue(tbl)))
	}
}
