package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/xuri/excelize/v2"
)

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.xlsx")
	summary := &domain.SalesSummary{
		Source:              "sales_data.csv",
		TotalRevenue:        decimal.RequireFromString("40.00"),
		BestSeller:          "Mouse",
		AverageDailyRevenue: decimal.NewFromInt(20),
		ProductTotals: []domain.ProductTotal{
			{Product: "Mouse", Revenue: decimal.NewFromInt(30)},
			{Product: "Keyboard", Revenue: decimal.NewFromInt(10)},
		},
		DailyTotals: []domain.DailyRevenue{
			{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Revenue: decimal.NewFromInt(20)},
			{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Revenue: decimal.NewFromInt(20)},
		},
	}

	require.NoError(t, WriteSummary(summary, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, ProductsSheet, DailySheet}, f.GetSheetList())

	best, err := f.GetCellValue(SummarySheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "Mouse", best)

	total, err := f.GetCellValue(SummarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "40", total)

	rows, err := f.GetRows(ProductsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Keyboard", "10"}, rows[2])

	rows, err = f.GetRows(DailySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-01-01", rows[1][0])
}

func TestWriteSummary_Nil(t *testing.T) {
	assert.Error(t, WriteSummary(nil, filepath.Join(t.TempDir(), "summary.xlsx")))
}
