// Package export grava o resumo de vendas em planilha xlsx
package export

import (
	"fmt"
	"io"

	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet  = "Summary"
	ProductsSheet = "Products"
	DailySheet    = "Daily"
)

// WriteSummary gera a planilha com as abas Summary, Products e Daily e sobrescreve path
func WriteSummary(summary *domain.SalesSummary, path string) error {
	if summary == nil {
		return fmt.Errorf("export: resumo vazio")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("erro ao renomear aba: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DCE6F1"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("erro ao criar estilo: %w", err)
	}

	summaryRows := [][]any{
		{"Metric", "Value"},
		{"Source", summary.Source},
		{"Total Revenue", utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)},
		{"Best Selling Product (by Revenue)", summary.BestSeller},
		{"Average Daily Sales", utils.RoundWithTwoDecimalPlace(summary.AverageDailyRevenue)},
	}
	if err := writeRows(f, SummarySheet, summaryRows, headerStyle); err != nil {
		return err
	}

	productRows := [][]any{{"Product", "Total Sales"}}
	for _, total := range summary.ProductTotals {
		productRows = append(productRows, []any{total.Product, utils.RoundWithTwoDecimalPlace(total.Revenue)})
	}
	if _, err := f.NewSheet(ProductsSheet); err != nil {
		return fmt.Errorf("erro ao criar aba %s: %w", ProductsSheet, err)
	}
	if err := writeRows(f, ProductsSheet, productRows, headerStyle); err != nil {
		return err
	}

	dailyRows := [][]any{{"Date", "Total Sales"}}
	for _, day := range summary.DailyTotals {
		dailyRows = append(dailyRows, []any{day.Date.Format(domain.DateLayout), utils.RoundWithTwoDecimalPlace(day.Revenue)})
	}
	if _, err := f.NewSheet(DailySheet); err != nil {
		return fmt.Errorf("erro ao criar aba %s: %w", DailySheet, err)
	}
	if err := writeRows(f, DailySheet, dailyRows, headerStyle); err != nil {
		return err
	}

	return utils.WriteFileAtomic(path, func(w io.Writer) error {
		return f.Write(w)
	})
}

func writeRows(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("erro ao escrever linha %d da aba %s: %w", i+1, sheet, err)
		}
	}

	lastCell, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCell, headerStyle); err != nil {
		return fmt.Errorf("erro ao aplicar estilo na aba %s: %w", sheet, err)
	}

	return f.SetColWidth(sheet, "A", "A", 36)
}
