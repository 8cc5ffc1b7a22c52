package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-report/infrastructure/export"
	"github.com/vfg2006/sales-report/internal/usecases/reporting"
	"github.com/vfg2006/sales-report/pkg/log"
)

var rule = strings.Repeat("-", 30)

type summaryOptions struct {
	source   string
	plotsDir string
	xlsxPath string
}

func newSummaryCommand(a *app) *cobra.Command {
	var opts summaryOptions

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the overall sales summary and save the overview charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.source == "" {
				opts.source = a.cfg.Sales.Source
			}
			if opts.plotsDir == "" {
				opts.plotsDir = a.cfg.Sales.PlotsDir
			}

			service := newReportService(a.cfg, opts.source)
			return runSummary(cmd.Context(), cmd.OutOrStdout(), service, opts)
		},
	}

	cmd.Flags().StringVar(&opts.source, "source", "", "sales CSV file (default SALES_SOURCE)")
	cmd.Flags().StringVar(&opts.plotsDir, "plots-dir", "", "directory for the overview charts (default PLOTS_DIR)")
	cmd.Flags().StringVar(&opts.xlsxPath, "xlsx", "", "also write the summary to this .xlsx workbook")

	return cmd
}

// runSummary só escreve o resumo depois que a fonte foi carregada e agregada,
// então uma fonte ausente produz apenas a mensagem de erro.
func runSummary(ctx context.Context, out io.Writer, service *reporting.Service, opts summaryOptions) error {
	summary, err := service.Summary(ctx)
	if err != nil {
		fmt.Fprintln(out, summaryErrorMessage(err, opts.source))
		return &reportedError{err: err}
	}

	fmt.Fprintln(out, "Data loaded successfully.")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "ANALYSIS RESULTS")
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Total Revenue: %s\n", summary.TotalRevenue.StringFixed(2))
	fmt.Fprintf(out, "Best Selling Product (by Revenue): %s\n", summary.BestSeller)
	fmt.Fprintf(out, "Average Daily Sales: %s\n", summary.AverageDailyRevenue.StringFixed(2))
	fmt.Fprintln(out, rule)

	charts, err := service.RenderSummaryCharts(ctx, summary, opts.plotsDir)
	if err != nil {
		fmt.Fprintf(out, "Error: could not save plots: %v\n", err)
		return &reportedError{err: err}
	}
	fmt.Fprintf(out, "Saved plot: %s\n", charts.ProductSalesPath)
	fmt.Fprintf(out, "Saved plot: %s\n", charts.DailyTrendPath)

	if opts.xlsxPath != "" {
		if err := export.WriteSummary(summary, opts.xlsxPath); err != nil {
			fmt.Fprintf(out, "Error: could not save workbook: %v\n", err)
			return &reportedError{err: err}
		}
		fmt.Fprintf(out, "Saved workbook: %s\n", opts.xlsxPath)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"source":        opts.source,
		"total_revenue": summary.TotalRevenue.StringFixed(2),
	}).Debug("summary: análise concluída")

	fmt.Fprintln(out, "Analysis complete.")
	return nil
}

func summaryErrorMessage(err error, source string) string {
	switch {
	case errors.Is(err, reporting.ErrSourceNotFound):
		return fmt.Sprintf("Error: %s not found.", source)
	case errors.Is(err, reporting.ErrNoMatchingData):
		return fmt.Sprintf("Error: no sales data in %s.", source)
	case errors.Is(err, reporting.ErrMalformedInput):
		return fmt.Sprintf("Error: %s is malformed: %v", source, err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
