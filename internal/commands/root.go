// Package commands contém a linha de comando do relatório de vendas
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-report/internal/buildinfo"
	"github.com/vfg2006/sales-report/internal/config"
	"github.com/vfg2006/sales-report/pkg/log"
)

// reportedError já foi exibido ao usuário; main só precisa encerrar com código de erro
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// IsReported indica que a mensagem do erro já foi escrita na saída do comando
func IsReported(err error) bool {
	var reported *reportedError
	return errors.As(err, &reported)
}

// app guarda a configuração carregada antes de qualquer subcomando
type app struct {
	cfg *config.Config
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "salesreport",
		Short:   "Sales data analysis from a CSV of daily product sales",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			log.Setup(cfg.App.LogOptions())
			a.cfg = cfg
			return nil
		},
	}

	rootCmd.AddCommand(newSummaryCommand(a))
	rootCmd.AddCommand(newServeCommand(a))

	return rootCmd
}
