package commands

import (
	"context"
	"path"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-report/infrastructure/chart"
	"github.com/vfg2006/sales-report/infrastructure/source"
	"github.com/vfg2006/sales-report/infrastructure/upload"
	"github.com/vfg2006/sales-report/internal/api"
	"github.com/vfg2006/sales-report/internal/api/handler"
	"github.com/vfg2006/sales-report/internal/config"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/internal/scheduler"
	"github.com/vfg2006/sales-report/internal/usecases/reporting"
	"github.com/vfg2006/sales-report/pkg/log"
)

func newServeCommand(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web form and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				a.cfg.Server.Port = port
			}
			return RunServer(cmd.Context(), a.cfg)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (default PORT)")

	return cmd
}

// newReportService monta o serviço de relatórios com os gráficos e uploads sob STATIC_DIR
func newReportService(cfg *config.Config, salesSource string) *reporting.Service {
	service := reporting.NewService(
		reporting.Settings{
			Source:    salesSource,
			ImagesDir: cfg.Static.ImagesDir(),
			ImagesURL: path.Join(handler.StaticPrefix, "images"),
		},
		domain.DefaultProductCatalog(),
		chart.NewRenderer(),
		upload.NewStore(cfg.Static.UploadsDir(), path.Join(handler.StaticPrefix, "uploads")),
	)

	return service.WithLoader(source.NewLoader(cfg.Sales.SourceTimeout).Open)
}

// RunServer inicia o agendador e o servidor HTTP até o contexto ser cancelado ou um sinal chegar
func RunServer(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reportService := newReportService(cfg, cfg.Sales.Source)

	reportSyncService := scheduler.NewReportSyncService(reportService, cfg)
	if err := reportSyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de relatórios")
	} else {
		log.L.Info("Agendador de relatórios iniciado com sucesso")
	}

	server, err := api.New(cfg, reportService, reportSyncService)
	if err != nil {
		return err
	}

	return server.Run(ctx)
}
