package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report/internal/config"
	"github.com/vfg2006/sales-report/internal/domain"
	"github.com/vfg2006/sales-report/pkg/log"
)

// OverviewRenderer gera os gráficos gerais a partir da fonte de vendas
type OverviewRenderer interface {
	RenderOverview(ctx context.Context, dir string) (*domain.OverviewCharts, error)
}

// ReportSyncConfig representa a configuração do agendador de relatórios
type ReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	PlotsDir     string
}

// ReportSyncService regenera periodicamente os gráficos gerais
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSyncConfig
	renderer            OverviewRenderer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastCharts          *domain.OverviewCharts
}

// NewReportSyncService cria uma nova instância do serviço de regeneração dos relatórios
func NewReportSyncService(renderer OverviewRenderer, appConfig *config.Config) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: appConfig.ReportSync.CronSchedule,
		SyncEnabled:  appConfig.ReportSync.Enabled,
		PlotsDir:     appConfig.Sales.PlotsDir,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"plots_dir":     syncConfig.PlotsDir,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		renderer:  renderer,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Regeneração agendada de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncReports(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar regeneração de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncReports regenera os gráficos gerais; execuções sobrepostas são ignoradas
func (s *ReportSyncService) syncReports(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Regeneração de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)

	charts, err := s.renderer.RenderOverview(ctx, s.config.PlotsDir)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	if err != nil {
		s.lastSyncError = err.Error()
		logger.WithError(err).Error("Erro ao regenerar gráficos gerais")
		return
	}

	s.lastSyncError = ""
	s.lastCharts = charts
	s.lastSyncCompletedAt = time.Now()

	logger.WithFields(log.Fields{
		"destination": s.config.PlotsDir,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Regeneração de relatórios concluída")
}

// TriggerManualSync inicia manualmente uma regeneração; retorna false se já houver uma em andamento
func (s *ReportSyncService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Regeneração de relatórios já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando regeneração manual de relatórios")
	go s.syncReports(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual da regeneração
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastSyncError != "" {
		status["last_sync_error"] = s.lastSyncError
	}
	if s.lastCharts != nil {
		status["charts"] = s.lastCharts
	}

	return status
}
