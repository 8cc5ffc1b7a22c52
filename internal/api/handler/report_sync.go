package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-report/pkg/apiErrors"
	"github.com/vfg2006/sales-report/pkg/log"
)

// ReportSyncer é o agendador que regenera os gráficos gerais
type ReportSyncer interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// RunReportSync dispara manualmente a regeneração dos gráficos gerais
func RunReportSync(syncer ReportSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunReportSync")

		if syncer == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de regeneração de relatórios não disponível", nil)
			return
		}

		started := syncer.TriggerManualSync(r.Context())

		message := "Regeneração de relatórios iniciada com sucesso"
		if !started {
			message = "Regeneração de relatórios já em andamento"
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": message,
			"started": started,
		})
	}
}

// GetReportSyncStatus retorna o status da regeneração agendada
func GetReportSyncStatus(syncer ReportSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if syncer == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de regeneração de relatórios não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, syncer.GetStatus())
	}
}
