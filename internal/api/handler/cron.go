package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/growth-metrics-api/pkg/log"
)

// CronJobTypeSnapshot identifica o snapshot de métricas no warehouse
const CronJobTypeSnapshot = "snapshot"

// SnapshotSyncer é o agendador que pode ser disparado manualmente
type SnapshotSyncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	MetricsSnapshotSyncService SnapshotSyncer
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeSnapshot:
			if services.MetricsSnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshot de métricas não disponível", nil)
				return
			}

			message := "Cron job iniciada com sucesso"
			if !services.MetricsSnapshotSyncService.TriggerManualSync() {
				message = "Cron job já está em execução"
			}

			logrus.WithField("type", cronType).Info(message)
			writeJSON(w, logger, http.StatusOK, map[string]any{
				"message": message,
				"type":    cronType,
			})
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshot", nil)
		}
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.MetricsSnapshotSyncService != nil {
			status[CronJobTypeSnapshot] = services.MetricsSnapshotSyncService.GetStatus()
		}

		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, status)
	}
}
