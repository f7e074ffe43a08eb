package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/FelipeSouzaG/smart-store-reports-api/internal/scheduler"
	"github.com/FelipeSouzaG/smart-store-reports-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshot = "snapshot"
	CronJobTypeOrders   = "orders"
	CronJobTypeAll      = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SnapshotSyncService *scheduler.SnapshotSyncService
	OrdersSyncService   *scheduler.OrdersSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshot:
			if services.SnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de snapshot não disponível", nil)
				return
			}
			services.SnapshotSyncService.TriggerManualSync()

		case CronJobTypeOrders:
			if services.OrdersSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de polling de pedidos não disponível", nil)
				return
			}
			services.OrdersSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.SnapshotSyncService != nil {
				services.SnapshotSyncService.TriggerManualSync()
			}
			if services.OrdersSyncService != nil {
				services.OrdersSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshot, orders, all", nil)
			return
		}

		writeJSON(w, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		writeJSON(w, map[string]any{
			"snapshot": services.SnapshotSyncService.GetStatus(),
			"orders":   services.OrdersSyncService.GetStatus(),
		})
	}
}
