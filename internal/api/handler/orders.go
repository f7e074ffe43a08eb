package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/ordering"
	"github.com/FelipeSouzaG/smart-store-reports-api/pkg/apiErrors"
)

// ListOrders lista os pedidos do e-commerce, opcionalmente filtrados por status.
func ListOrders(service ordering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListOrders")

		status := domain.OrderStatus(r.URL.Query().Get("status"))
		switch status {
		case "", domain.OrderStatusPending, domain.OrderStatusSent,
			domain.OrderStatusDelivered, domain.OrderStatusCancelled:
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Status de pedido inválido", nil)
			return
		}

		writeJSON(w, service.List(status))
	}
}

// GetPendingOrdersCount retorna a contagem de pedidos aguardando atendimento,
// consumida pelo selo de notificação do front-end.
func GetPendingOrdersCount(service ordering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]int{"pending": service.PendingCount()})
	}
}

// GetReservations retorna, por produto, as quantidades reservadas por pedidos
// pendentes.
func GetReservations(service ordering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetReservations")

		writeJSON(w, service.Reservations())
	}
}

// UpdateOrderStatus muda o status de um pedido respeitando o fluxo
// PENDENTE → ENVIADO → ENTREGUE, com cancelamento só antes do envio.
func UpdateOrderStatus(service ordering.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateOrderStatus")

		var req domain.UpdateOrderStatusRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if err := service.UpdateStatus(r.Context(), req); err != nil {
			switch {
			case errors.Is(err, ordering.ErrOrderNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
			case errors.Is(err, ordering.ErrInvalidTransition):
				apiErrors.WriteError(w, apiErrors.ErrInvalidTransition, err.Error(), nil)
			default:
				writeBackendError(w, err)
			}
			return
		}

		writeJSON(w, map[string]string{"message": "Status do pedido atualizado com sucesso"})
	}
}
