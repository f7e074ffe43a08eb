package ordering

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/integrator/storeapi/mocks"
	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/snapshot"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
)

func expectRefresh(integrator *mocks.MockStoreIntegrator, orders []domain.EcommerceOrder) {
	integrator.EXPECT().FetchLedger(gomock.Any()).Return(nil, nil)
	integrator.EXPECT().FetchSales(gomock.Any()).Return(nil, nil)
	integrator.EXPECT().FetchProducts(gomock.Any()).Return(nil, nil)
	integrator.EXPECT().FetchOrders(gomock.Any()).Return(orders, nil)
	integrator.EXPECT().FetchGoals(gomock.Any()).Return(domain.DefaultKpiGoals(), nil)
}

func newTestService(t *testing.T, orders []domain.EcommerceOrder) (*Service, *mocks.MockStoreIntegrator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockStoreIntegrator(ctrl)
	expectRefresh(integrator, orders)

	store := snapshot.NewStore(integrator)
	require.NoError(t, store.Refresh(context.Background()))

	service := &Service{
		store:      store,
		integrator: integrator,
		now:        time.Now,
	}
	return service, integrator
}

func order(id string, status domain.OrderStatus, items ...domain.OrderItem) domain.EcommerceOrder {
	return domain.EcommerceOrder{
		ID:        id,
		Status:    status,
		CreatedAt: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		Total:     decimal.NewFromInt(100),
		Items:     items,
	}
}

func TestList_FiltraPorStatus(t *testing.T) {
	orders := []domain.EcommerceOrder{
		order("ord-1", domain.OrderStatusPending),
		order("ord-2", domain.OrderStatusSent),
		order("ord-3", domain.OrderStatusPending),
	}
	service, _ := newTestService(t, orders)

	pending := service.List(domain.OrderStatusPending)
	require.Len(t, pending, 2)

	// Status vazio lista todos.
	assert.Len(t, service.List(""), 3)
	assert.Equal(t, 2, service.PendingCount())
}

func TestReservations_SomentePedidosPendentes(t *testing.T) {
	orders := []domain.EcommerceOrder{
		order("ord-1", domain.OrderStatusPending, domain.OrderItem{ProductID: "p1", Quantity: 2}),
		order("ord-2", domain.OrderStatusPending, domain.OrderItem{ProductID: "p1", Quantity: 1}, domain.OrderItem{ProductID: "p2", Quantity: 4}),
		// Enviado já saiu do estoque no backend; cancelado liberou a reserva.
		order("ord-3", domain.OrderStatusSent, domain.OrderItem{ProductID: "p1", Quantity: 9}),
		order("ord-4", domain.OrderStatusCancelled, domain.OrderItem{ProductID: "p2", Quantity: 9}),
	}
	service, _ := newTestService(t, orders)

	reserved := service.Reservations()

	assert.Equal(t, map[string]int{"p1": 3, "p2": 4}, reserved)
}

func TestUpdateStatus_TransicoesPermitidas(t *testing.T) {
	testCases := []struct {
		name    string
		from    domain.OrderStatus
		to      domain.OrderStatus
		allowed bool
	}{
		{name: "pendente para enviado", from: domain.OrderStatusPending, to: domain.OrderStatusSent, allowed: true},
		{name: "pendente para cancelado", from: domain.OrderStatusPending, to: domain.OrderStatusCancelled, allowed: true},
		{name: "enviado para entregue", from: domain.OrderStatusSent, to: domain.OrderStatusDelivered, allowed: true},
		{name: "enviado para cancelado", from: domain.OrderStatusSent, to: domain.OrderStatusCancelled, allowed: true},
		{name: "pendente não salta para entregue", from: domain.OrderStatusPending, to: domain.OrderStatusDelivered, allowed: false},
		{name: "entregue é terminal", from: domain.OrderStatusDelivered, to: domain.OrderStatusCancelled, allowed: false},
		{name: "cancelado é terminal", from: domain.OrderStatusCancelled, to: domain.OrderStatusPending, allowed: false},
		{name: "enviado não volta para pendente", from: domain.OrderStatusSent, to: domain.OrderStatusPending, allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, integrator := newTestService(t, []domain.EcommerceOrder{order("ord-1", tc.from)})

			req := domain.UpdateOrderStatusRequest{OrderID: "ord-1", Status: tc.to}
			if tc.allowed {
				integrator.EXPECT().UpdateOrderStatus(gomock.Any(), req).Return(nil)
				expectRefresh(integrator, []domain.EcommerceOrder{order("ord-1", tc.to)})
			}

			err := service.UpdateStatus(context.Background(), req)

			if tc.allowed {
				require.NoError(t, err)
				return
			}
			// Transição recusada localmente: nenhuma mutação chega ao backend.
			require.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestUpdateStatus_PedidoInexistente(t *testing.T) {
	service, _ := newTestService(t, nil)

	err := service.UpdateStatus(context.Background(), domain.UpdateOrderStatusRequest{
		OrderID: "fantasma",
		Status:  domain.OrderStatusSent,
	})

	require.ErrorIs(t, err, ErrOrderNotFound)
}
