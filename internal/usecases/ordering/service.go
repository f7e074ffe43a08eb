// Package ordering administra os pedidos do canal online: listagem por
// situação, resumo de reservas e a transição de status com re-busca do
// snapshot após cada mutação.
package ordering

import (
	"context"
	"time"

	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/integrator/storeapi"
	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/snapshot"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/pkg/errors"
)

var (
	// ErrOrderNotFound indica pedido ausente do snapshot.
	ErrOrderNotFound = errors.New("pedido não encontrado")
	// ErrInvalidTransition rejeita saltos fora do fluxo
	// PENDENTE → ENVIADO → ENTREGUE, com cancelamento só antes do envio.
	ErrInvalidTransition = errors.New("transição de status de pedido inválida")
)

type Manager interface {
	List(status domain.OrderStatus) []domain.EcommerceOrder
	PendingCount() int
	Reservations() map[string]int
	UpdateStatus(ctx context.Context, req domain.UpdateOrderStatusRequest) error
}

type Service struct {
	store      *snapshot.Store
	integrator storeapi.StoreIntegrator
	now        func() time.Time
}

func NewService(store *snapshot.Store, integrator storeapi.StoreIntegrator) Manager {
	return &Service{
		store:      store,
		integrator: integrator,
		now:        time.Now,
	}
}

// List retorna os pedidos com o status informado; status vazio lista todos.
func (s *Service) List(status domain.OrderStatus) []domain.EcommerceOrder {
	snap := s.store.Current()

	orders := make([]domain.EcommerceOrder, 0)
	for _, order := range snap.Orders {
		if status == "" || order.Status == status {
			orders = append(orders, order)
		}
	}

	return orders
}

// PendingCount conta os pedidos aguardando atendimento, usado pelo selo de
// notificação atualizado pelo polling de pedidos.
func (s *Service) PendingCount() int {
	count := 0
	for _, order := range s.store.Current().Orders {
		if order.Status == domain.OrderStatusPending {
			count++
		}
	}
	return count
}

// Reservations soma, por produto, as quantidades comprometidas com pedidos
// pendentes. Só pedidos PENDENTES reservam: enviados e entregues já saíram do
// estoque no backend e cancelados liberam a reserva.
func (s *Service) Reservations() map[string]int {
	reserved := map[string]int{}
	for _, order := range s.store.Current().Orders {
		if !order.Reserves() {
			continue
		}
		for _, item := range order.Items {
			reserved[item.ProductID] += item.Quantity
		}
	}
	return reserved
}

// UpdateStatus valida a transição localmente, envia a mutação ao backend e
// re-busca o snapshot completo.
func (s *Service) UpdateStatus(ctx context.Context, req domain.UpdateOrderStatusRequest) error {
	snap := s.store.Current()

	var current *domain.EcommerceOrder
	for i := range snap.Orders {
		if snap.Orders[i].ID == req.OrderID {
			current = &snap.Orders[i]
			break
		}
	}
	if current == nil {
		return ErrOrderNotFound
	}

	if !current.Status.CanTransition(req.Status) {
		return errors.Wrapf(ErrInvalidTransition, "de %s para %s", current.Status, req.Status)
	}

	if err := s.integrator.UpdateOrderStatus(ctx, req); err != nil {
		return err
	}

	return s.store.Refresh(ctx)
}
