package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus é o estado de um pedido do e-commerce.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusSent      OrderStatus = "SENT"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// orderTransitions define as transições legais do pedido.
// PENDING → SENT → DELIVERED; PENDING e SENT podem ser cancelados.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusSent, OrderStatusCancelled},
	OrderStatusSent:    {OrderStatusDelivered, OrderStatusCancelled},
}

// CanTransition verifica se a mudança de status é permitida.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// OrderItem reserva quantidade de um produto para um pedido online.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// EcommerceOrder é um pedido do e-commerce. Ele se liga ao estoque apenas
// pelas reservas de quantidade dos itens; não faz parte do razão financeiro.
type EcommerceOrder struct {
	ID        string          `json:"id"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	Customer  string          `json:"customer,omitempty"`
	Total     decimal.Decimal `json:"total"`
	Items     []OrderItem     `json:"items"`
}

// Reserves indica se o pedido ainda segura reserva de estoque.
func (o EcommerceOrder) Reserves() bool {
	return o.Status == OrderStatusPending
}
