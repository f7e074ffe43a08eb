package domain

import "time"

// Os tipos abaixo substituem o payload frouxo de mutação por variantes
// etiquetadas: cada tipo de baixa tem seu próprio conjunto de campos
// obrigatórios, verificado pelo validador antes de qualquer requisição.

// PayTransactionRequest liquida um lançamento simples.
type PayTransactionRequest struct {
	RecordID    string    `json:"recordId" validate:"required"`
	PaymentDate time.Time `json:"paymentDate" validate:"required"`
	AccountID   string    `json:"accountId" validate:"required,oneof=cash-box bank-main credit-main boleto"`
}

// PayInstallmentRequest liquida uma parcela específica de um lançamento
// parcelado. A parcela é endereçada pelo número, nunca pelo valor.
type PayInstallmentRequest struct {
	RecordID          string    `json:"recordId" validate:"required"`
	InstallmentNumber int       `json:"installmentNumber" validate:"required,gte=1"`
	PaymentDate       time.Time `json:"paymentDate" validate:"required"`
	AccountID         string    `json:"accountId" validate:"required,oneof=cash-box bank-main credit-main boleto"`
}

// PayInvoiceRequest liquida uma fatura de cartão fechada.
type PayInvoiceRequest struct {
	RecordID    string    `json:"recordId" validate:"required"`
	PaymentDate time.Time `json:"paymentDate" validate:"required"`
}

// RevertInvoiceRequest desfaz o pagamento de uma fatura. A transição é
// sempre Paga → Fechada/Pendente: o status da fatura é forçado para fechada
// para que ela não reabra silenciosamente como acumulando.
type RevertInvoiceRequest struct {
	RecordID string `json:"recordId" validate:"required"`
}

// UpdateOrderStatusRequest muda o status de um pedido do e-commerce.
type UpdateOrderStatusRequest struct {
	OrderID string      `json:"orderId" validate:"required"`
	Status  OrderStatus `json:"status" validate:"required,oneof=PENDING SENT DELIVERED CANCELLED"`
}
