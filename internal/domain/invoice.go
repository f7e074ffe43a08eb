package domain

import "time"

// InvoiceState é o estado derivado de uma fatura de cartão de crédito.
// Nenhum estado é persistido aqui: tudo é recalculado sobre o snapshot.
type InvoiceState string

const (
	// InvoiceStateOpen: fatura acumulando; não aparece em nenhuma lista de liquidação.
	InvoiceStateOpen InvoiceState = "open"
	// InvoiceStateClosedPending: fatura fechada aguardando pagamento.
	InvoiceStateClosedPending InvoiceState = "closed-pending"
	// InvoiceStatePaid: fatura paga; terminal para o ciclo, mas reversível.
	InvoiceStatePaid InvoiceState = "paid"
)

// InvoiceView é a projeção de uma fatura para a interface: estado derivado e
// indicação de atraso.
type InvoiceView struct {
	Record LedgerRecord `json:"record"`
	State  InvoiceState `json:"state"`
	Late   bool         `json:"late"`
}

// InvoiceStateOf deriva o estado de uma fatura a partir do registro bruto.
// A ausência de invoiceStatus vale como aberta enquanto não houver pagamento.
func InvoiceStateOf(r LedgerRecord) InvoiceState {
	if r.Status == StatusPaid {
		return InvoiceStatePaid
	}
	if r.EffectiveInvoiceStatus() == InvoiceStatusClosed {
		return InvoiceStateClosedPending
	}
	return InvoiceStateOpen
}

// NewInvoiceView monta a projeção da fatura. A fatura fechada e pendente fica
// atrasada quando o vencimento é anterior a hoje.
func NewInvoiceView(r LedgerRecord, today time.Time) InvoiceView {
	state := InvoiceStateOf(r)

	late := false
	if state == InvoiceStateClosedPending && r.DueDate != nil {
		late = r.DueDate.Before(truncateDay(today))
	}

	return InvoiceView{Record: r, State: state, Late: late}
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
