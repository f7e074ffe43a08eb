package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// View identifica a visão alvo de uma classificação. A classificação é
// parametrizada pela visão: um mesmo registro pode ser excluído do fluxo de
// caixa e ainda assim aparecer legitimamente na visão de itens da fatura.
type View string

const (
	ViewCashFlow         View = "cash-flow"
	ViewInvoiceItems     View = "invoice-items"
	ViewInvoiceLifecycle View = "invoice-lifecycle"
)

// ParseView valida o nome de uma visão vindo da requisição; vazio assume a
// visão de fluxo de caixa.
func ParseView(s string) (View, bool) {
	switch View(s) {
	case "":
		return ViewCashFlow, true
	case ViewCashFlow, ViewInvoiceItems, ViewInvoiceLifecycle:
		return View(s), true
	default:
		return "", false
	}
}

// EffectiveEntry é um lançamento efetivo produzido pela classificação:
// um único valor, com status e data de referência próprios, rastreável
// até o registro de origem.
type EffectiveEntry struct {
	Amount            decimal.Decimal `json:"amount"`
	Status            string          `json:"status"`
	Type              string          `json:"type"`
	Category          string          `json:"category"`
	Description       string          `json:"description"`
	ReferenceDate     time.Time       `json:"referenceDate"`
	InstallmentNumber int             `json:"installmentNumber,omitempty"`
	Source            *LedgerRecord   `json:"-"`
	SourceID          string          `json:"sourceId"`
}

// IsPaid indica se o lançamento efetivo está liquidado.
func (e EffectiveEntry) IsPaid() bool {
	return e.Status == StatusPaid
}
