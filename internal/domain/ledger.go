package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de lançamento financeiro.
const (
	EntryTypeIncome  = "income"
	EntryTypeExpense = "expense"
)

// Status de liquidação de um lançamento, conforme retornado pelo backend.
const (
	StatusPending = "Pendente"
	StatusPaid    = "Pago"
)

// Status do ciclo de uma fatura de cartão de crédito.
const (
	InvoiceStatusOpen   = "Open"
	InvoiceStatusClosed = "Closed"
)

// Contas financeiras (trilhos de liquidação) reconhecidas pelo backend.
const (
	AccountCashBox    = "cash-box"
	AccountBankMain   = "bank-main"
	AccountCreditMain = "credit-main"
	AccountBoleto     = "boleto"
)

// Categorias usadas na alocação do resultado por competência.
const (
	CategoryService   = "service"
	CategoryRent      = "rent"
	CategorySalary    = "salary"
	CategoryTaxes     = "taxes"
	CategoryUtilities = "utilities"
	CategoryOther     = "other"
)

// FixedCostCategories é o conjunto de categorias tratadas como custo fixo
// na apuração por competência.
var FixedCostCategories = map[string]bool{
	CategoryRent:      true,
	CategorySalary:    true,
	CategoryTaxes:     true,
	CategoryUtilities: true,
	CategoryOther:     true,
}

// Installment é uma parcela de um lançamento parcelado. Quando presente,
// o lançamento pai nunca é exibido diretamente: ele só contribui para as
// agregações através das parcelas expandidas.
type Installment struct {
	Number      int             `json:"number"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	PaymentDate *time.Time      `json:"paymentDate,omitempty"`
}

// LedgerRecord é o fato financeiro canônico retornado pelo backend.
// O cliente nunca inventa identificadores: o ID é estável entre re-buscas.
type LedgerRecord struct {
	ID                 string          `json:"id"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	Type               string          `json:"type"`
	Status             string          `json:"status"`
	Category           string          `json:"category"`
	Timestamp          time.Time       `json:"timestamp"`
	DueDate            *time.Time      `json:"dueDate,omitempty"`
	PaymentDate        *time.Time      `json:"paymentDate,omitempty"`
	FinancialAccountID string          `json:"financialAccountId"`
	IsInvoice          bool            `json:"isInvoice"`
	InvoiceStatus      string          `json:"invoiceStatus,omitempty"`
	InvoiceID          *string         `json:"invoiceId,omitempty"`
	Installments       []Installment   `json:"installments,omitempty"`
}

// EffectiveInvoiceStatus resolve o status da fatura tratando a ausência do
// campo como "ainda acumulando".
func (r LedgerRecord) EffectiveInvoiceStatus() string {
	if r.InvoiceStatus == "" {
		return InvoiceStatusOpen
	}
	return r.InvoiceStatus
}

// IsCreditCardLine indica um item individual de compra no cartão, que pertence
// à visão da fatura e não à visão de fluxo de caixa.
func (r LedgerRecord) IsCreditCardLine() bool {
	return r.FinancialAccountID == AccountCreditMain && !r.IsInvoice
}

// IsAccumulatingInvoice indica uma fatura ainda aberta e não paga, que não é
// um fato contábil em nenhuma visão de período.
func (r LedgerRecord) IsAccumulatingInvoice() bool {
	return r.IsInvoice && r.EffectiveInvoiceStatus() == InvoiceStatusOpen && r.Status != StatusPaid
}
