package classifying

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestClassify_ExpansaoDeParcelas(t *testing.T) {
	comp := domain.Competency{Year: 2025, Month: time.March}
	now := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)

	record := domain.LedgerRecord{
		ID:          "rec-1",
		Description: "Compra de estoque",
		Amount:      decimal.NewFromInt(300),
		Type:        domain.EntryTypeExpense,
		Status:      domain.StatusPending,
		Category:    "other",
		Timestamp:   time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		Installments: []domain.Installment{
			{Number: 1, Amount: decimal.NewFromInt(100), Status: domain.StatusPaid, DueDate: datePtr(2025, time.February, 10), PaymentDate: datePtr(2025, time.February, 12)},
			{Number: 2, Amount: decimal.NewFromInt(100), Status: domain.StatusPending, DueDate: datePtr(2025, time.March, 10)},
			{Number: 3, Amount: decimal.NewFromInt(100), Status: domain.StatusPending, DueDate: datePtr(2025, time.April, 10)},
		},
	}

	entries := Classify([]domain.LedgerRecord{record}, comp, domain.ViewCashFlow, now)

	// Só a parcela 2 vence na competência de março.
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].InstallmentNumber)
	assert.Equal(t, "Compra de estoque (2/3)", entries[0].Description)
	assert.True(t, entries[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "rec-1", entries[0].SourceID)

	// O valor do registro pai nunca é emitido.
	for _, e := range entries {
		assert.False(t, e.Amount.Equal(record.Amount))
	}
}

func TestClassify_ParcelaPagaUsaDataDePagamento(t *testing.T) {
	now := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	record := domain.LedgerRecord{
		ID:     "rec-2",
		Amount: decimal.NewFromInt(200),
		Type:   domain.EntryTypeExpense,
		Installments: []domain.Installment{
			// Venceu em fevereiro, foi paga em março: pertence a março.
			{Number: 1, Amount: decimal.NewFromInt(200), Status: domain.StatusPaid, DueDate: datePtr(2025, time.February, 28), PaymentDate: datePtr(2025, time.March, 5)},
		},
	}

	february := domain.Competency{Year: 2025, Month: time.February}
	march := domain.Competency{Year: 2025, Month: time.March}

	assert.Empty(t, Classify([]domain.LedgerRecord{record}, february, domain.ViewCashFlow, now))
	assert.Len(t, Classify([]domain.LedgerRecord{record}, march, domain.ViewCashFlow, now), 1)
}

func TestClassify_ItemDeCartaoForaDoFluxoDeCaixa(t *testing.T) {
	comp := domain.Competency{Year: 2025, Month: time.March}
	now := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	invoiceID := "inv-1"

	cardLine := domain.LedgerRecord{
		ID:                 "line-1",
		Description:        "Notebook parcelado no cartão",
		Amount:             decimal.NewFromInt(500),
		Type:               domain.EntryTypeExpense,
		Status:             domain.StatusPending,
		Timestamp:          time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		FinancialAccountID: domain.AccountCreditMain,
		InvoiceID:          &invoiceID,
	}

	// Excluído da visão de fluxo de caixa...
	assert.Empty(t, Classify([]domain.LedgerRecord{cardLine}, comp, domain.ViewCashFlow, now))

	// ...mas presente na visão de itens da fatura: a classificação é por visão.
	items := Classify([]domain.LedgerRecord{cardLine}, comp, domain.ViewInvoiceItems, now)
	require.Len(t, items, 1)
	assert.Equal(t, "line-1", items[0].SourceID)
}

func TestClassify_FaturaAbertaNaoEhFatoContabil(t *testing.T) {
	comp := domain.Competency{Year: 2025, Month: time.March}
	now := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	openInvoice := domain.LedgerRecord{
		ID:                 "inv-open",
		Amount:             decimal.NewFromInt(800),
		Type:               domain.EntryTypeExpense,
		Status:             domain.StatusPending,
		Timestamp:          time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		FinancialAccountID: domain.AccountCreditMain,
		IsInvoice:          true,
		InvoiceStatus:      domain.InvoiceStatusOpen,
	}
	closedInvoice := openInvoice
	closedInvoice.ID = "inv-closed"
	closedInvoice.InvoiceStatus = domain.InvoiceStatusClosed
	closedInvoice.DueDate = datePtr(2025, time.March, 15)

	entries := Classify([]domain.LedgerRecord{openInvoice, closedInvoice}, comp, domain.ViewCashFlow, now)

	// A fatura aberta é suprimida; a fechada entra como despesa pendente.
	require.Len(t, entries, 1)
	assert.Equal(t, "inv-closed", entries[0].SourceID)

	// Fatura sem invoiceStatus é tratada como aberta.
	noStatus := openInvoice
	noStatus.ID = "inv-nostatus"
	noStatus.InvoiceStatus = ""
	assert.Empty(t, Classify([]domain.LedgerRecord{noStatus}, comp, domain.ViewCashFlow, now))
}

func TestClassify_RegistroSimplesUsaPagamentoOuVencimento(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	march := domain.Competency{Year: 2025, Month: time.March}
	april := domain.Competency{Year: 2025, Month: time.April}

	paid := domain.LedgerRecord{
		ID:          "paid-1",
		Amount:      decimal.NewFromInt(50),
		Type:        domain.EntryTypeIncome,
		Status:      domain.StatusPaid,
		Timestamp:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		DueDate:     datePtr(2025, time.April, 10),
		PaymentDate: datePtr(2025, time.March, 25),
	}
	pending := domain.LedgerRecord{
		ID:        "pending-1",
		Amount:    decimal.NewFromInt(70),
		Type:      domain.EntryTypeExpense,
		Status:    domain.StatusPending,
		Timestamp: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		DueDate:   datePtr(2025, time.April, 10),
	}

	records := []domain.LedgerRecord{paid, pending}

	marchEntries := Classify(records, march, domain.ViewCashFlow, now)
	require.Len(t, marchEntries, 1)
	assert.Equal(t, "paid-1", marchEntries[0].SourceID)

	aprilEntries := Classify(records, april, domain.ViewCashFlow, now)
	require.Len(t, aprilEntries, 1)
	assert.Equal(t, "pending-1", aprilEntries[0].SourceID)
}

func TestClassify_OrdenacaoDecrescenteEIdempotencia(t *testing.T) {
	comp := domain.Competency{Year: 2025, Month: time.March}
	now := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	records := []domain.LedgerRecord{
		{ID: "a", Amount: decimal.NewFromInt(1), Type: domain.EntryTypeIncome, Status: domain.StatusPending, Timestamp: now, DueDate: datePtr(2025, time.March, 5)},
		{ID: "b", Amount: decimal.NewFromInt(2), Type: domain.EntryTypeIncome, Status: domain.StatusPending, Timestamp: now, DueDate: datePtr(2025, time.March, 25)},
		{ID: "c", Amount: decimal.NewFromInt(3), Type: domain.EntryTypeIncome, Status: domain.StatusPending, Timestamp: now, DueDate: datePtr(2025, time.March, 15)},
	}

	first := Classify(records, comp, domain.ViewCashFlow, now)
	second := Classify(records, comp, domain.ViewCashFlow, now)

	require.Len(t, first, 3)
	assert.Equal(t, "b", first[0].SourceID)
	assert.Equal(t, "c", first[1].SourceID)
	assert.Equal(t, "a", first[2].SourceID)

	// Função pura: duas passadas sobre os mesmos registros são idênticas.
	assert.Equal(t, first, second)
}
