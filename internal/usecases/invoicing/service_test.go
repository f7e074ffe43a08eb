package invoicing

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

var testNow = time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func invoiceRecord(id, invoiceStatus, status string) domain.LedgerRecord {
	return domain.LedgerRecord{
		ID:                 id,
		Description:        "Fatura Cartão Principal",
		Amount:             decimal.NewFromInt(800),
		Type:               domain.EntryTypeExpense,
		Status:             status,
		Timestamp:          time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:            datePtr(2025, time.March, 15),
		FinancialAccountID: domain.AccountCreditMain,
		IsInvoice:          true,
		InvoiceStatus:      invoiceStatus,
	}
}

// expectRefresh registra as cinco buscas disparadas pela re-busca completa do
// snapshot que segue toda mutação.
func expectRefresh(integrator *mocks.MockStoreIntegrator, records []domain.LedgerRecord) {
	integrator.EXPECT().FetchLedger(gomock.Any()).Return(records, nil)
	integrator.EXPECT().FetchSales(gomock.Any()).Return(nil, nil)
	integrator.EXPECT().FetchProducts(gomock.Any()).Return(nil, nil)
	integrator.EXPECT().FetchOrders(gomock.Any()).Return(nil, nil)
	integrator.EXPECT().FetchGoals(gomock.Any()).Return(domain.DefaultKpiGoals(), nil)
}

func newTestService(t *testing.T, records []domain.LedgerRecord) (*Service, *mocks.MockStoreIntegrator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockStoreIntegrator(ctrl)
	expectRefresh(integrator, records)

	store := snapshot.NewStore(integrator)
	require.NoError(t, store.Refresh(context.Background()))

	service := &Service{
		store:      store,
		integrator: integrator,
		now:        func() time.Time { return testNow },
	}
	return service, integrator
}

func TestPayables_SomenteFaturasFechadasPendentes(t *testing.T) {
	open := invoiceRecord("inv-aberta", domain.InvoiceStatusOpen, domain.StatusPending)
	closed := invoiceRecord("inv-fechada", domain.InvoiceStatusClosed, domain.StatusPending)
	paid := invoiceRecord("inv-paga", domain.InvoiceStatusClosed, domain.StatusPaid)

	service, _ := newTestService(t, []domain.LedgerRecord{open, closed, paid})

	payables := service.Payables()

	require.Len(t, payables, 1)
	assert.Equal(t, "inv-fechada", payables[0].Record.ID)
	assert.Equal(t, domain.InvoiceStateClosedPending, payables[0].State)
	// Vencimento em 15/03 com hoje em 20/03: atrasada.
	assert.True(t, payables[0].Late)
}

func TestItems_LinhasDeCartaoVinculadasAFatura(t *testing.T) {
	invoiceID := "inv-1"
	otherID := "inv-2"

	line := domain.LedgerRecord{
		ID:                 "linha-1",
		Amount:             decimal.NewFromInt(150),
		Type:               domain.EntryTypeExpense,
		FinancialAccountID: domain.AccountCreditMain,
		InvoiceID:          &invoiceID,
	}
	otherLine := line
	otherLine.ID = "linha-2"
	otherLine.InvoiceID = &otherID
	bankRecord := domain.LedgerRecord{
		ID:                 "pix-1",
		Amount:             decimal.NewFromInt(99),
		Type:               domain.EntryTypeExpense,
		FinancialAccountID: domain.AccountBankMain,
	}

	service, _ := newTestService(t, []domain.LedgerRecord{line, otherLine, bankRecord})

	items := service.Items("inv-1")

	require.Len(t, items, 1)
	assert.Equal(t, "linha-1", items[0].ID)
}

func TestPay_FaturaFechadaBaixaERebusca(t *testing.T) {
	closed := invoiceRecord("inv-1", domain.InvoiceStatusClosed, domain.StatusPending)
	service, integrator := newTestService(t, []domain.LedgerRecord{closed})

	req := domain.PayInvoiceRequest{RecordID: "inv-1", PaymentDate: testNow}
	integrator.EXPECT().PayInvoice(gomock.Any(), req).Return(nil)

	paid := invoiceRecord("inv-1", domain.InvoiceStatusClosed, domain.StatusPaid)
	expectRefresh(integrator, []domain.LedgerRecord{paid})

	require.NoError(t, service.Pay(context.Background(), req))

	// O snapshot re-buscado já reflete a fatura paga.
	assert.Empty(t, service.Payables())
}

func TestPay_FaturaAbertaNaoEhBaixavel(t *testing.T) {
	open := invoiceRecord("inv-1", domain.InvoiceStatusOpen, domain.StatusPending)
	service, _ := newTestService(t, []domain.LedgerRecord{open})

	err := service.Pay(context.Background(), domain.PayInvoiceRequest{RecordID: "inv-1", PaymentDate: testNow})

	// Nenhuma mutação é enviada ao backend: o mock falharia em qualquer
	// chamada não registrada.
	require.ErrorIs(t, err, ErrInvoiceNotPayable)
}

func TestPay_FaturaInexistente(t *testing.T) {
	service, _ := newTestService(t, nil)

	err := service.Pay(context.Background(), domain.PayInvoiceRequest{RecordID: "fantasma", PaymentDate: testNow})

	require.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestRevert_SomenteFaturaPaga(t *testing.T) {
	pending := invoiceRecord("inv-pendente", domain.InvoiceStatusClosed, domain.StatusPending)
	paid := invoiceRecord("inv-paga", domain.InvoiceStatusClosed, domain.StatusPaid)
	service, integrator := newTestService(t, []domain.LedgerRecord{pending, paid})

	err := service.Revert(context.Background(), domain.RevertInvoiceRequest{RecordID: "inv-pendente"})
	require.ErrorIs(t, err, ErrInvoiceNotPaid)

	req := domain.RevertInvoiceRequest{RecordID: "inv-paga"}
	integrator.EXPECT().RevertInvoice(gomock.Any(), req).Return(nil)

	// O estorno força a fatura de volta para fechada/pendente.
	reverted := invoiceRecord("inv-paga", domain.InvoiceStatusClosed, domain.StatusPending)
	expectRefresh(integrator, []domain.LedgerRecord{pending, reverted})

	require.NoError(t, service.Revert(context.Background(), req))
	assert.Len(t, service.Payables(), 2)
}
