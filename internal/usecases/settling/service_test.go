package settling

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/integrator/storeapi/mocks"
	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/snapshot"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
)

var paymentDate = time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

func expectRefresh(integrator *mocks.MockStoreIntegrator, records []domain.LedgerRecord) {
	integrator.EXPECT().FetchLedger(gomock.Any()).Return(records, nil)
	integrator.EXPECT().FetchSales(gomock.Any()).Return(nil, nil)
	integrator.EXPECT().FetchProducts(gomock.Any()).Return(nil, nil)
	integrator.EXPECT().FetchOrders(gomock.Any()).Return(nil, nil)
	integrator.EXPECT().FetchGoals(gomock.Any()).Return(domain.DefaultKpiGoals(), nil)
}

func newTestService(t *testing.T, records []domain.LedgerRecord) (Settler, *mocks.MockStoreIntegrator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockStoreIntegrator(ctrl)
	expectRefresh(integrator, records)

	store := snapshot.NewStore(integrator)
	require.NoError(t, store.Refresh(context.Background()))

	return NewService(store, integrator), integrator
}

func TestPayTransaction_BaixaERebuscaOSnapshot(t *testing.T) {
	pending := domain.LedgerRecord{
		ID:     "rec-1",
		Amount: decimal.NewFromInt(100),
		Type:   domain.EntryTypeExpense,
		Status: domain.StatusPending,
	}
	service, integrator := newTestService(t, []domain.LedgerRecord{pending})

	req := domain.PayTransactionRequest{
		RecordID:    "rec-1",
		PaymentDate: paymentDate,
		AccountID:   domain.AccountBankMain,
	}
	integrator.EXPECT().PayTransaction(gomock.Any(), req).Return(nil)

	paid := pending
	paid.Status = domain.StatusPaid
	expectRefresh(integrator, []domain.LedgerRecord{paid})

	require.NoError(t, service.PayTransaction(context.Background(), req))
}

func TestPayTransaction_JaPago(t *testing.T) {
	paid := domain.LedgerRecord{ID: "rec-1", Status: domain.StatusPaid}
	service, _ := newTestService(t, []domain.LedgerRecord{paid})

	err := service.PayTransaction(context.Background(), domain.PayTransactionRequest{
		RecordID:    "rec-1",
		PaymentDate: paymentDate,
		AccountID:   domain.AccountCashBox,
	})

	require.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestPayTransaction_LancamentoInexistente(t *testing.T) {
	service, _ := newTestService(t, nil)

	err := service.PayTransaction(context.Background(), domain.PayTransactionRequest{
		RecordID:    "fantasma",
		PaymentDate: paymentDate,
		AccountID:   domain.AccountCashBox,
	})

	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestPayInstallment_EnderecaPeloNumero(t *testing.T) {
	record := domain.LedgerRecord{
		ID:     "rec-1",
		Amount: decimal.NewFromInt(300),
		Type:   domain.EntryTypeExpense,
		Status: domain.StatusPending,
		Installments: []domain.Installment{
			{Number: 1, Amount: decimal.NewFromInt(100), Status: domain.StatusPaid},
			{Number: 2, Amount: decimal.NewFromInt(100), Status: domain.StatusPending},
			{Number: 3, Amount: decimal.NewFromInt(100), Status: domain.StatusPending},
		},
	}

	testCases := []struct {
		name        string
		number      int
		expectedErr error
	}{
		{name: "parcela pendente é baixável", number: 2},
		{name: "parcela já paga é recusada", number: 1, expectedErr: ErrAlreadyPaid},
		{name: "número inexistente", number: 9, expectedErr: ErrInstallmentNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, integrator := newTestService(t, []domain.LedgerRecord{record})

			req := domain.PayInstallmentRequest{
				RecordID:          "rec-1",
				InstallmentNumber: tc.number,
				PaymentDate:       paymentDate,
				AccountID:         domain.AccountBankMain,
			}
			if tc.expectedErr == nil {
				integrator.EXPECT().PayInstallment(gomock.Any(), req).Return(nil)
				expectRefresh(integrator, []domain.LedgerRecord{record})
			}

			err := service.PayInstallment(context.Background(), req)

			if tc.expectedErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.expectedErr)
		})
	}
}
