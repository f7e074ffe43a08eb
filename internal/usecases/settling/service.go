// Package settling executa a baixa de lançamentos simples e de parcelas.
// Cada variante de baixa carrega só os campos que lhe dizem respeito e é
// validada antes de qualquer requisição ao backend; depois da mutação o
// snapshot inteiro é re-buscado.
package settling

import (
	"context"

	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/integrator/storeapi"
	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/snapshot"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/pkg/errors"
)

var (
	// ErrRecordNotFound indica lançamento ausente do snapshot.
	ErrRecordNotFound = errors.New("lançamento não encontrado")
	// ErrAlreadyPaid rejeita a baixa de algo já liquidado.
	ErrAlreadyPaid = errors.New("o lançamento já está pago")
	// ErrInstallmentNotFound indica número de parcela inexistente.
	ErrInstallmentNotFound = errors.New("parcela não encontrada")
)

type Settler interface {
	PayTransaction(ctx context.Context, req domain.PayTransactionRequest) error
	PayInstallment(ctx context.Context, req domain.PayInstallmentRequest) error
}

type Service struct {
	store      *snapshot.Store
	integrator storeapi.StoreIntegrator
}

func NewService(store *snapshot.Store, integrator storeapi.StoreIntegrator) Settler {
	return &Service{
		store:      store,
		integrator: integrator,
	}
}

// PayTransaction baixa um lançamento simples e re-busca o snapshot.
func (s *Service) PayTransaction(ctx context.Context, req domain.PayTransactionRequest) error {
	record, err := s.findRecord(req.RecordID)
	if err != nil {
		return err
	}

	if record.Status == domain.StatusPaid {
		return ErrAlreadyPaid
	}

	if err := s.integrator.PayTransaction(ctx, req); err != nil {
		return err
	}

	return s.store.Refresh(ctx)
}

// PayInstallment baixa uma parcela endereçada pelo número e re-busca o
// snapshot. As demais parcelas do lançamento não são tocadas.
func (s *Service) PayInstallment(ctx context.Context, req domain.PayInstallmentRequest) error {
	record, err := s.findRecord(req.RecordID)
	if err != nil {
		return err
	}

	found := false
	for _, inst := range record.Installments {
		if inst.Number != req.InstallmentNumber {
			continue
		}
		if inst.Status == domain.StatusPaid {
			return ErrAlreadyPaid
		}
		found = true
		break
	}
	if !found {
		return ErrInstallmentNotFound
	}

	if err := s.integrator.PayInstallment(ctx, req); err != nil {
		return err
	}

	return s.store.Refresh(ctx)
}

func (s *Service) findRecord(recordID string) (*domain.LedgerRecord, error) {
	snap := s.store.Current()
	for i := range snap.Records {
		if snap.Records[i].ID == recordID {
			return &snap.Records[i], nil
		}
	}
	return nil, ErrRecordNotFound
}
