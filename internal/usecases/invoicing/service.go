// Package invoicing acompanha o ciclo de vida das faturas de cartão de
// crédito como uma visão derivada sobre os registros marcados isInvoice.
// Toda transição é uma mutação no backend seguida de re-busca completa do
// snapshot: não há fusão otimista de estado local.
package invoicing

import (
	"context"
	"time"

	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/integrator/storeapi"
	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/snapshot"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/classifying"
	"github.com/pkg/errors"
)

var (
	// ErrInvoiceNotFound indica fatura ausente do snapshot.
	ErrInvoiceNotFound = errors.New("fatura não encontrada")
	// ErrInvoiceNotPayable: só uma fatura fechada e pendente pode ser baixada.
	ErrInvoiceNotPayable = errors.New("a fatura não está fechada aguardando pagamento")
	// ErrInvoiceNotPaid: só uma fatura paga pode ser estornada.
	ErrInvoiceNotPaid = errors.New("a fatura não está paga")
)

type InvoiceTracker interface {
	Payables() []domain.InvoiceView
	History(comp domain.Competency) []domain.InvoiceView
	Items(invoiceID string) []domain.LedgerRecord
	Pay(ctx context.Context, req domain.PayInvoiceRequest) error
	Revert(ctx context.Context, req domain.RevertInvoiceRequest) error
}

type Service struct {
	store      *snapshot.Store
	integrator storeapi.StoreIntegrator
	now        func() time.Time
}

func NewService(store *snapshot.Store, integrator storeapi.StoreIntegrator) InvoiceTracker {
	return &Service{
		store:      store,
		integrator: integrator,
		now:        time.Now,
	}
}

// Payables lista as faturas fechadas aguardando pagamento, com indicação de
// atraso. Faturas abertas (acumulando) não aparecem em nenhuma lista de
// liquidação.
func (s *Service) Payables() []domain.InvoiceView {
	snap := s.store.Current()
	today := s.now()

	payables := make([]domain.InvoiceView, 0)
	for i := range snap.Records {
		r := snap.Records[i]
		if !r.IsInvoice {
			continue
		}

		view := domain.NewInvoiceView(r, today)
		if view.State == domain.InvoiceStateClosedPending {
			payables = append(payables, view)
		}
	}

	return payables
}

// History lista as faturas pagas cuja data de referência cai na competência.
func (s *Service) History(comp domain.Competency) []domain.InvoiceView {
	snap := s.store.Current()
	today := s.now()

	entries := classifying.Classify(snap.Records, comp, domain.ViewInvoiceLifecycle, today)

	history := make([]domain.InvoiceView, 0)
	for _, e := range entries {
		if e.Source == nil || e.Source.Status != domain.StatusPaid {
			continue
		}
		history = append(history, domain.NewInvoiceView(*e.Source, today))
	}

	return history
}

// Items retorna as linhas individuais de compra no cartão vinculadas à
// fatura — a visão para onde a classificação de fluxo de caixa roteia esses
// registros.
func (s *Service) Items(invoiceID string) []domain.LedgerRecord {
	snap := s.store.Current()

	items := make([]domain.LedgerRecord, 0)
	for i := range snap.Records {
		r := snap.Records[i]
		if !r.IsCreditCardLine() {
			continue
		}
		if r.InvoiceID != nil && *r.InvoiceID == invoiceID {
			items = append(items, r)
		}
	}

	return items
}

// Pay baixa uma fatura fechada e re-busca o snapshot completo.
func (s *Service) Pay(ctx context.Context, req domain.PayInvoiceRequest) error {
	record, err := s.findInvoice(req.RecordID)
	if err != nil {
		return err
	}

	if domain.InvoiceStateOf(*record) != domain.InvoiceStateClosedPending {
		return ErrInvoiceNotPayable
	}

	if err := s.integrator.PayInvoice(ctx, req); err != nil {
		return err
	}

	return s.store.Refresh(ctx)
}

// Revert desfaz o pagamento de uma fatura. A transição é exclusivamente
// Paga → Fechada/Pendente: o backend força invoiceStatus=Closed e limpa a
// data de pagamento, para que a fatura nunca reabra como acumulando.
func (s *Service) Revert(ctx context.Context, req domain.RevertInvoiceRequest) error {
	record, err := s.findInvoice(req.RecordID)
	if err != nil {
		return err
	}

	if domain.InvoiceStateOf(*record) != domain.InvoiceStatePaid {
		return ErrInvoiceNotPaid
	}

	if err := s.integrator.RevertInvoice(ctx, req); err != nil {
		return err
	}

	return s.store.Refresh(ctx)
}

func (s *Service) findInvoice(recordID string) (*domain.LedgerRecord, error) {
	snap := s.store.Current()
	for i := range snap.Records {
		if snap.Records[i].ID == recordID && snap.Records[i].IsInvoice {
			return &snap.Records[i], nil
		}
	}
	return nil, ErrInvoiceNotFound
}
