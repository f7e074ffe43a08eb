// Package reporting deriva as visões financeiras de uma competência a partir
// do snapshot vigente: fluxo de caixa realizado, resultado por competência e
// o painel combinado. Nenhuma etapa muta o snapshot.
package reporting

import (
	"sort"
	"time"

	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/snapshot"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/config"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/classifying"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/inventorying"
)

type Reporter interface {
	Statement(comp domain.Competency, view domain.View) []domain.EffectiveEntry
	CashFlow(comp domain.Competency) domain.CashFlowSummary
	Accrual(comp domain.Competency) domain.AccrualSummary
	Dashboard(comp domain.Competency) domain.DashboardReport
	AvailablePeriods() domain.AvailablePeriods
}

type Service struct {
	cfg       *config.Config
	store     *snapshot.Store
	estimator inventorying.Estimator
	now       func() time.Time
}

func NewService(cfg *config.Config, store *snapshot.Store, estimator inventorying.Estimator) Reporter {
	return &Service{
		cfg:       cfg,
		store:     store,
		estimator: estimator,
		now:       time.Now,
	}
}

// Statement retorna os lançamentos efetivos da competência na visão pedida:
// parcelas expandidas, linhas de cartão roteadas para a fatura e faturas
// abertas suprimidas conforme a visão.
func (s *Service) Statement(comp domain.Competency, view domain.View) []domain.EffectiveEntry {
	snap := s.store.Current()
	return classifying.Classify(snap.Records, comp, view, s.now())
}

func (s *Service) CashFlow(comp domain.Competency) domain.CashFlowSummary {
	snap := s.store.Current()
	entries := classifying.Classify(snap.Records, comp, domain.ViewCashFlow, s.now())
	return AggregateCashFlow(comp, entries)
}

func (s *Service) Accrual(comp domain.Competency) domain.AccrualSummary {
	snap := s.store.Current()
	entries := classifying.Classify(snap.Records, comp, domain.ViewCashFlow, s.now())
	return AggregateAccrual(comp, snap.Sales, entries, snap.Goals, s.now())
}

// Dashboard combina as visões da competência em uma única resposta, incluindo
// o retrato de estoque e os rankings derivados da mesma agregação por produto.
func (s *Service) Dashboard(comp domain.Competency) domain.DashboardReport {
	snap := s.store.Current()
	now := s.now()

	entries := classifying.Classify(snap.Records, comp, domain.ViewCashFlow, now)

	report := domain.DashboardReport{
		Competency:  comp.String(),
		CashFlow:    AggregateCashFlow(comp, entries),
		Accrual:     AggregateAccrual(comp, snap.Sales, entries, snap.Goals, now),
		GeneratedAt: now,
	}

	if s.estimator != nil {
		inventory := s.estimator.Estimate()
		rankings := s.estimator.Rankings(s.cfg.Reports.RankingSize)
		report.Inventory = &inventory
		report.Rankings = &rankings
	}

	return report
}

// AvailablePeriods lista as competências que contêm fatos financeiros,
// derivadas das datas de referência dos registros e suas parcelas.
func (s *Service) AvailablePeriods() domain.AvailablePeriods {
	snap := s.store.Current()

	seen := map[domain.Competency]bool{}
	for i := range snap.Records {
		r := &snap.Records[i]

		if len(r.Installments) > 0 {
			for _, inst := range r.Installments {
				if ref := installmentReference(inst); ref != nil {
					seen[domain.CompetencyOf(*ref)] = true
				}
			}
			continue
		}

		ref := r.Timestamp
		switch {
		case r.Status == domain.StatusPaid && r.PaymentDate != nil:
			ref = *r.PaymentDate
		case r.DueDate != nil:
			ref = *r.DueDate
		}
		seen[domain.CompetencyOf(ref)] = true
	}

	comps := make([]domain.Competency, 0, len(seen))
	for c := range seen {
		comps = append(comps, c)
	}
	sort.Slice(comps, func(i, j int) bool {
		return comps[i].Start().After(comps[j].Start())
	})

	periods := domain.AvailablePeriods{}
	years := map[string]bool{}
	months := map[string]bool{}

	for _, c := range comps {
		periods.Periods = append(periods.Periods, c.String())
		years[c.Start().Format("2006")] = true
		months[c.Start().Format("01")] = true
	}

	for y := range years {
		periods.Years = append(periods.Years, y)
	}
	for m := range months {
		periods.Months = append(periods.Months, m)
	}
	sort.Strings(periods.Years)
	sort.Strings(periods.Months)

	return periods
}

func installmentReference(inst domain.Installment) *time.Time {
	if inst.PaymentDate != nil {
		return inst.PaymentDate
	}
	return inst.DueDate
}
