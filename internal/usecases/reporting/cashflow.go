package reporting

import (
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/shopspring/decimal"
)

// AggregateCashFlow soma os lançamentos efetivos liquidados em entrada, saída
// e saldo. Lançamentos pendentes nunca afetam este agregado: a visão de caixa
// reflete somente movimento realizado. O saldo de abertura é sempre zero —
// não há transporte do saldo realizado de competências anteriores.
func AggregateCashFlow(comp domain.Competency, entries []domain.EffectiveEntry) domain.CashFlowSummary {
	inflow := decimal.Zero
	outflow := decimal.Zero

	for _, e := range entries {
		if !e.IsPaid() {
			continue
		}

		switch e.Type {
		case domain.EntryTypeIncome:
			inflow = inflow.Add(e.Amount)
		case domain.EntryTypeExpense:
			outflow = outflow.Add(e.Amount)
		}
	}

	return domain.CashFlowSummary{
		Competency: comp.String(),
		Inflow:     inflow,
		Outflow:    outflow,
		Balance:    inflow.Sub(outflow),
		Entries:    len(entries),
	}
}
