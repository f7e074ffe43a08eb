package reporting

import (
	"time"

	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AggregateAccrual apura o resultado por competência: receita e custo
// reconhecidos na data da transação, independentes da liquidação. Mudar o
// status de um lançamento de pendente para pago não altera receita nem CMV —
// só a visão de caixa. As duas visões divergem por construção e ambas são
// expostas ao usuário.
func AggregateAccrual(
	comp domain.Competency,
	sales []domain.Sale,
	entries []domain.EffectiveEntry,
	goals domain.KpiGoals,
	now time.Time,
) domain.AccrualSummary {
	revenue := decimal.Zero
	cogs := decimal.Zero

	for _, sale := range sales {
		if !comp.Contains(sale.Timestamp) {
			continue
		}

		revenue = revenue.Add(sale.Total)

		// CMV apenas do que foi efetivamente vendido na competência; estoque
		// comprado e não vendido não deprime o resultado do período.
		for _, item := range sale.Items {
			cogs = cogs.Add(item.UnitCost.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	serviceCost := decimal.Zero
	fixedCosts := decimal.Zero

	for _, e := range entries {
		if e.Type != domain.EntryTypeExpense || !e.IsPaid() {
			continue
		}

		switch {
		case e.Category == domain.CategoryService:
			serviceCost = serviceCost.Add(e.Amount)
		case domain.FixedCostCategories[e.Category]:
			fixedCosts = fixedCosts.Add(e.Amount)
		}
	}

	totalVariable := cogs.Add(serviceCost)

	contributionMarginPct := 0.0
	if revenue.IsPositive() {
		contributionMarginPct, _ = revenue.Sub(totalVariable).
			Div(revenue).Mul(hundred).Round(2).Float64()
	}

	netProfit := revenue.Sub(totalVariable).Sub(fixedCosts)

	breakEven := decimal.Zero
	predictedMarginRatio := goals.PredictedAvgMargin / 100
	if predictedMarginRatio > 0 {
		breakEven = fixedCosts.Div(decimal.NewFromFloat(predictedMarginRatio)).Round(2)
	}

	revenueGoal := breakEven.Add(decimal.NewFromFloat(goals.NetProfitGoal))

	progressPct := 0.0
	if revenueGoal.IsPositive() {
		progressPct, _ = revenue.Div(revenueGoal).Mul(hundred).Round(2).Float64()
	}

	forecast := decimal.Zero
	daysPassed := comp.DaysPassed(now)
	if daysPassed > 0 {
		forecast = revenue.
			Div(decimal.NewFromInt(int64(daysPassed))).
			Mul(decimal.NewFromInt(int64(comp.DaysInMonth()))).
			Round(2)
	}

	return domain.AccrualSummary{
		Competency:            comp.String(),
		Revenue:               revenue,
		COGS:                  cogs,
		ServiceCost:           serviceCost,
		TotalVariableCosts:    totalVariable,
		FixedCosts:            fixedCosts,
		ContributionMarginPct: contributionMarginPct,
		NetProfit:             netProfit,
		BreakEven:             breakEven,
		RevenueGoal:           revenueGoal,
		ProgressPct:           progressPct,
		Forecast:              forecast,
	}
}
