package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
)

func testGoals() domain.KpiGoals {
	return domain.KpiGoals{
		PredictedAvgMargin: 40,
		NetProfitGoal:      2000,
		TurnoverPeriod:     90,
	}
}

func marchSales() []domain.Sale {
	return []domain.Sale{
		{
			ID:        "sale-1",
			Timestamp: time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC),
			Total:     decimal.NewFromInt(1000),
			Items: []domain.SaleItem{
				{ProductID: "p1", Quantity: 2, UnitPrice: decimal.NewFromInt(500), UnitCost: decimal.NewFromInt(200)},
			},
		},
		{
			// Venda de outra competência: não entra no resultado de março.
			ID:        "sale-2",
			Timestamp: time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC),
			Total:     decimal.NewFromInt(5000),
			Items: []domain.SaleItem{
				{ProductID: "p1", Quantity: 5, UnitPrice: decimal.NewFromInt(1000), UnitCost: decimal.NewFromInt(400)},
			},
		},
	}
}

func TestAggregateAccrual_ReceitaECMVNaDataDaTransacao(t *testing.T) {
	comp := domain.Competency{Year: 2025, Month: time.March}
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	summary := AggregateAccrual(comp, marchSales(), nil, testGoals(), now)

	assert.True(t, summary.Revenue.Equal(decimal.NewFromInt(1000)), "receita: %s", summary.Revenue)
	// CMV só do que foi vendido: 2 × 200.
	assert.True(t, summary.COGS.Equal(decimal.NewFromInt(400)), "cmv: %s", summary.COGS)
	assert.True(t, summary.NetProfit.Equal(decimal.NewFromInt(600)), "lucro: %s", summary.NetProfit)
}

func TestAggregateAccrual_IndependeDaLiquidacao(t *testing.T) {
	// Mudar o status de liquidação de um lançamento não muda receita nem CMV:
	// as visões de caixa e de competência divergem por construção.
	comp := domain.Competency{Year: 2025, Month: time.March}
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	pendente := []domain.EffectiveEntry{
		{Amount: decimal.NewFromInt(500), Status: domain.StatusPending, Type: domain.EntryTypeIncome},
	}
	pago := []domain.EffectiveEntry{
		{Amount: decimal.NewFromInt(500), Status: domain.StatusPaid, Type: domain.EntryTypeIncome},
	}

	before := AggregateAccrual(comp, marchSales(), pendente, testGoals(), now)
	after := AggregateAccrual(comp, marchSales(), pago, testGoals(), now)

	assert.True(t, before.Revenue.Equal(after.Revenue))
	assert.True(t, before.COGS.Equal(after.COGS))
}

func TestAggregateAccrual_CustosFixosEServicos(t *testing.T) {
	comp := domain.Competency{Year: 2025, Month: time.March}
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	entries := []domain.EffectiveEntry{
		{Amount: decimal.NewFromInt(100), Status: domain.StatusPaid, Type: domain.EntryTypeExpense, Category: domain.CategoryService},
		{Amount: decimal.NewFromInt(800), Status: domain.StatusPaid, Type: domain.EntryTypeExpense, Category: domain.CategoryRent},
		{Amount: decimal.NewFromInt(200), Status: domain.StatusPaid, Type: domain.EntryTypeExpense, Category: domain.CategorySalary},
		// Despesa pendente não entra na alocação de custos.
		{Amount: decimal.NewFromInt(700), Status: domain.StatusPending, Type: domain.EntryTypeExpense, Category: domain.CategoryRent},
	}

	summary := AggregateAccrual(comp, marchSales(), entries, testGoals(), now)

	assert.True(t, summary.ServiceCost.Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.FixedCosts.Equal(decimal.NewFromInt(1000)))
	// Variáveis = CMV 400 + serviços 100.
	assert.True(t, summary.TotalVariableCosts.Equal(decimal.NewFromInt(500)))
	// Margem de contribuição = (1000 - 500) / 1000.
	assert.InDelta(t, 50.0, summary.ContributionMarginPct, 0.001)
	// Lucro líquido = 1000 - 500 - 1000.
	assert.True(t, summary.NetProfit.Equal(decimal.NewFromInt(-500)))
}

func TestAggregateAccrual_PontoDeEquilibrioEMeta(t *testing.T) {
	comp := domain.Competency{Year: 2025, Month: time.March}
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	entries := []domain.EffectiveEntry{
		{Amount: decimal.NewFromInt(1000), Status: domain.StatusPaid, Type: domain.EntryTypeExpense, Category: domain.CategoryRent},
	}

	summary := AggregateAccrual(comp, marchSales(), entries, testGoals(), now)

	// Ponto de equilíbrio = custos fixos / margem prevista (40%).
	assert.True(t, summary.BreakEven.Equal(decimal.NewFromInt(2500)), "equilíbrio: %s", summary.BreakEven)
	// Meta de faturamento = equilíbrio + meta de lucro.
	assert.True(t, summary.RevenueGoal.Equal(decimal.NewFromInt(4500)), "meta: %s", summary.RevenueGoal)
}

func TestAggregateAccrual_PrevisaoDeFechamento(t *testing.T) {
	comp := domain.Competency{Year: 2025, Month: time.March}

	// No dia 10 de março, com 1000 de receita: ritmo de 100/dia × 31 dias.
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	summary := AggregateAccrual(comp, marchSales(), nil, testGoals(), now)
	assert.True(t, summary.Forecast.Equal(decimal.NewFromInt(3100)), "previsão: %s", summary.Forecast)

	// Competência encerrada: a previsão converge para a receita realizada.
	closed := AggregateAccrual(comp, marchSales(), nil, testGoals(), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, closed.Forecast.Equal(decimal.NewFromInt(1000)), "previsão: %s", closed.Forecast)
}

func TestAggregateAccrual_CompetenciaFuturaSemPrevisao(t *testing.T) {
	comp := domain.Competency{Year: 2025, Month: time.July}
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	summary := AggregateAccrual(comp, nil, nil, testGoals(), now)
	assert.True(t, summary.Forecast.IsZero())
}
