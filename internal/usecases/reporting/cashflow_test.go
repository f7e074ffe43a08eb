package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
)

func TestAggregateCashFlow_SomentePagosContam(t *testing.T) {
	comp := domain.Competency{Year: 2025, Month: time.March}

	entries := []domain.EffectiveEntry{
		{Amount: decimal.NewFromInt(1000), Status: domain.StatusPaid, Type: domain.EntryTypeIncome},
		{Amount: decimal.NewFromInt(300), Status: domain.StatusPaid, Type: domain.EntryTypeExpense},
		// Pendentes aparecem na lista, mas nunca entram nos totais.
		{Amount: decimal.NewFromInt(9999), Status: domain.StatusPending, Type: domain.EntryTypeIncome},
		{Amount: decimal.NewFromInt(9999), Status: domain.StatusPending, Type: domain.EntryTypeExpense},
	}

	summary := AggregateCashFlow(comp, entries)

	assert.True(t, summary.Inflow.Equal(decimal.NewFromInt(1000)), "entrada: %s", summary.Inflow)
	assert.True(t, summary.Outflow.Equal(decimal.NewFromInt(300)), "saída: %s", summary.Outflow)
	assert.True(t, summary.Balance.Equal(decimal.NewFromInt(700)), "saldo: %s", summary.Balance)
	assert.Equal(t, 4, summary.Entries)
	assert.Equal(t, "03-2025", summary.Competency)
}

func TestAggregateCashFlow_CompetenciaSemMovimentoComecaDoZero(t *testing.T) {
	comp := domain.Competency{Year: 2025, Month: time.April}

	summary := AggregateCashFlow(comp, nil)

	// Não há saldo de abertura: mês sem movimento fecha zerado mesmo que o
	// mês anterior tenha fechado positivo.
	assert.True(t, summary.Inflow.IsZero())
	assert.True(t, summary.Outflow.IsZero())
	assert.True(t, summary.Balance.IsZero())
	assert.Equal(t, 0, summary.Entries)
}
