package inventorying

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
)

func freeStockFixture(t *testing.T, orders []domain.EcommerceOrder) *Service {
	t.Helper()

	products := []domain.Product{
		{ID: "p1", Name: "Produto", Price: decimal.NewFromInt(100), Cost: decimal.NewFromInt(40), Stock: 5},
	}
	return newTestService(t, products, nil, orders, domain.DefaultKpiGoals())
}

func pendingOrder(id string, quantity int) domain.EcommerceOrder {
	return domain.EcommerceOrder{
		ID:     id,
		Status: domain.OrderStatusPending,
		Items: []domain.OrderItem{
			{ProductID: "p1", Quantity: quantity, UnitPrice: decimal.NewFromInt(100)},
		},
	}
}

func TestCheckStockConflict_DentroDoEstoqueLivre(t *testing.T) {
	service := freeStockFixture(t, []domain.EcommerceOrder{pendingOrder("ord-1", 3)})

	result, err := service.CheckStockConflict("p1", 2)

	require.NoError(t, err)
	assert.False(t, result.Conflict)
	assert.Equal(t, 5, result.PhysicalStock)
	assert.Equal(t, 3, result.ReservedQuantity)
	assert.Equal(t, 2, result.FreeStock)
	assert.Empty(t, result.Resolutions)
}

func TestCheckStockConflict_CabeNoFisicoMasNaoNoLivre(t *testing.T) {
	service := freeStockFixture(t, []domain.EcommerceOrder{pendingOrder("ord-1", 3)})

	result, err := service.CheckStockConflict("p1", 4)

	// Conflito não é erro: é ponto de decisão, com os pedidos conflitantes e
	// as duas resoluções possíveis.
	require.NoError(t, err)
	assert.True(t, result.Conflict)
	require.Len(t, result.ConflictingOrders, 1)
	assert.Equal(t, "ord-1", result.ConflictingOrders[0].ID)
	assert.Equal(t, []string{
		domain.ResolutionCancelOrders,
		domain.ResolutionAcceptNegativeFloat,
	}, result.Resolutions)
}

func TestCheckStockConflict_AcimaDoFisicoEhRecusa(t *testing.T) {
	service := freeStockFixture(t, []domain.EcommerceOrder{pendingOrder("ord-1", 3)})

	result, err := service.CheckStockConflict("p1", 6)

	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 5, result.PhysicalStock)
	assert.False(t, result.Conflict)
}

func TestCheckStockConflict_SomentePedidosPendentesReservam(t *testing.T) {
	sent := pendingOrder("ord-enviado", 3)
	sent.Status = domain.OrderStatusSent
	cancelled := pendingOrder("ord-cancelado", 2)
	cancelled.Status = domain.OrderStatusCancelled

	service := freeStockFixture(t, []domain.EcommerceOrder{sent, cancelled})

	result, err := service.CheckStockConflict("p1", 5)

	require.NoError(t, err)
	assert.Equal(t, 0, result.ReservedQuantity)
	assert.Equal(t, 5, result.FreeStock)
	assert.False(t, result.Conflict)
}

func TestCheckStockConflict_ProdutoInexistente(t *testing.T) {
	service := freeStockFixture(t, nil)

	_, err := service.CheckStockConflict("fantasma", 1)

	require.ErrorIs(t, err, ErrProductNotFound)
}
