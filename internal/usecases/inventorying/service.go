// Package inventorying estima giro, cobertura e margem do estoque a partir do
// snapshot de produtos e vendas, e resolve a checagem de estoque livre usada
// pelo PDV antes de concluir uma venda.
package inventorying

import (
	"time"

	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/snapshot"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/pkg/errors"
)

// ErrInsufficientStock rejeita pedidos acima do estoque físico. Diferente do
// conflito de reserva, isto não é ponto de decisão: é recusa simples.
var ErrInsufficientStock = errors.New("quantidade solicitada excede o estoque físico")

// ErrProductNotFound indica produto ausente do snapshot.
var ErrProductNotFound = errors.New("produto não encontrado")

type Estimator interface {
	Estimate() domain.InventoryReport
	Rankings(size int) domain.ProductRankings
	CheckStockConflict(productID string, requested int) (domain.StockConflict, error)
}

type Service struct {
	store *snapshot.Store
	now   func() time.Time
}

func NewService(store *snapshot.Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// CheckStockConflict calcula o estoque livre do produto: físico menos as
// quantidades reservadas por pedidos online pendentes. Quando a quantidade
// pedida cabe no físico mas não no livre, o resultado é um conflito com as
// duas resoluções possíveis — cancelar os pedidos conflitantes ou aceitar um
// descasamento temporário entre estoque físico e prometido.
func (s *Service) CheckStockConflict(productID string, requested int) (domain.StockConflict, error) {
	snap := s.store.Current()

	var product *domain.Product
	for i := range snap.Products {
		if snap.Products[i].ID == productID {
			product = &snap.Products[i]
			break
		}
	}
	if product == nil {
		return domain.StockConflict{}, ErrProductNotFound
	}

	reserved := 0
	conflicting := make([]domain.EcommerceOrder, 0)
	for _, order := range snap.Orders {
		if !order.Reserves() {
			continue
		}
		for _, item := range order.Items {
			if item.ProductID == productID {
				reserved += item.Quantity
				conflicting = append(conflicting, order)
			}
		}
	}

	free := product.Stock - reserved

	result := domain.StockConflict{
		ProductID:        productID,
		Requested:        requested,
		PhysicalStock:    product.Stock,
		ReservedQuantity: reserved,
		FreeStock:        free,
	}

	if requested > product.Stock {
		return result, ErrInsufficientStock
	}

	if requested > free {
		result.Conflict = true
		result.ConflictingOrders = conflicting
		result.Resolutions = []string{
			domain.ResolutionCancelOrders,
			domain.ResolutionAcceptNegativeFloat,
		}
	}

	return result, nil
}
