package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem é um item vendido. O custo unitário é congelado no momento da
// venda: é ele, e não o custo atual do produto, que entra no CMV.
type SaleItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	UnitCost  decimal.Decimal `json:"unitCost"`
}

// Sale é uma venda registrada no PDV ou importada do e-commerce. A receita é
// reconhecida na data da transação, independentemente da liquidação.
type Sale struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Total     decimal.Decimal `json:"total"`
	Items     []SaleItem      `json:"items"`
	Channel   string          `json:"channel,omitempty"`
}
