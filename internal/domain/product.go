package domain

import "github.com/shopspring/decimal"

// StockStatus é a classificação derivada de um produto em relação às metas
// de cobertura de estoque.
type StockStatus string

const (
	StockStatusStockout StockStatus = "stockout"
	StockStatusAtRisk   StockStatus = "at-risk"
	StockStatusSafe     StockStatus = "safe"
	StockStatusExcess   StockStatus = "excess"
)

// Product é a entidade de estoque retornada pelo backend. Os campos derivados
// (status, cobertura, giro, margem) nunca são persistidos: são recalculados a
// cada passada de agregação a partir das metas vigentes.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost"`
	Stock    int             `json:"stock"`
}

// ProductMetrics agrupa os indicadores derivados de um produto para a janela
// de giro selecionada.
type ProductMetrics struct {
	Product       Product         `json:"product"`
	SoldQuantity  int             `json:"soldQuantity"`
	Revenue       decimal.Decimal `json:"revenue"`
	DailyRate     float64         `json:"dailyRate"`
	DaysOfSupply  float64         `json:"daysOfSupply"`
	TurnoverRatio float64         `json:"turnoverRatio"`
	RealMarginPct float64         `json:"realMarginPercent"`
	Status        StockStatus     `json:"status"`
}
