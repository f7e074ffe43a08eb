package domain

// StockConflict é o resultado da checagem de estoque livre antes de uma venda
// no PDV. Conflito não é erro: é um ponto de decisão do usuário quando a
// quantidade pedida cabe no estoque físico mas não no estoque livre.
type StockConflict struct {
	ProductID         string           `json:"productId"`
	Requested         int              `json:"requested"`
	PhysicalStock     int              `json:"physicalStock"`
	ReservedQuantity  int              `json:"reservedQuantity"`
	FreeStock         int              `json:"freeStock"`
	Conflict          bool             `json:"conflict"`
	ConflictingOrders []EcommerceOrder `json:"conflictingOrders,omitempty"`
	Resolutions       []string         `json:"resolutions,omitempty"`
}

// Resoluções possíveis de um conflito de reserva.
const (
	ResolutionCancelOrders        = "cancel-conflicting-orders"
	ResolutionAcceptNegativeFloat = "accept-negative-float"
)
