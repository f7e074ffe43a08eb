package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowSummary é a visão de caixa: somente movimentos liquidados contam.
// O saldo de abertura é sempre zero por competência; não há transporte de
// saldo de períodos anteriores.
type CashFlowSummary struct {
	Competency string          `json:"competency"`
	Inflow     decimal.Decimal `json:"inflow"`
	Outflow    decimal.Decimal `json:"outflow"`
	Balance    decimal.Decimal `json:"balance"`
	Entries    int             `json:"entries"`
}

// AccrualSummary é a visão por competência: receita e custo reconhecidos na
// data da transação, independentes da liquidação. As duas visões podem
// divergir e ambas são expostas simultaneamente.
type AccrualSummary struct {
	Competency            string          `json:"competency"`
	Revenue               decimal.Decimal `json:"revenue"`
	COGS                  decimal.Decimal `json:"cogs"`
	ServiceCost           decimal.Decimal `json:"serviceCost"`
	TotalVariableCosts    decimal.Decimal `json:"totalVariableCosts"`
	FixedCosts            decimal.Decimal `json:"fixedCosts"`
	ContributionMarginPct float64         `json:"contributionMarginPercent"`
	NetProfit             decimal.Decimal `json:"netProfit"`
	BreakEven             decimal.Decimal `json:"breakEven"`
	RevenueGoal           decimal.Decimal `json:"revenueGoal"`
	ProgressPct           float64         `json:"progressPercent"`
	Forecast              decimal.Decimal `json:"forecast"`
}

// HistogramBucket é uma faixa do histograma de níveis de estoque.
type HistogramBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// InventoryReport é a saída do estimador de giro e margem.
type InventoryReport struct {
	PeriodDays          int                 `json:"periodDays"`
	Products            []ProductMetrics    `json:"products"`
	StatusCount         map[StockStatus]int `json:"statusCount"`
	StockHistogram      []HistogramBucket   `json:"stockHistogram"`
	ActiveAvgMarginPct  float64             `json:"activeAvgMarginPercent"`
	OverallAvgMarginPct float64             `json:"overallAvgMarginPercent"`
}

// RankingEntry é uma posição nas listas de mais vendidos / giro mais lento.
type RankingEntry struct {
	Position     int             `json:"position"`
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	SoldQuantity int             `json:"soldQuantity"`
	Revenue      decimal.Decimal `json:"revenue"`
	DaysOfSupply float64         `json:"daysOfSupply"`
}

// ProductRankings reúne as duas listas derivadas da mesma agregação por produto.
type ProductRankings struct {
	BestSellers     []RankingEntry `json:"bestSellers"`
	SlowestTurnover []RankingEntry `json:"slowestTurnover"`
}

// DashboardReport combina as visões de uma competência em uma única resposta.
type DashboardReport struct {
	Competency  string           `json:"competency"`
	CashFlow    CashFlowSummary  `json:"cashFlow"`
	Accrual     AccrualSummary   `json:"accrual"`
	Inventory   *InventoryReport `json:"inventory,omitempty"`
	Rankings    *ProductRankings `json:"rankings,omitempty"`
	GeneratedAt time.Time        `json:"generatedAt"`
}

// AvailablePeriods lista as competências que contêm fatos financeiros.
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Formato mm-yyyy
	Years   []string `json:"years"`
	Months  []string `json:"months"`
}
