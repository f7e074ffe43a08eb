package domain

// TurnoverPeriods são as janelas de giro aceitas, em dias.
var TurnoverPeriods = []int{30, 60, 90, 180, 365}

// KpiGoals é o agregado de configuração que parametriza todos os cálculos
// derivados. É tratado como um snapshot imutável por passada de agregação e
// só muda por um salvamento explícito no backend.
type KpiGoals struct {
	TaxRatePct         float64            `json:"taxRatePercent" validate:"gte=0,lte=100"`
	CardFeesPct        map[string]float64 `json:"cardFeesPercent" validate:"dive,gte=0,lte=100"`
	RiskMinDays        float64            `json:"riskMinDays" validate:"gte=0"`
	RiskMaxDays        float64            `json:"riskMaxDays" validate:"gtefield=RiskMinDays"`
	SafetyMaxDays      float64            `json:"safetyMaxDays" validate:"gtefield=RiskMaxDays"`
	PredictedAvgMargin float64            `json:"predictedAvgMargin" validate:"gte=0,lte=100"`
	NetProfitGoal      float64            `json:"netProfitGoal" validate:"gte=0"`
	TurnoverPeriod     int                `json:"turnoverPeriod" validate:"oneof=30 60 90 180 365"`
}

// MaxCardFeePct retorna a maior taxa de cartão cadastrada. É ela que entra no
// cálculo conservador da margem real.
func (g KpiGoals) MaxCardFeePct() float64 {
	max := 0.0
	for _, fee := range g.CardFeesPct {
		if fee > max {
			max = fee
		}
	}
	return max
}

// DefaultKpiGoals retorna as metas usadas enquanto o backend não fornece um
// snapshot salvo.
func DefaultKpiGoals() KpiGoals {
	return KpiGoals{
		TaxRatePct: 8,
		CardFeesPct: map[string]float64{
			AccountCreditMain: 4.5,
			AccountBankMain:   1.99,
		},
		RiskMinDays:        5,
		RiskMaxDays:        15,
		SafetyMaxDays:      30,
		PredictedAvgMargin: 35,
		NetProfitGoal:      5000,
		TurnoverPeriod:     90,
	}
}
