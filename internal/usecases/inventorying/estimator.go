package inventorying

import (
	"math"
	"sort"
	"time"

	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/snapshot"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/FelipeSouzaG/smart-store-reports-api/pkg/utils"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Faixas do histograma de níveis de estoque.
var stockBuckets = []struct {
	label string
	max   int
}{
	{"0", 0},
	{"1-5", 5},
	{"6-20", 20},
	{"21-50", 50},
	{"51+", math.MaxInt},
}

// Estimate recalcula os indicadores derivados de todos os produtos para a
// janela de giro vigente. Nada aqui é persistido: cada passada parte das
// metas e do snapshot atuais.
func (s *Service) Estimate() domain.InventoryReport {
	snap := s.store.Current()
	metrics := buildMetrics(snap, s.now())

	report := domain.InventoryReport{
		PeriodDays:  snap.Goals.TurnoverPeriod,
		Products:    metrics,
		StatusCount: map[domain.StockStatus]int{},
	}

	for _, bucket := range stockBuckets {
		report.StockHistogram = append(report.StockHistogram, domain.HistogramBucket{Label: bucket.label})
	}

	activeSum, activeCount := 0.0, 0
	overallSum := 0.0

	for _, m := range metrics {
		report.StatusCount[m.Status]++

		for i, bucket := range stockBuckets {
			if m.Product.Stock <= bucket.max {
				report.StockHistogram[i].Count++
				break
			}
		}

		overallSum += m.RealMarginPct
		if m.Status != domain.StockStatusExcess {
			activeSum += m.RealMarginPct
			activeCount++
		}
	}

	// Duas médias de margem, nunca colapsadas em um número só: a margem do
	// que a loja de fato vende e a margem de tudo que ela estoca respondem
	// perguntas diferentes.
	if activeCount > 0 {
		report.ActiveAvgMarginPct = utils.RoundWithTwoDecimalPlace(activeSum / float64(activeCount))
	}
	if len(metrics) > 0 {
		report.OverallAvgMarginPct = utils.RoundWithTwoDecimalPlace(overallSum / float64(len(metrics)))
	}

	return report
}

// Rankings deriva mais vendidos e giro mais lento da mesma agregação por
// produto usada pelo estimador.
func (s *Service) Rankings(size int) domain.ProductRankings {
	snap := s.store.Current()
	metrics := buildMetrics(snap, s.now())

	if size <= 0 {
		size = 5
	}

	bySales := make([]domain.ProductMetrics, len(metrics))
	copy(bySales, metrics)
	sort.SliceStable(bySales, func(i, j int) bool {
		if bySales[i].SoldQuantity != bySales[j].SoldQuantity {
			return bySales[i].SoldQuantity > bySales[j].SoldQuantity
		}
		return bySales[i].Revenue.GreaterThan(bySales[j].Revenue)
	})

	byTurnover := make([]domain.ProductMetrics, len(metrics))
	copy(byTurnover, metrics)
	sort.SliceStable(byTurnover, func(i, j int) bool {
		if byTurnover[i].TurnoverRatio != byTurnover[j].TurnoverRatio {
			return byTurnover[i].TurnoverRatio < byTurnover[j].TurnoverRatio
		}
		return byTurnover[i].DaysOfSupply > byTurnover[j].DaysOfSupply
	})

	rankings := domain.ProductRankings{}
	for i, m := range bySales {
		if i >= size {
			break
		}
		rankings.BestSellers = append(rankings.BestSellers, rankingEntry(i, m))
	}
	for i, m := range byTurnover {
		if i >= size {
			break
		}
		rankings.SlowestTurnover = append(rankings.SlowestTurnover, rankingEntry(i, m))
	}

	return rankings
}

func rankingEntry(position int, m domain.ProductMetrics) domain.RankingEntry {
	return domain.RankingEntry{
		Position:     position + 1,
		ProductID:    m.Product.ID,
		ProductName:  m.Product.Name,
		SoldQuantity: m.SoldQuantity,
		Revenue:      m.Revenue,
		DaysOfSupply: m.DaysOfSupply,
	}
}

// buildMetrics agrega as vendas da janela de giro por produto e deriva os
// indicadores de cada um.
func buildMetrics(snap snapshot.Snapshot, now time.Time) []domain.ProductMetrics {
	periodDays := snap.Goals.TurnoverPeriod
	if periodDays <= 0 {
		periodDays = 90
	}
	windowStart := now.AddDate(0, 0, -periodDays)

	type productSales struct {
		quantity int
		revenue  decimal.Decimal
	}
	sold := map[string]*productSales{}

	for _, sale := range snap.Sales {
		if sale.Timestamp.Before(windowStart) || sale.Timestamp.After(now) {
			continue
		}
		for _, item := range sale.Items {
			agg, ok := sold[item.ProductID]
			if !ok {
				agg = &productSales{revenue: decimal.Zero}
				sold[item.ProductID] = agg
			}
			agg.quantity += item.Quantity
			agg.revenue = agg.revenue.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	metrics := make([]domain.ProductMetrics, 0, len(snap.Products))
	for _, p := range snap.Products {
		soldQty := 0
		revenue := decimal.Zero
		if agg, ok := sold[p.ID]; ok {
			soldQty = agg.quantity
			revenue = agg.revenue
		}

		dailyRate := float64(soldQty) / float64(periodDays)

		daysOfSupply := 0.0
		switch {
		case dailyRate > 0:
			daysOfSupply = float64(p.Stock) / dailyRate
		case p.Stock > 0:
			daysOfSupply = math.Inf(1)
		}

		turnoverRatio := 0.0
		switch {
		case p.Stock > 0:
			turnoverRatio = float64(soldQty) / float64(p.Stock)
		case soldQty > 0:
			turnoverRatio = math.Inf(1)
		}

		metrics = append(metrics, domain.ProductMetrics{
			Product:       p,
			SoldQuantity:  soldQty,
			Revenue:       revenue,
			DailyRate:     dailyRate,
			DaysOfSupply:  daysOfSupply,
			TurnoverRatio: turnoverRatio,
			RealMarginPct: realMarginPct(p, snap.Goals),
			Status:        classifyStock(p.Stock, daysOfSupply, snap.Goals),
		})
	}

	return metrics
}

// classifyStock aplica a classificação ordenada de cobertura; a primeira
// regra que casar vence e os limites são inclusivos no <=.
func classifyStock(stock int, daysOfSupply float64, goals domain.KpiGoals) domain.StockStatus {
	switch {
	case stock <= 0:
		return domain.StockStatusStockout
	case math.IsInf(daysOfSupply, 1):
		return domain.StockStatusExcess
	case daysOfSupply <= goals.RiskMinDays:
		return domain.StockStatusStockout
	case daysOfSupply <= goals.RiskMaxDays:
		return domain.StockStatusAtRisk
	case daysOfSupply <= goals.SafetyMaxDays:
		return domain.StockStatusSafe
	default:
		return domain.StockStatusExcess
	}
}

// realMarginPct calcula a margem real conservadora: preço menos custo, menos
// imposto e a maior taxa de cartão cadastrada, sobre o preço.
func realMarginPct(p domain.Product, goals domain.KpiGoals) float64 {
	if !p.Price.IsPositive() {
		return 0
	}

	taxCut := p.Price.Mul(decimal.NewFromFloat(goals.TaxRatePct / 100))
	feeCut := p.Price.Mul(decimal.NewFromFloat(goals.MaxCardFeePct() / 100))

	margin, _ := p.Price.Sub(p.Cost).Sub(taxCut).Sub(feeCut).
		Div(p.Price).Mul(hundred).Round(2).Float64()
	return margin
}

