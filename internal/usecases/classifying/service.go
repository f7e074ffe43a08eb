// Package classifying expande registros brutos do razão em lançamentos
// efetivos de uma competência. A classificação é específica por visão: não
// existe uma partição global dos registros — um item de cartão excluído do
// fluxo de caixa ainda aparece na visão de itens da fatura.
package classifying

import (
	"fmt"
	"sort"
	"time"

	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
)

// Classify expande os registros em lançamentos efetivos da competência para
// a visão alvo. Função pura: duas passadas sobre o mesmo snapshot produzem
// exatamente a mesma saída.
func Classify(records []domain.LedgerRecord, comp domain.Competency, view domain.View, now time.Time) []domain.EffectiveEntry {
	entries := make([]domain.EffectiveEntry, 0, len(records))

	for i := range records {
		r := &records[i]

		switch view {
		case domain.ViewCashFlow:
			// Item individual de compra no cartão pertence à visão da fatura.
			if r.IsCreditCardLine() {
				continue
			}
			// Fatura aberta e não paga ainda está acumulando: não é fato contábil.
			if r.IsAccumulatingInvoice() {
				continue
			}
		case domain.ViewInvoiceItems:
			if !r.IsCreditCardLine() {
				continue
			}
		case domain.ViewInvoiceLifecycle:
			if !r.IsInvoice {
				continue
			}
		}

		entries = append(entries, expand(r, comp, now)...)
	}

	// Ordenação decrescente pela data de referência: pagamento antes de
	// vencimento antes de criação. Governa a apresentação, não a agregação.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ReferenceDate.After(entries[j].ReferenceDate)
	})

	return entries
}

// expand aplica as regras de expansão de um único registro. Um registro
// parcelado contribui apenas pelas parcelas: o valor do pai nunca é emitido.
func expand(r *domain.LedgerRecord, comp domain.Competency, now time.Time) []domain.EffectiveEntry {
	if len(r.Installments) > 0 {
		total := len(r.Installments)
		out := make([]domain.EffectiveEntry, 0, total)

		for _, inst := range r.Installments {
			ref := referenceOf(inst.PaymentDate, inst.DueDate, now)
			if !comp.Contains(ref) {
				continue
			}

			out = append(out, domain.EffectiveEntry{
				Amount:            inst.Amount,
				Status:            inst.Status,
				Type:              r.Type,
				Category:          r.Category,
				Description:       fmt.Sprintf("%s (%d/%d)", r.Description, inst.Number, total),
				ReferenceDate:     ref,
				InstallmentNumber: inst.Number,
				Source:            r,
				SourceID:          r.ID,
			})
		}

		return out
	}

	ref := r.Timestamp
	switch {
	case r.Status == domain.StatusPaid && r.PaymentDate != nil:
		ref = *r.PaymentDate
	case r.DueDate != nil:
		ref = *r.DueDate
	}

	if !comp.Contains(ref) {
		return nil
	}

	return []domain.EffectiveEntry{{
		Amount:        r.Amount,
		Status:        r.Status,
		Type:          r.Type,
		Category:      r.Category,
		Description:   r.Description,
		ReferenceDate: ref,
		Source:        r,
		SourceID:      r.ID,
	}}
}

// referenceOf resolve a data de referência de uma parcela:
// pagamento, senão vencimento, senão agora.
func referenceOf(paymentDate, dueDate *time.Time, now time.Time) time.Time {
	if paymentDate != nil {
		return *paymentDate
	}
	if dueDate != nil {
		return *dueDate
	}
	return now
}
