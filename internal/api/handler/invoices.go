package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/invoicing"
	"github.com/FelipeSouzaG/smart-store-reports-api/pkg/apiErrors"
)

// ListPayableInvoices lista as faturas fechadas aguardando pagamento.
func ListPayableInvoices(service invoicing.InvoiceTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListPayableInvoices")

		writeJSON(w, service.Payables())
	}
}

// ListInvoiceHistory lista as faturas pagas da competência.
func ListInvoiceHistory(service invoicing.InvoiceTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListInvoiceHistory")

		comp, ok := competencyFromRequest(w, r)
		if !ok {
			return
		}

		writeJSON(w, service.History(comp))
	}
}

// GetInvoiceItems lista as compras no cartão vinculadas a uma fatura.
func GetInvoiceItems(service invoicing.InvoiceTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetInvoiceItems")

		invoiceID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if invoiceID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da fatura não fornecido", nil)
			return
		}

		writeJSON(w, service.Items(invoiceID))
	}
}

// PayInvoice baixa uma fatura fechada.
func PayInvoice(service invoicing.InvoiceTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PayInvoice")

		var req domain.PayInvoiceRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if err := service.Pay(r.Context(), req); err != nil {
			writeInvoiceError(w, err)
			return
		}

		writeJSON(w, map[string]string{"message": "Fatura paga com sucesso"})
	}
}

// RevertInvoice desfaz o pagamento de uma fatura, devolvendo-a ao estado
// fechada aguardando pagamento.
func RevertInvoice(service invoicing.InvoiceTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RevertInvoice")

		var req domain.RevertInvoiceRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if err := service.Revert(r.Context(), req); err != nil {
			writeInvoiceError(w, err)
			return
		}

		writeJSON(w, map[string]string{"message": "Pagamento da fatura revertido com sucesso"})
	}
}

func writeInvoiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, invoicing.ErrInvoiceNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
	case errors.Is(err, invoicing.ErrInvoiceNotPayable), errors.Is(err, invoicing.ErrInvoiceNotPaid):
		apiErrors.WriteError(w, apiErrors.ErrInvalidState, err.Error(), nil)
	default:
		writeBackendError(w, err)
	}
}
