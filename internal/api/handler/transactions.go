package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/reporting"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/settling"
	"github.com/FelipeSouzaG/smart-store-reports-api/pkg/apiErrors"
)

// GetStatement retorna os lançamentos efetivos da competência na visão pedida
// (cash-flow, invoice-items ou invoice-lifecycle).
func GetStatement(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetStatement")

		comp, ok := competencyFromRequest(w, r)
		if !ok {
			return
		}

		view, ok := domain.ParseView(r.URL.Query().Get("view"))
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Visão inválida; use cash-flow, invoice-items ou invoice-lifecycle", nil)
			return
		}

		writeJSON(w, service.Statement(comp, view))
	}
}

// PayTransaction baixa um lançamento simples.
func PayTransaction(service settling.Settler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PayTransaction")

		var req domain.PayTransactionRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if err := service.PayTransaction(r.Context(), req); err != nil {
			writeSettlementError(w, err)
			return
		}

		writeJSON(w, map[string]string{"message": "Baixa registrada com sucesso"})
	}
}

// PayInstallment baixa uma parcela específica de um lançamento parcelado.
func PayInstallment(service settling.Settler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PayInstallment")

		var req domain.PayInstallmentRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if err := service.PayInstallment(r.Context(), req); err != nil {
			writeSettlementError(w, err)
			return
		}

		writeJSON(w, map[string]string{"message": "Baixa da parcela registrada com sucesso"})
	}
}

func writeSettlementError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, settling.ErrRecordNotFound), errors.Is(err, settling.ErrInstallmentNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
	case errors.Is(err, settling.ErrAlreadyPaid):
		apiErrors.WriteError(w, apiErrors.ErrInvalidState, err.Error(), nil)
	default:
		writeBackendError(w, err)
	}
}
