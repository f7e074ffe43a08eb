package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/reporting"
)

// GetCashFlow retorna o fluxo de caixa realizado da competência: somente
// lançamentos pagos, sem saldo de abertura.
func GetCashFlow(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCashFlow")

		comp, ok := competencyFromRequest(w, r)
		if !ok {
			return
		}

		writeJSON(w, service.CashFlow(comp))
	}
}

// GetAccrual retorna o resultado por competência, com ponto de equilíbrio,
// meta de faturamento e previsão de fechamento.
func GetAccrual(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAccrual")

		comp, ok := competencyFromRequest(w, r)
		if !ok {
			return
		}

		writeJSON(w, service.Accrual(comp))
	}
}

// GetDashboard retorna o painel combinado da competência: caixa, resultado,
// retrato de estoque e rankings em uma só resposta.
func GetDashboard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDashboard")

		comp, ok := competencyFromRequest(w, r)
		if !ok {
			return
		}

		writeJSON(w, service.Dashboard(comp))
	}
}

// GetAvailablePeriods lista as competências com fatos financeiros registrados.
func GetAvailablePeriods(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAvailablePeriods")

		writeJSON(w, service.AvailablePeriods())
	}
}
