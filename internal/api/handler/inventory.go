package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/FelipeSouzaG/smart-store-reports-api/internal/config"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/inventorying"
	"github.com/FelipeSouzaG/smart-store-reports-api/pkg/apiErrors"
)

// GetInventoryReport retorna o retrato do estoque: giro, cobertura, margens e
// histograma de níveis, tudo derivado do snapshot e das metas vigentes.
func GetInventoryReport(service inventorying.Estimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetInventoryReport")

		writeJSON(w, service.Estimate())
	}
}

// GetProductRankings retorna os mais vendidos e os de giro mais lento.
func GetProductRankings(cfg *config.Config, service inventorying.Estimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetProductRankings")

		size := cfg.Reports.RankingSize
		if raw := r.URL.Query().Get("size"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tamanho de ranking inválido", nil)
				return
			}
			size = parsed
		}

		writeJSON(w, service.Rankings(size))
	}
}

// CheckFreeStock verifica se a quantidade pedida cabe no estoque livre do
// produto. Quando há conflito com reservas de pedidos online, a resposta traz
// os pedidos conflitantes e as resoluções possíveis; a escolha é do operador.
func CheckFreeStock(service inventorying.Estimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CheckFreeStock")

		productID := r.URL.Query().Get("productId")
		if productID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Produto não informado", nil)
			return
		}

		requested, err := strconv.Atoi(r.URL.Query().Get("quantity"))
		if err != nil || requested <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Quantidade inválida", nil)
			return
		}

		result, err := service.CheckStockConflict(productID, requested)
		switch {
		case errors.Is(err, inventorying.ErrProductNotFound):
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
			return
		case errors.Is(err, inventorying.ErrInsufficientStock):
			apiErrors.WriteError(w, apiErrors.ErrInsufficientStock, err.Error(), result)
			return
		case err != nil:
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao verificar estoque", nil)
			return
		}

		if result.Conflict {
			apiErrors.WriteError(w, apiErrors.ErrStockConflict, "Estoque livre insuficiente; há pedidos online reservando unidades", result)
			return
		}

		writeJSON(w, result)
	}
}
