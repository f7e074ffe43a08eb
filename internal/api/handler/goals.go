package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/goalsetting"
	"github.com/FelipeSouzaG/smart-store-reports-api/pkg/apiErrors"
)

// GetGoals retorna as metas de indicadores vigentes.
func GetGoals(service goalsetting.GoalSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetGoals")

		writeJSON(w, service.Current())
	}
}

// UpdateGoals persiste novas metas no backend. Faixas incoerentes (risco
// mínimo acima do máximo, margem prevista fora de 0-100) são rejeitadas antes
// de qualquer requisição.
func UpdateGoals(service goalsetting.GoalSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateGoals")

		var goals domain.KpiGoals
		if err := json.NewDecoder(r.Body).Decode(&goals); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.Save(r.Context(), goals); err != nil {
			var verr validator.ValidationErrors
			if errors.As(err, &verr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Metas inválidas", verr.Error())
				return
			}
			writeBackendError(w, err)
			return
		}

		writeJSON(w, map[string]string{"message": "Metas atualizadas com sucesso"})
	}
}
