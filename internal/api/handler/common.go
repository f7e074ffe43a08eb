package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/integrator/storeapi"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/FelipeSouzaG/smart-store-reports-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New()

// writeJSON serializa a resposta de sucesso.
func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao serializar resposta")
	}
}

// decodeAndValidate decodifica o corpo da requisição e aplica as regras de
// validação das variantes de mutação antes de qualquer chamada ao backend.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}

	if err := validate.Struct(req); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Dados obrigatórios ausentes ou inválidos", err.Error())
		return false
	}

	return true
}

// competencyFromRequest lê a competência da query string; ausente, usa o mês
// corrente.
func competencyFromRequest(w http.ResponseWriter, r *http.Request) (domain.Competency, bool) {
	raw := r.URL.Query().Get("competency")
	if raw == "" {
		return domain.CurrentCompetency(), true
	}

	comp, err := domain.ParseCompetency(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidCompetency, "Competência inválida; use o formato mm-aaaa", nil)
		return domain.Competency{}, false
	}

	return comp, true
}

// writeBackendError converte erros vindos do backend de varejo: rejeições de
// sessão viram 401 uniforme, rejeições de negócio carregam a mensagem do
// backend sem tradução.
func writeBackendError(w http.ResponseWriter, err error) {
	if storeapi.IsSessionInvalid(err) {
		apiErrors.WriteError(w, apiErrors.ErrSessionRejected, "Sessão rejeitada pelo backend; faça login novamente", nil)
		return
	}

	var be *storeapi.BackendError
	if errors.As(err, &be) {
		apiErrors.WriteError(w, apiErrors.ErrBackendRejection, be.Message, nil)
		return
	}

	logrus.WithError(err).Error("Erro de comunicação com o backend de varejo")
	apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao comunicar com o backend de varejo", nil)
}
