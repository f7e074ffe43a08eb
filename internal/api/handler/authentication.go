package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/authenticating"
	"github.com/FelipeSouzaG/smart-store-reports-api/pkg/apiErrors"
	"github.com/FelipeSouzaG/smart-store-reports-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	Email  string `json:"email"`
	RoleID int    `json:"roleId"`
}

// Login delega as credenciais ao backend de varejo e, em caso de sucesso,
// cria a sessão e devolve o token usado nas chamadas seguintes.
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, session, err := service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		writeJSON(w, LoginResponse{
			Token:  token,
			Email:  session.Email,
			RoleID: session.RoleID,
		})
	}
}

// Logout destrói a sessão do usuário. O token atual deixa de ser aceito
// imediatamente, mesmo que ainda não tenha expirado.
func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Logout")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		service.Logout(userClaims.SessionID)

		writeJSON(w, map[string]string{"message": "Sessão encerrada com sucesso"})
	}
}

// GetMe retorna as informações da sessão logada.
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		session, found := service.SessionByID(userClaims.SessionID)
		if !found {
			apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, "Sessão encerrada", nil)
			return
		}

		writeJSON(w, map[string]any{
			"email":  session.Email,
			"roleId": session.RoleID,
		})
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
	default:
		logrus.WithError(err).Error("Erro interno ao realizar login")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}
