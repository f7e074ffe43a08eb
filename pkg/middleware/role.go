package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/FelipeSouzaG/smart-store-reports-api/pkg/apiErrors"
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos perfis
// allowedRoles é um array de IDs de perfis que têm permissão para acessar a rota
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.RoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para sessão %s, Role=%d", userClaims.SessionID, userClaims.RoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientRole, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// OwnerOnly permite acesso apenas ao dono da loja
func OwnerOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleOwner})
}

// AllRoles permite acesso ao dono e aos operadores
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleOwner, domain.RoleOperator})
}
