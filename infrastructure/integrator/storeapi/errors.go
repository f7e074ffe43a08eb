package storeapi

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrSessionInvalid cobre uniformemente respostas 401/403 do backend:
// a sessão é considerada inválida e o chamador deve encerrar o login.
var ErrSessionInvalid = errors.New("sessão inválida junto ao backend")

// BackendError é uma rejeição 4xx do backend. A mensagem vem do corpo da
// resposta e é apresentada ao usuário sem tradução.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend rejeitou a requisição com status %d", e.StatusCode)
}

// IsSessionInvalid indica se o erro é a rejeição uniforme de sessão (401/403).
func IsSessionInvalid(err error) bool {
	return errors.Is(err, ErrSessionInvalid)
}

// IsBackendRejection indica se o erro é uma rejeição de negócio do backend,
// distinta de falha de transporte.
func IsBackendRejection(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}
