package domain

import "github.com/golang-jwt/jwt/v5"

// Perfis de acesso da loja.
const (
	RoleOwner    = 1
	RoleOperator = 2
)

// BackendSession é a resposta do handshake de login do backend de varejo.
type BackendSession struct {
	Token  string `json:"token"`
	Name   string `json:"name"`
	RoleID int    `json:"roleId"`
}

// Session é o valor explícito de sessão criado no login e destruído no
// logout. O token do backend vive aqui, no servidor; nunca é reconstruído
// implicitamente nem exposto ao navegador.
type Session struct {
	ID           string
	Email        string
	RoleID       int
	BackendToken string
}

// Claims são as claims do JWT emitido por este serviço para o front-end.
type Claims struct {
	SessionID string `json:"sid"`
	Email     string `json:"email"`
	RoleID    int    `json:"role_id"`
	jwt.RegisteredClaims
}
