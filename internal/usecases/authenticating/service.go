// Package authenticating faz a ponte de sessão entre o front-end e o backend
// de varejo. O handshake de credenciais é delegado ao backend; este serviço
// guarda o bearer token remoto em uma sessão explícita no servidor e emite um
// JWT próprio para o navegador. Logout destrói a sessão — nada é reconstruído
// implicitamente depois disso.
package authenticating

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"

	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/integrator/storeapi"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/config"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/FelipeSouzaG/smart-store-reports-api/pkg/apiErrors"
)

type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, *domain.Session, error)
	Logout(sessionID string)
	ValidateToken(tokenString string) (*domain.Claims, error)
	SessionByID(sessionID string) (*domain.Session, bool)
}

type Service struct {
	cfg        *config.Config
	integrator storeapi.StoreIntegrator

	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewService(cfg *config.Config, integrator storeapi.StoreIntegrator) Authenticator {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
		sessions:   map[string]*domain.Session{},
	}
}

// Login delega as credenciais ao backend, registra a sessão e emite o JWT
// usado pelo front-end nas chamadas seguintes.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	if email == "" || password == "" {
		return "", nil, NewAuthError(ErrMissingData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	backendSession, err := s.integrator.Login(ctx, email, password)
	if err != nil {
		if storeapi.IsSessionInvalid(err) {
			return "", nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos")
		}
		return "", nil, err
	}

	sessionID, err := gonanoid.New()
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador de sessão")
	}

	roleID := backendSession.RoleID
	if roleID == 0 {
		roleID = domain.RoleOperator
	}

	session := &domain.Session{
		ID:           sessionID,
		Email:        email,
		RoleID:       roleID,
		BackendToken: backendSession.Token,
	}

	token, err := s.generateJWT(session)
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	s.mu.Lock()
	s.sessions[sessionID] = session
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"session_id": sessionID,
		"role_id":    roleID,
	}).Info("Sessão criada")

	return token, session, nil
}

// Logout destrói a sessão. Um JWT ainda válido que aponte para uma sessão
// destruída é rejeitado no ValidateToken.
func (s *Service) Logout(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	logrus.WithField("session_id", sessionID).Info("Sessão encerrada")
}

// ValidateToken verifica assinatura e validade do JWT e exige que a sessão
// apontada ainda exista.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if _, alive := s.SessionByID(claims.SessionID); !alive {
		return nil, NewAuthError(ErrSessionNotFound, apiErrors.ErrSessionNotFound, "")
	}

	return claims, nil
}

// SessionByID retorna a sessão ativa com o identificador informado.
func (s *Service) SessionByID(sessionID string) (*domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	return session, ok
}

func (s *Service) generateJWT(session *domain.Session) (string, error) {
	claims := domain.Claims{
		SessionID: session.ID,
		Email:     session.Email,
		RoleID:    session.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.Auth.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}
