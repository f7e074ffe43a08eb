package storeclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"

	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/integrator/storeapi"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/config"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/FelipeSouzaG/smart-store-reports-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client é o acesso bruto ao contrato REST do backend de varejo.
type Client interface {
	Get(ctx context.Context, route string, out any) error
	Send(ctx context.Context, method, route string, body any) error
	Login(ctx context.Context, email, password string) (domain.BackendSession, error)
}

type RetailClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &RetailClient{
		httpClient: &http.Client{
			Timeout: cfg.Backend.RequestTimeout,
		},
		config: cfg,
	}
}

// Get executa um GET autenticado e decodifica a resposta JSON em out.
func (c *RetailClient) Get(ctx context.Context, route string, out any) error {
	endpoint, err := c.endpoint(route)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	c.setHeaders(req, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}

// Send executa uma mutação autenticada. Cada chamada carrega uma
// Idempotency-Key própria; a aplicação da chave é responsabilidade do backend.
func (c *RetailClient) Send(ctx context.Context, method, route string, body any) error {
	endpoint, err := c.endpoint(route)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	idempotencyKey, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar a chave de idempotência: %w", err)
	}
	c.setHeaders(req, idempotencyKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// Login delega o handshake de credenciais ao backend e retorna o bearer token
// e o perfil da sessão remota.
func (c *RetailClient) Login(ctx context.Context, email, password string) (domain.BackendSession, error) {
	endpoint, err := c.endpoint("/login")
	if err != nil {
		return domain.BackendSession{}, err
	}

	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return domain.BackendSession{}, fmt.Errorf("erro ao serializar credenciais: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.BackendSession{}, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.BackendSession{}, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return domain.BackendSession{}, err
	}

	var body domain.BackendSession
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.BackendSession{}, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return body, nil
}

func (c *RetailClient) endpoint(route string) (string, error) {
	base, err := url.Parse(c.config.Backend.URL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	base.Path = path.Join(base.Path, route)
	return base.String(), nil
}

func (c *RetailClient) setHeaders(req *http.Request, idempotencyKey string) {
	req.Header.Set("Authorization", "Bearer "+c.config.Backend.AccessToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}
}

// checkStatus converte o status HTTP na taxonomia de erros do integrador:
// 401/403 viram sessão inválida, demais 4xx carregam a mensagem do backend
// sem tradução e 5xx viram erro de serviço externo.
func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return storeapi.ErrSessionInvalid
	case resp.StatusCode < http.StatusInternalServerError:
		return &storeapi.BackendError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	default:
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}
}

func readErrorMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
