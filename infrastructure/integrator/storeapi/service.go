package storeapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/FelipeSouzaG/smart-store-reports-api/internal/config"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
)

// Rotas do contrato REST do backend de varejo.
const (
	routeTransactions = "/transactions"
	routeSales        = "/sales"
	routeProducts     = "/products"
	routeOrders       = "/ecommerce/orders"
	routeGoals        = "/kpi-goals"
)

// Requester é o subconjunto do cliente HTTP usado pelo integrador.
type Requester interface {
	Get(ctx context.Context, route string, out any) error
	Send(ctx context.Context, method, route string, body any) error
	Login(ctx context.Context, email, password string) (domain.BackendSession, error)
}

// StoreIntegrator é o colaborador externo deste serviço: todo estado vem das
// listas completas dele, e toda mutação é seguida de re-busca completa.
type StoreIntegrator interface {
	Login(ctx context.Context, email, password string) (domain.BackendSession, error)

	FetchLedger(ctx context.Context) ([]domain.LedgerRecord, error)
	FetchSales(ctx context.Context) ([]domain.Sale, error)
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	FetchOrders(ctx context.Context) ([]domain.EcommerceOrder, error)
	FetchGoals(ctx context.Context) (domain.KpiGoals, error)

	PayTransaction(ctx context.Context, req domain.PayTransactionRequest) error
	PayInstallment(ctx context.Context, req domain.PayInstallmentRequest) error
	PayInvoice(ctx context.Context, req domain.PayInvoiceRequest) error
	RevertInvoice(ctx context.Context, req domain.RevertInvoiceRequest) error
	UpdateOrderStatus(ctx context.Context, req domain.UpdateOrderStatusRequest) error
	SaveGoals(ctx context.Context, goals domain.KpiGoals) error
}

type StoreService struct {
	cfg    *config.Config
	client Requester
}

func New(cfg *config.Config, client Requester) StoreIntegrator {
	return &StoreService{
		cfg:    cfg,
		client: client,
	}
}

func (s *StoreService) Login(ctx context.Context, email, password string) (domain.BackendSession, error) {
	return s.client.Login(ctx, email, password)
}

func (s *StoreService) FetchLedger(ctx context.Context) ([]domain.LedgerRecord, error) {
	var records []domain.LedgerRecord
	if err := s.client.Get(ctx, routeTransactions, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *StoreService) FetchSales(ctx context.Context) ([]domain.Sale, error) {
	var sales []domain.Sale
	if err := s.client.Get(ctx, routeSales, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (s *StoreService) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.client.Get(ctx, routeProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *StoreService) FetchOrders(ctx context.Context) ([]domain.EcommerceOrder, error) {
	var orders []domain.EcommerceOrder
	if err := s.client.Get(ctx, routeOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FetchGoals retorna as metas salvas, ou as metas padrão quando o backend
// ainda não tem um snapshot salvo (rejeição 404).
func (s *StoreService) FetchGoals(ctx context.Context) (domain.KpiGoals, error) {
	var goals domain.KpiGoals
	err := s.client.Get(ctx, routeGoals, &goals)
	if err != nil {
		var be *BackendError
		if errors.As(err, &be) && be.StatusCode == http.StatusNotFound {
			return domain.DefaultKpiGoals(), nil
		}
		return domain.KpiGoals{}, err
	}
	return goals, nil
}

func (s *StoreService) PayTransaction(ctx context.Context, req domain.PayTransactionRequest) error {
	return s.client.Send(ctx, http.MethodPut, routeTransactions+"/"+req.RecordID+"/pay", req)
}

func (s *StoreService) PayInstallment(ctx context.Context, req domain.PayInstallmentRequest) error {
	return s.client.Send(ctx, http.MethodPut, routeTransactions+"/"+req.RecordID+"/installments/pay", req)
}

func (s *StoreService) PayInvoice(ctx context.Context, req domain.PayInvoiceRequest) error {
	return s.client.Send(ctx, http.MethodPut, routeTransactions+"/"+req.RecordID+"/invoice/pay", req)
}

func (s *StoreService) RevertInvoice(ctx context.Context, req domain.RevertInvoiceRequest) error {
	return s.client.Send(ctx, http.MethodPut, routeTransactions+"/"+req.RecordID+"/invoice/revert", req)
}

func (s *StoreService) UpdateOrderStatus(ctx context.Context, req domain.UpdateOrderStatusRequest) error {
	return s.client.Send(ctx, http.MethodPut, routeOrders+"/"+req.OrderID+"/status", req)
}

func (s *StoreService) SaveGoals(ctx context.Context, goals domain.KpiGoals) error {
	return s.client.Send(ctx, http.MethodPut, routeGoals, goals)
}
