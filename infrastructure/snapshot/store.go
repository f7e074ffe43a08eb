// Package snapshot guarda em memória a última busca completa das entidades do
// backend. É o único estado compartilhado do serviço: as agregações são
// passadas somente-leitura sobre um snapshot e nunca mutam os slices — toda
// atualização acontece por substituição atômica depois de uma re-busca
// completa (refresh-after-write).
package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/integrator/storeapi"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Snapshot é uma visão imutável do estado buscado. Os slices não devem ser
// modificados pelos consumidores.
type Snapshot struct {
	Records  []domain.LedgerRecord
	Sales    []domain.Sale
	Products []domain.Product
	Orders   []domain.EcommerceOrder
	Goals    domain.KpiGoals
	TakenAt  time.Time
}

type Store struct {
	integrator storeapi.StoreIntegrator

	mu                sync.RWMutex
	current           Snapshot
	lastOrdersRefresh time.Time
}

func NewStore(integrator storeapi.StoreIntegrator) *Store {
	return &Store{
		integrator: integrator,
		current: Snapshot{
			Goals: domain.DefaultKpiGoals(),
		},
	}
}

// Refresh re-busca todas as listas do backend e substitui o snapshot inteiro.
// As buscas correm em paralelo; qualquer falha descarta o resultado completo,
// preservando o snapshot anterior (obsoleto porém consistente).
func (s *Store) Refresh(ctx context.Context) error {
	var (
		records  []domain.LedgerRecord
		sales    []domain.Sale
		products []domain.Product
		orders   []domain.EcommerceOrder
		goals    domain.KpiGoals

		recordsErr, salesErr, productsErr, ordersErr, goalsErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(5)

	go func() {
		defer wg.Done()
		records, recordsErr = s.integrator.FetchLedger(ctx)
	}()
	go func() {
		defer wg.Done()
		sales, salesErr = s.integrator.FetchSales(ctx)
	}()
	go func() {
		defer wg.Done()
		products, productsErr = s.integrator.FetchProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		orders, ordersErr = s.integrator.FetchOrders(ctx)
	}()
	go func() {
		defer wg.Done()
		goals, goalsErr = s.integrator.FetchGoals(ctx)
	}()

	wg.Wait()

	for _, err := range []error{recordsErr, salesErr, productsErr, ordersErr, goalsErr} {
		if err != nil {
			logrus.WithError(err).Error("Erro ao re-buscar snapshot do backend")
			return errors.Wrap(err, "erro ao atualizar o snapshot")
		}
	}

	now := time.Now()

	s.mu.Lock()
	s.current = Snapshot{
		Records:  records,
		Sales:    sales,
		Products: products,
		Orders:   orders,
		Goals:    goals,
		TakenAt:  now,
	}
	s.lastOrdersRefresh = now
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"records":  len(records),
		"sales":    len(sales),
		"products": len(products),
		"orders":   len(orders),
	}).Debug("Snapshot atualizado")

	return nil
}

// RefreshOrders re-busca apenas a lista de pedidos, usada pelo polling curto
// do e-commerce.
func (s *Store) RefreshOrders(ctx context.Context) error {
	orders, err := s.integrator.FetchOrders(ctx)
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar pedidos")
	}

	s.mu.Lock()
	s.current.Orders = orders
	s.lastOrdersRefresh = time.Now()
	s.mu.Unlock()

	return nil
}

// Current retorna o snapshot vigente. O valor retornado compartilha os slices
// internos; os consumidores tratam tudo como somente-leitura.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// LastOrdersRefresh informa quando a lista de pedidos foi atualizada pela
// última vez.
func (s *Store) LastOrdersRefresh() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastOrdersRefresh
}
