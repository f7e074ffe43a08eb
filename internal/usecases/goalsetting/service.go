// Package goalsetting administra as metas de indicadores: impostos, taxas de
// cartão, faixas de cobertura de estoque, margem prevista e meta de lucro.
// As metas vivem no backend; salvar dispara re-busca do snapshot para que
// todos os relatórios derivados usem os novos parâmetros imediatamente.
package goalsetting

import (
	"context"

	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/integrator/storeapi"
	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/snapshot"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/domain"
	"github.com/go-playground/validator/v10"
)

type GoalSetter interface {
	Current() domain.KpiGoals
	Save(ctx context.Context, goals domain.KpiGoals) error
}

type Service struct {
	store      *snapshot.Store
	integrator storeapi.StoreIntegrator
	validate   *validator.Validate
}

func NewService(store *snapshot.Store, integrator storeapi.StoreIntegrator) GoalSetter {
	return &Service{
		store:      store,
		integrator: integrator,
		validate:   validator.New(),
	}
}

// Current retorna as metas vigentes do snapshot.
func (s *Service) Current() domain.KpiGoals {
	return s.store.Current().Goals
}

// Save valida as metas, persiste no backend e re-busca o snapshot. A validação
// garante faixas coerentes (risco mínimo ≤ risco máximo ≤ segurança) antes de
// qualquer requisição.
func (s *Service) Save(ctx context.Context, goals domain.KpiGoals) error {
	if err := s.validate.Struct(goals); err != nil {
		return err
	}

	if err := s.integrator.SaveGoals(ctx, goals); err != nil {
		return err
	}

	return s.store.Refresh(ctx)
}
