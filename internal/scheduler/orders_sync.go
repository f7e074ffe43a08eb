package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/snapshot"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/config"
)

// OrdersSyncConfig representa a configuração do polling de pedidos
type OrdersSyncConfig struct {
	IntervalSeconds int
	SyncEnabled     bool
}

// OrdersSyncService atualiza só a lista de pedidos do e-commerce em intervalo
// curto. O selo de pedidos pendentes depende dessa lista; o restante do
// snapshot segue o ciclo próprio, mais espaçado.
type OrdersSyncService struct {
	scheduler           *gocron.Scheduler
	config              OrdersSyncConfig
	store               *snapshot.Store
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewOrdersSyncService cria uma nova instância do polling de pedidos
func NewOrdersSyncService(store *snapshot.Store, appConfig *config.Config) *OrdersSyncService {
	syncConfig := OrdersSyncConfig{
		IntervalSeconds: appConfig.OrdersSync.IntervalSeconds,
		SyncEnabled:     appConfig.OrdersSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"interval_seconds": syncConfig.IntervalSeconds,
		"sync_enabled":     syncConfig.SyncEnabled,
	}).Info("Configuração do polling de pedidos carregada")

	return &OrdersSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		store:       store,
		syncRunning: false,
	}
}

// Start inicia o polling
func (s *OrdersSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Polling de pedidos desabilitado por configuração")
		return nil
	}

	logrus.WithField("interval_seconds", s.config.IntervalSeconds).Info("Iniciando polling de pedidos do e-commerce")

	_, err := s.scheduler.Every(s.config.IntervalSeconds).Seconds().Do(func() {
		s.syncOrders(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar polling de pedidos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando polling de pedidos do e-commerce")
		s.scheduler.Stop()
	}()

	return nil
}

// syncOrders atualiza a lista de pedidos, ignorando se já houver atualização em andamento
func (s *OrdersSyncService) syncOrders(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if err := s.store.RefreshOrders(ctx); err != nil {
		s.lastSyncError = err.Error()
		logrus.WithError(err).Warn("Erro no polling de pedidos; lista anterior mantida")
		return
	}

	s.lastSyncError = ""
	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync força uma atualização imediata da lista de pedidos
func (s *OrdersSyncService) TriggerManualSync() {
	logrus.Info("Iniciando atualização manual de pedidos")
	go s.syncOrders(context.Background())
}

// GetStatus retorna o status atual do polling
func (s *OrdersSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_interval_seconds":  s.config.IntervalSeconds,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
