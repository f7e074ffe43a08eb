package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/integrator/storeapi"
	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/integrator/storeapi/storeclient"
	"github.com/FelipeSouzaG/smart-store-reports-api/infrastructure/snapshot"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/api"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/config"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/scheduler"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/authenticating"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/goalsetting"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/inventorying"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/invoicing"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/ordering"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/reporting"
	"github.com/FelipeSouzaG/smart-store-reports-api/internal/usecases/settling"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storeClient := storeclient.NewClient(cfg)
	storeIntegrator := storeapi.New(cfg, storeClient)

	// O snapshot em memória é o único estado do serviço; a primeira carga
	// acontece aqui e as seguintes pelos agendadores e pelas mutações.
	snapshotStore := snapshot.NewStore(storeIntegrator)
	if err := snapshotStore.Refresh(ctx); err != nil {
		logrus.WithError(err).Warn("Erro na carga inicial do snapshot; o serviço segue com snapshot vazio até a próxima sincronização")
	}

	authenticator := authenticating.NewService(cfg, storeIntegrator)

	inventoryService := inventorying.NewService(snapshotStore)
	reportService := reporting.NewService(cfg, snapshotStore, inventoryService)
	invoiceService := invoicing.NewService(snapshotStore, storeIntegrator)
	settlementService := settling.NewService(snapshotStore, storeIntegrator)
	orderService := ordering.NewService(snapshotStore, storeIntegrator)
	goalService := goalsetting.NewService(snapshotStore, storeIntegrator)

	// Inicializa os agendadores de sincronização separados
	snapshotSyncService := scheduler.NewSnapshotSyncService(snapshotStore, cfg)
	ordersSyncService := scheduler.NewOrdersSyncService(snapshotStore, cfg)

	// Inicia os agendadores em background
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de snapshot")
	} else {
		logrus.Info("Agendador de sincronização de snapshot iniciado com sucesso")
	}

	if err := ordersSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o polling de pedidos do e-commerce")
	} else {
		logrus.Info("Polling de pedidos do e-commerce iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		inventoryService,
		invoiceService,
		settlementService,
		orderService,
		goalService,
		authenticator,
		snapshotSyncService,
		ordersSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
