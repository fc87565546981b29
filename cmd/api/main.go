package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-metrics-api/infrastructure/database/warehouse"
	"github.com/vfg2006/growth-metrics-api/infrastructure/integrator/mockdata"
	"github.com/vfg2006/growth-metrics-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/growth-metrics-api/infrastructure/repository"
	"github.com/vfg2006/growth-metrics-api/internal/api"
	"github.com/vfg2006/growth-metrics-api/internal/api/handler"
	"github.com/vfg2006/growth-metrics-api/internal/config"
	"github.com/vfg2006/growth-metrics-api/internal/metrics"
	"github.com/vfg2006/growth-metrics-api/internal/scheduler"
	"github.com/vfg2006/growth-metrics-api/internal/usecases/collecting"
	"github.com/vfg2006/growth-metrics-api/internal/usecases/insighting"
	"github.com/vfg2006/growth-metrics-api/internal/usecases/storing"
	"github.com/vfg2006/growth-metrics-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, cfg.App.Env)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics.MustRegister(registry)

	// Conexão aberta a cada gravação; o warehouse pode estar fora do ar no boot
	metricsRepo := repository.NewMetricsRepository(warehouse.NewConnector(cfg.Warehouse))
	storeService := storing.NewService(metricsRepo)

	openaiClient := openaiclient.NewClient(cfg.OpenAI)
	insightService := insighting.NewService(cfg.OpenAI, openaiClient)

	collectService := collecting.NewService(mockdata.NewSource())

	snapshotSyncService := scheduler.NewMetricsSnapshotSyncService(collectService, storeService, cfg)
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot de métricas")
	}

	metricsServices := handler.MetricsServices{
		Collector: collectService,
		Store:     storeService,
		Insighter: insightService,
		Shopify: mockdata.ShopifyCredentials{
			APIKey:   cfg.Shopify.APIKey,
			Password: cfg.Shopify.Password,
			Shop:     cfg.Shopify.Shop,
		},
	}

	cronServices := handler.CronJobServices{
		MetricsSnapshotSyncService: snapshotSyncService,
	}

	server, err := api.New(
		cfg,
		metricsServices,
		cronServices,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite encontrar o .env ao rodar com go run de qualquer lugar
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("não foi possível mudar o diretório de trabalho")
	}
}
