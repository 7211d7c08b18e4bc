package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/toronto-rental-dashboard/infrastructure/dataset"
	"github.com/vfg2006/toronto-rental-dashboard/internal/api"
	"github.com/vfg2006/toronto-rental-dashboard/internal/config"
	"github.com/vfg2006/toronto-rental-dashboard/internal/domain"
	"github.com/vfg2006/toronto-rental-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/toronto-rental-dashboard/internal/usecases/revenue"
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

	snapshots, boundaries := loadData(cfg.Dataset)

	dashboardService, err := dashboard.NewService(cfg, snapshots, boundaries)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar o dashboard")
	}

	server, err := api.New(cfg, dashboardService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// loadData carrega os dois snapshots, calcula a receita e lê as fronteiras.
// Qualquer falha aqui impede a inicialização.
func loadData(cfg config.Dataset) (domain.Snapshots, *domain.Boundaries) {
	sources := []dataset.Source{
		{Year: "2019", Path: cfg.Listings2019Path},
		{Year: "2020", Path: cfg.Listings2020Path},
	}

	loaded, err := dataset.LoadSnapshots(sources, dataset.Options{
		NeighbourhoodColumn: cfg.NeighbourhoodColumn,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar os anúncios")
	}

	snapshots, err := revenue.ComputeAll(loaded)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao calcular a receita")
	}

	boundaries, err := dataset.LoadBoundaries(cfg.NeighbourhoodsPath, cfg.FeatureIDKey)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar as fronteiras dos bairros")
	}

	logrus.Info("Dados carregados com sucesso")
	return snapshots, boundaries
}
