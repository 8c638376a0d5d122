package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/dataset"
	"github.com/vfg2006/sales-dashboard-api/internal/api"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/insighting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A carga é única por processo; se falhar, a sessão inteira é abortada
	store := dataset.NewStore(dataset.NewLoader(cfg.Dataset.Path, cfg.Dataset.Encoding))
	ds, err := store.Snapshot()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset de vendas")
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id": ds.SnapshotID,
		"rows":        len(ds.Records),
		"countries":   len(ds.Countries),
		"min_date":    ds.MinDate.Format("2006-01-02"),
		"max_date":    ds.MaxDate.Format("2006-01-02"),
	}).Info("Dataset de vendas pronto para consulta")

	filterer := filtering.NewService()
	insightService := insighting.NewService(store, filterer)
	chartService := charting.NewService(store, filterer, cfg.Dashboard.RankingLimit)
	exportService := exporting.NewService(chartService)

	server, err := api.New(cfg, store, insightService, chartService, exportService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
