package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/posts-stats-api/internal/api"
	"github.com/vfg2006/posts-stats-api/internal/app"
	"github.com/vfg2006/posts-stats-api/internal/config"
	"github.com/vfg2006/posts-stats-api/pkg/log"
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

	service, err := app.New(ctx, cfg, log.L)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o armazenamento de snapshots")
	}
	defer service.Close()

	if err := service.Store.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com o armazenamento de snapshots")
	}

	logrus.WithField("driver", cfg.SnapshotStore.Driver).Info("Armazenamento de snapshots conectado com sucesso")

	server, err := api.New(cfg, service.Analyzer, service.Metrics, service.Store)
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
