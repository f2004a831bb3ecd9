// Package app monta as dependências do serviço a partir da configuração
package app

import (
	"context"
	"fmt"

	"github.com/vfg2006/posts-stats-api/infrastructure/database/postgres"
	"github.com/vfg2006/posts-stats-api/infrastructure/integrator/hosted"
	"github.com/vfg2006/posts-stats-api/infrastructure/integrator/hosted/hostedclient"
	"github.com/vfg2006/posts-stats-api/infrastructure/repository"
	"github.com/vfg2006/posts-stats-api/infrastructure/snapshotstore"
	"github.com/vfg2006/posts-stats-api/internal/config"
	"github.com/vfg2006/posts-stats-api/internal/usecases/analyzing"
	"github.com/vfg2006/posts-stats-api/pkg/log"
	"github.com/vfg2006/posts-stats-api/pkg/metrics"
)

// Store é o que cada driver de armazenamento precisa oferecer ao serviço
type Store interface {
	snapshotstore.PageSource
	analyzing.ArtistLister
	analyzing.PostLister
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	Analyzer analyzing.Analyzer
	Metrics  *metrics.Registry
	Store    Store
}

// New abre o armazenamento configurado e monta o serviço de análise sobre ele
func New(ctx context.Context, cfg *config.Config, logger log.Logger) (*App, error) {
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return Wire(cfg, store, logger), nil
}

// Wire monta o serviço de análise sobre um armazenamento já aberto
func Wire(cfg *config.Config, store Store, logger log.Logger) *App {
	registry := metrics.NewRegistry()
	snapshots := snapshotstore.NewClient(store, cfg.SnapshotStore, registry, logger)

	return &App{
		Analyzer: analyzing.NewService(cfg, store, store, snapshots, registry, logger),
		Metrics:  registry,
		Store:    store,
	}
}

func (a *App) Close() error {
	return a.Store.Close()
}

// OpenStore escolhe o driver pelo SNAPSHOT_STORE_DRIVER
func OpenStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.SnapshotStore.Driver {
	case config.DriverPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		return &postgresStore{
			SnapshotRepository: repository.NewSnapshotRepository(conn),
			PostRepository:     repository.NewPostRepository(conn),
			ArtistRepository:   repository.NewArtistRepository(conn),
			conn:               conn,
		}, nil

	case config.DriverHosted:
		client := hostedclient.NewClient(cfg.Hosted)
		return &hostedStore{
			StoreIntegrator: hosted.New(client, cfg.SnapshotStore.PageSize),
		}, nil
	}

	return nil, fmt.Errorf("driver de armazenamento desconhecido: %q", cfg.SnapshotStore.Driver)
}

type postgresStore struct {
	repository.SnapshotRepository
	repository.PostRepository
	repository.ArtistRepository
	conn postgres.Conn
}

func (s *postgresStore) Ping(ctx context.Context) error {
	return s.conn.Ping(ctx)
}

func (s *postgresStore) Close() error {
	return s.conn.Close()
}

// hostedStore não mantém conexão aberta
type hostedStore struct {
	hosted.StoreIntegrator
}

func (s *hostedStore) Close() error {
	return nil
}
