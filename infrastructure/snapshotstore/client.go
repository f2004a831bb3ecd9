// Package snapshotstore busca o histórico de snapshots no armazenamento relacional,
// paginando de forma transparente para que o chamador receba sempre o conjunto completo.
package snapshotstore

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker"
	"github.com/vfg2006/posts-stats-api/internal/config"
	"github.com/vfg2006/posts-stats-api/internal/domain"
	"github.com/vfg2006/posts-stats-api/pkg/log"
	"github.com/vfg2006/posts-stats-api/pkg/metrics"
	"github.com/vfg2006/posts-stats-api/pkg/paginate"
	"golang.org/x/time/rate"
)

const defaultBreakerMaxFailures = 3

// PageSource é a fonte de páginas de snapshots (Postgres ou gateway REST do armazenamento)
type PageSource interface {
	FetchSnapshotPage(ctx context.Context, postIDs []string, platform domain.Platform, offset, limit int) ([]domain.Snapshot, error)
}

// Client retorna todos os snapshots dos posts em uma plataforma, ordenados por snapshot_at
type Client interface {
	GetSnapshots(ctx context.Context, postIDs []string, platform domain.Platform) ([]domain.Snapshot, error)
}

// StoreError indica que a busca de uma plataforma falhou. Nenhum resultado parcial acompanha o erro.
type StoreError struct {
	Platform domain.Platform
	Offset   int
	Err      error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("snapshotstore: erro ao buscar snapshots de %s a partir do offset %d: %v", e.Platform, e.Offset, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

type StoreClient struct {
	source  PageSource
	cfg     config.SnapshotStore
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	metrics *metrics.Registry
	logger  log.Logger
}

func NewClient(source PageSource, cfg config.SnapshotStore, registry *metrics.Registry, logger log.Logger) Client {
	if logger == nil {
		logger = log.L
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = defaultBreakerMaxFailures
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "snapshot-store",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// Cancelamento pelo chamador não conta como falha do armazenamento
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(log.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("snapshotstore: circuit breaker mudou de estado")
		},
	})

	return &StoreClient{
		source:  source,
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, burst),
		breaker: breaker,
		metrics: registry,
		logger:  logger,
	}
}

func (c *StoreClient) GetSnapshots(ctx context.Context, postIDs []string, platform domain.Platform) ([]domain.Snapshot, error) {
	if len(postIDs) == 0 {
		return []domain.Snapshot{}, nil
	}

	logger := c.logger.WithContext(ctx).WithFields(log.Fields{
		"platform":   platform,
		"post_count": len(postIDs),
	})

	startTime := time.Now()
	snapshots, err := paginate.All(ctx, c.cfg.PageSize, func(ctx context.Context, offset, limit int) ([]domain.Snapshot, error) {
		return c.fetchPage(ctx, postIDs, platform, offset, limit)
	})
	if err != nil {
		offset := 0
		var pageErr *paginate.PageError
		if errors.As(err, &pageErr) {
			offset = pageErr.Offset
			err = pageErr.Err
		}

		c.observeFetch(platform, "error", startTime)
		logger.WithError(err).WithField("offset", offset).Error("snapshotstore: busca paginada falhou, descartando páginas já recebidas")

		return nil, &StoreError{Platform: platform, Offset: offset, Err: err}
	}

	c.observeFetch(platform, "ok", startTime)
	if c.metrics != nil {
		c.metrics.SnapshotRows.WithLabelValues(string(platform)).Add(float64(len(snapshots)))
	}

	logger.WithField("snapshot_count", len(snapshots)).Debug("snapshotstore: snapshots carregados")

	return snapshots, nil
}

// fetchPage respeita o ritmo configurado e executa a página através do circuit breaker
func (c *StoreClient) fetchPage(ctx context.Context, postIDs []string, platform domain.Platform, offset, limit int) ([]domain.Snapshot, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "aguardando limite de requisições")
	}

	pageCtx := ctx
	if c.cfg.PageTimeout > 0 {
		var cancel context.CancelFunc
		pageCtx, cancel = context.WithTimeout(ctx, c.cfg.PageTimeout)
		defer cancel()
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.source.FetchSnapshotPage(pageCtx, postIDs, platform, offset, limit)
	})
	if err != nil {
		c.observePage(platform, "error")
		return nil, errors.Wrapf(err, "página offset=%d limit=%d", offset, limit)
	}

	c.observePage(platform, "ok")

	page, _ := result.([]domain.Snapshot)
	return page, nil
}

func (c *StoreClient) observePage(platform domain.Platform, result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.SnapshotPages.WithLabelValues(string(platform), result).Inc()
}

func (c *StoreClient) observeFetch(platform domain.Platform, result string, startTime time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.SnapshotFetchDuration.WithLabelValues(string(platform), result).Observe(time.Since(startTime).Seconds())
}
