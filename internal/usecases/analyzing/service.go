package analyzing

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/posts-stats-api/internal/config"
	"github.com/vfg2006/posts-stats-api/internal/domain"
	"github.com/vfg2006/posts-stats-api/pkg/log"
	"github.com/vfg2006/posts-stats-api/pkg/metrics"
	"github.com/vfg2006/posts-stats-api/pkg/utils"
)

const (
	buildResultOK       = "ok"
	buildResultDegraded = "degraded"
	buildResultError    = "error"
)

// Service implementa Analyzer. Não guarda estado entre chamadas: cada dashboard
// busca e recalcula tudo.
type Service struct {
	cfg       *config.Config
	artists   ArtistLister
	posts     PostLister
	snapshots SnapshotFetcher
	metrics   *metrics.Registry
	logger    log.Logger
	now       func() time.Time
}

// NewService cria uma nova instância do serviço de análise
func NewService(
	cfg *config.Config,
	artists ArtistLister,
	posts PostLister,
	snapshots SnapshotFetcher,
	registry *metrics.Registry,
	logger log.Logger,
) Analyzer {
	if logger == nil {
		logger = log.L
	}

	return &Service{
		cfg:       cfg,
		artists:   artists,
		posts:     posts,
		snapshots: snapshots,
		metrics:   registry,
		logger:    logger,
		now:       time.Now,
	}
}

// GetDashboard carrega artistas e posts e então cada plataforma em sequência. A falha de uma
// plataforma vira um diagnóstico e as demais continuam; cancelamento aborta tudo.
func (s *Service) GetDashboard(ctx context.Context, filters *domain.DashboardFilters) (*domain.Dashboard, error) {
	filters = s.normalizeFilters(filters)
	if err := ValidateWindow(filters.WindowDays); err != nil {
		return nil, err
	}

	logger := s.logger.WithContext(ctx)

	now := s.now().UTC()
	asOf := now
	if filters.AsOf != nil {
		asOf = filters.AsOf.UTC()
	}

	artists, err := s.artists.ListArtists(ctx)
	if err != nil {
		s.observeBuild(buildResultError)
		return nil, fmt.Errorf("erro ao buscar artistas: %w", err)
	}

	posts, err := s.posts.ListPostedPosts(ctx)
	if err != nil {
		s.observeBuild(buildResultError)
		return nil, fmt.Errorf("erro ao buscar posts: %w", err)
	}

	artistIndex := indexArtists(artists)
	pagination := NewPagination(filters.Page, filters.PageSize)

	dashboard := &domain.Dashboard{
		GeneratedAt: now,
		AsOf:        asOf,
		Platforms:   make([]domain.PlatformStats, 0, len(domain.PlatformConfigs())),
	}

	datasets := make([]PlatformDataset, 0, len(domain.PlatformConfigs()))
	for _, cfg := range domain.PlatformConfigs() {
		eligible := EligiblePosts(posts, cfg)

		snapshots, err := s.snapshots.GetSnapshots(ctx, postIDs(eligible), cfg.Platform)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				s.observeBuild(buildResultError)
				return nil, ctxErr
			}

			stats := s.degradedPlatform(logger, cfg, err)
			if dashboard.Errors == nil {
				dashboard.Errors = make(map[domain.Platform]string)
			}
			dashboard.Errors[cfg.Platform] = stats.Diagnostic
			dashboard.Platforms = append(dashboard.Platforms, stats)
			continue
		}

		dataset := NewPlatformDataset(cfg, eligible, snapshots)
		datasets = append(datasets, dataset)

		dashboard.Platforms = append(dashboard.Platforms, domain.PlatformStats{
			Platform:  cfg.Platform,
			Name:      cfg.Name,
			Loaded:    true,
			PostCount: len(eligible),
			Tiers:     TierGroups(dataset, artistIndex, pagination),
			Averages:  DisplayAverages(dataset.Averages),
		})

		logger.WithFields(log.Fields{
			"platform":       cfg.Platform,
			"post_count":     len(eligible),
			"snapshot_count": len(snapshots),
		}).Debug("Plataforma carregada")
	}

	dashboard.Standouts = DisplayStandouts(DetectStandouts(datasets))

	recent, err := RankRecent(datasets, filters.WindowDays, asOf)
	if err != nil {
		s.observeBuild(buildResultError)
		return nil, err
	}
	dashboard.Recent = recent

	if len(dashboard.Errors) > 0 {
		s.observeBuild(buildResultDegraded)
	} else {
		s.observeBuild(buildResultOK)
	}

	return dashboard, nil
}

// degradedPlatform registra a falha com uma referência curta que aparece no log e no diagnóstico
func (s *Service) degradedPlatform(logger log.Logger, cfg domain.PlatformConfig, err error) domain.PlatformStats {
	ref := utils.GenerateErrorRef()

	logger.WithError(err).WithFields(log.Fields{
		"platform": cfg.Platform,
		"ref":      ref,
	}).Error("Erro ao carregar snapshots da plataforma, exibindo dashboard parcial")

	if s.metrics != nil {
		s.metrics.PlatformFailures.WithLabelValues(string(cfg.Platform)).Inc()
	}

	return domain.PlatformStats{
		Platform:   cfg.Platform,
		Name:       cfg.Name,
		Loaded:     false,
		Diagnostic: fmt.Sprintf("%s data is unavailable right now (ref %s)", cfg.Name, ref),
		Tiers:      []domain.TierGroup{},
		Averages:   map[string]domain.ArtistPlatformAverage{},
	}
}

func (s *Service) normalizeFilters(filters *domain.DashboardFilters) *domain.DashboardFilters {
	normalized := domain.DashboardFilters{}
	if filters != nil {
		normalized = *filters
	}

	if normalized.WindowDays == 0 {
		normalized.WindowDays = s.cfg.Dashboard.DefaultWindowDays
	}
	if normalized.PageSize == 0 {
		normalized.PageSize = s.cfg.Dashboard.DefaultPageSize
	}

	return &normalized
}

func (s *Service) observeBuild(result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.DashboardBuilds.WithLabelValues(result).Inc()
}
