package analyzing

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/posts-stats-api/internal/domain"
)

// ArtistLister fornece os artistas com as contagens de seguidores por plataforma
type ArtistLister interface {
	ListArtists(ctx context.Context) ([]domain.Artist, error)
}

// PostLister fornece os posts publicados
type PostLister interface {
	ListPostedPosts(ctx context.Context) ([]domain.Post, error)
}

// SnapshotFetcher busca o histórico completo de snapshots de uma plataforma
type SnapshotFetcher interface {
	GetSnapshots(ctx context.Context, postIDs []string, platform domain.Platform) ([]domain.Snapshot, error)
}

// Analyzer monta as visões do dashboard de estatísticas de posts
type Analyzer interface {
	// GetDashboard busca os dados e recalcula todas as visões a cada chamada
	GetDashboard(ctx context.Context, filters *domain.DashboardFilters) (*domain.Dashboard, error)
}
