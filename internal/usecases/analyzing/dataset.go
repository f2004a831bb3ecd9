package analyzing

import "github.com/vfg2006/posts-stats-api/internal/domain"

// PlatformDataset reúne o que foi carregado de uma plataforma. O último snapshot é
// reduzido uma vez e reaproveitado por todas as visões.
type PlatformDataset struct {
	Config   domain.PlatformConfig
	Posts    []domain.Post
	Latest   map[string]domain.Snapshot
	Averages map[string]domain.ArtistPlatformAverage
}

func NewPlatformDataset(cfg domain.PlatformConfig, posts []domain.Post, snapshots []domain.Snapshot) PlatformDataset {
	latest := ReduceLatest(snapshots)

	return PlatformDataset{
		Config:   cfg,
		Posts:    posts,
		Latest:   latest,
		Averages: RollingAverages(posts, latest, cfg),
	}
}
