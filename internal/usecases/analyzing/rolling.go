package analyzing

import (
	"sort"

	"github.com/vfg2006/posts-stats-api/internal/domain"
)

// RollingWindowSize é a quantidade de posts mais recentes usada na média de cada artista
const RollingWindowSize = 15

// RollingAverages calcula a média por artista sobre os posts mais recentes com snapshot,
// ordenados pelo snapshot_at do último snapshot. Artistas sem posts qualificados ficam de fora.
func RollingAverages(
	posts []domain.Post,
	latest map[string]domain.Snapshot,
	cfg domain.PlatformConfig,
) map[string]domain.ArtistPlatformAverage {
	byArtist := make(map[string][]domain.Snapshot)
	seen := make(map[string]struct{}, len(posts))

	for _, post := range posts {
		if post.ArtistID == "" {
			continue
		}
		if _, dup := seen[post.ID]; dup {
			continue
		}
		snapshot, ok := latest[post.ID]
		if !ok {
			continue
		}
		seen[post.ID] = struct{}{}
		byArtist[post.ArtistID] = append(byArtist[post.ArtistID], snapshot)
	}

	averages := make(map[string]domain.ArtistPlatformAverage, len(byArtist))
	for artistID, snapshots := range byArtist {
		sort.Slice(snapshots, func(i, j int) bool {
			if !snapshots[i].SnapshotAt.Equal(snapshots[j].SnapshotAt) {
				return snapshots[i].SnapshotAt.After(snapshots[j].SnapshotAt)
			}
			return snapshots[i].PostID < snapshots[j].PostID
		})

		if len(snapshots) > RollingWindowSize {
			snapshots = snapshots[:RollingWindowSize]
		}

		metrics := make(map[domain.MetricKey]float64, len(cfg.MetricKeys))
		for _, key := range cfg.MetricKeys {
			var sum float64
			for i := range snapshots {
				sum += snapshots[i].Value(key)
			}
			metrics[key] = sum / float64(len(snapshots))
		}

		averages[artistID] = domain.ArtistPlatformAverage{
			ArtistID:  artistID,
			Platform:  cfg.Platform,
			PostCount: len(snapshots),
			Metrics:   metrics,
		}
	}

	return averages
}
