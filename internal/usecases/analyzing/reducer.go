package analyzing

import "github.com/vfg2006/posts-stats-api/internal/domain"

// ReduceLatest mantém, por post, o snapshot com o maior snapshot_at.
// Empates ficam com o primeiro visto.
func ReduceLatest(snapshots []domain.Snapshot) map[string]domain.Snapshot {
	latest := make(map[string]domain.Snapshot)

	for _, snapshot := range snapshots {
		current, ok := latest[snapshot.PostID]
		if !ok || snapshot.SnapshotAt.After(current.SnapshotAt) {
			latest[snapshot.PostID] = snapshot
		}
	}

	return latest
}
