package analyzing

import (
	"sort"

	"github.com/vfg2006/posts-stats-api/internal/domain"
)

// MinStandoutPlatforms é o mínimo de plataformas com delta positivo para um destaque
const MinStandoutPlatforms = 2

// categoryDelta retorna o delta relativo do post contra a média do artista em uma
// categoria, e false quando a plataforma não participa da categoria
type categoryDelta func(platform domain.Platform, post *domain.Snapshot, avg *domain.ArtistPlatformAverage) (float64, bool)

var categoryDeltas = map[domain.StandoutCategory]categoryDelta{
	domain.CategoryShares:    sharesDelta,
	domain.CategoryComments:  commentsDelta,
	domain.CategoryRetention: retentionDelta,
	domain.CategoryViews:     viewsDelta,
}

func sharesDelta(platform domain.Platform, post *domain.Snapshot, avg *domain.ArtistPlatformAverage) (float64, bool) {
	switch platform {
	case domain.PlatformTikTok:
		return metricDelta(domain.MetricTikTokShareabilityScore, post, avg), true
	case domain.PlatformInstagram:
		return perThousandDelta(domain.MetricShares, post, avg), true
	}
	return 0, false
}

// commentsDelta só participa quando as visualizações do post e da média são positivas
func commentsDelta(_ domain.Platform, post *domain.Snapshot, avg *domain.ArtistPlatformAverage) (float64, bool) {
	if post.Value(domain.MetricViews) <= 0 || avg.Value(domain.MetricViews) <= 0 {
		return 0, false
	}
	return perThousandDelta(domain.MetricComments, post, avg), true
}

func retentionDelta(platform domain.Platform, post *domain.Snapshot, avg *domain.ArtistPlatformAverage) (float64, bool) {
	switch platform {
	case domain.PlatformYouTube:
		return metricDelta(domain.MetricRetentionRate, post, avg), true
	case domain.PlatformTikTok:
		return metricDelta(domain.MetricTikTokRetentionScore, post, avg), true
	}
	return 0, false
}

func viewsDelta(_ domain.Platform, post *domain.Snapshot, avg *domain.ArtistPlatformAverage) (float64, bool) {
	return metricDelta(domain.MetricViews, post, avg), true
}

func metricDelta(key domain.MetricKey, post *domain.Snapshot, avg *domain.ArtistPlatformAverage) float64 {
	return domain.RelativeDelta(post.Value(key), avg.Value(key))
}

func perThousandDelta(key domain.MetricKey, post *domain.Snapshot, avg *domain.ArtistPlatformAverage) float64 {
	return domain.RelativeDelta(
		domain.PerThousandViews(post.Value(key), post.Value(domain.MetricViews)),
		domain.PerThousandViews(avg.Value(key), avg.Value(domain.MetricViews)),
	)
}

// DetectStandouts soma, por categoria, os deltas positivos de cada post nas plataformas
// carregadas. Só entram posts com delta positivo em pelo menos MinStandoutPlatforms plataformas.
func DetectStandouts(datasets []PlatformDataset) map[domain.StandoutCategory][]domain.Standout {
	standouts := make(map[domain.StandoutCategory][]domain.Standout, len(domain.StandoutCategories))
	for _, category := range domain.StandoutCategories {
		standouts[category] = []domain.Standout{}
	}

	for _, post := range unionPosts(datasets) {
		if post.ArtistID == "" {
			continue
		}

		for _, category := range domain.StandoutCategories {
			delta := categoryDeltas[category]
			standout := domain.Standout{
				PostID:    post.ID,
				PostName:  post.Name,
				ArtistID:  post.ArtistID,
				Platforms: []domain.Platform{},
				Deltas:    map[domain.Platform]float64{},
			}

			for i := range datasets {
				dataset := &datasets[i]

				snapshot, ok := dataset.Latest[post.ID]
				if !ok {
					continue
				}
				avg, ok := dataset.Averages[post.ArtistID]
				if !ok {
					continue
				}

				value, applies := delta(dataset.Config.Platform, &snapshot, &avg)
				if !applies || value <= 0 {
					continue
				}

				standout.Score += value
				standout.Platforms = append(standout.Platforms, dataset.Config.Platform)
				standout.Deltas[dataset.Config.Platform] = value
			}

			if len(standout.Platforms) >= MinStandoutPlatforms {
				standouts[category] = append(standouts[category], standout)
			}
		}
	}

	for _, list := range standouts {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Score != list[j].Score {
				return list[i].Score > list[j].Score
			}
			return list[i].PostID < list[j].PostID
		})
	}

	return standouts
}

// unionPosts junta os posts de todas as plataformas, na ordem em que aparecem, sem repetir ids
func unionPosts(datasets []PlatformDataset) []domain.Post {
	seen := make(map[string]struct{})
	posts := make([]domain.Post, 0)

	for _, dataset := range datasets {
		for _, post := range dataset.Posts {
			if _, ok := seen[post.ID]; ok {
				continue
			}
			seen[post.ID] = struct{}{}
			posts = append(posts, post)
		}
	}

	return posts
}
