package analyzing

import (
	"sort"

	"github.com/vfg2006/posts-stats-api/internal/domain"
	"github.com/vfg2006/posts-stats-api/pkg/utils"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// BestWorstCount é quantos posts aparecem nos destaques positivos e negativos de cada faixa
	BestWorstCount = 3
)

// Pagination é a página pedida já normalizada
type Pagination struct {
	Page     int
	PageSize int
}

// NewPagination aplica página mínima 1, tamanho padrão e o limite de MaxPageSize
func NewPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// TierGroups agrupa os posts com snapshot por faixa do artista, na ordem de exibição
// das faixas, com os posts ordenados por score decrescente. Faixas vazias são omitidas.
func TierGroups(dataset PlatformDataset, artists map[string]*domain.Artist, pagination Pagination) []domain.TierGroup {
	byTier := make(map[string][]domain.RankedPost)
	seen := make(map[string]struct{}, len(dataset.Posts))

	for _, post := range dataset.Posts {
		snapshot, ok := dataset.Latest[post.ID]
		if !ok {
			continue
		}
		if _, dup := seen[post.ID]; dup {
			continue
		}
		seen[post.ID] = struct{}{}

		artist := artists[post.ArtistID]
		ranked := domain.RankedPost{
			PostID:   post.ID,
			PostName: post.Name,
			PostDate: post.PostDate,
			ArtistID: post.ArtistID,
			Score:    domain.Score(&snapshot, dataset.Config.Platform),
			Snapshot: snapshot,
		}
		if artist != nil {
			ranked.ArtistName = artist.Name
		}

		tier := domain.ArtistTier(artist, dataset.Config)
		byTier[tier] = append(byTier[tier], ranked)
	}

	groups := make([]domain.TierGroup, 0, len(byTier))
	for _, tier := range dataset.Config.TierLabels() {
		posts, ok := byTier[tier]
		if !ok {
			continue
		}
		groups = append(groups, buildTierGroup(tier, posts, pagination))
	}

	return groups
}

func buildTierGroup(tier string, posts []domain.RankedPost, pagination Pagination) domain.TierGroup {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Score != posts[j].Score {
			return posts[i].Score > posts[j].Score
		}
		return posts[i].PostID < posts[j].PostID
	})

	views := make([]float64, len(posts))
	for i := range posts {
		views[i] = posts[i].Snapshot.Value(domain.MetricViews)
	}
	for i, comparison := range ComparePeers(views) {
		comparison.PeerAverageViews = utils.RoundMetric(comparison.PeerAverageViews)
		comparison.ViewsDelta = utils.RoundMetric(comparison.ViewsDelta)
		posts[i].Peers = comparison
	}

	count := min(BestWorstCount, len(posts))
	best := make([]domain.RankedPost, count)
	copy(best, posts[:count])

	worst := make([]domain.RankedPost, 0, count)
	for i := len(posts) - 1; i >= len(posts)-count; i-- {
		worst = append(worst, posts[i])
	}

	totalPages := (len(posts) + pagination.PageSize - 1) / pagination.PageSize
	start := min((pagination.Page-1)*pagination.PageSize, len(posts))
	end := min(start+pagination.PageSize, len(posts))

	page := make([]domain.RankedPost, end-start)
	copy(page, posts[start:end])

	return domain.TierGroup{
		Tier:       tier,
		TotalPosts: len(posts),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: totalPages,
		Posts:      page,
		Best:       best,
		Worst:      worst,
	}
}

// DisplayAverages arredonda as médias para exibição sem alterar as usadas nos cálculos
func DisplayAverages(averages map[string]domain.ArtistPlatformAverage) map[string]domain.ArtistPlatformAverage {
	display := make(map[string]domain.ArtistPlatformAverage, len(averages))
	for artistID, avg := range averages {
		metrics := make(map[domain.MetricKey]float64, len(avg.Metrics))
		for key, value := range avg.Metrics {
			metrics[key] = utils.RoundMetric(value)
		}
		avg.Metrics = metrics
		display[artistID] = avg
	}
	return display
}

// DisplayStandouts arredonda scores e deltas para exibição
func DisplayStandouts(standouts map[domain.StandoutCategory][]domain.Standout) map[domain.StandoutCategory][]domain.Standout {
	display := make(map[domain.StandoutCategory][]domain.Standout, len(standouts))
	for category, list := range standouts {
		rounded := make([]domain.Standout, len(list))
		for i, standout := range list {
			deltas := make(map[domain.Platform]float64, len(standout.Deltas))
			for platform, delta := range standout.Deltas {
				deltas[platform] = utils.RoundMetric(delta)
			}
			standout.Score = utils.RoundMetric(standout.Score)
			standout.Deltas = deltas
			rounded[i] = standout
		}
		display[category] = rounded
	}
	return display
}

func indexArtists(artists []domain.Artist) map[string]*domain.Artist {
	index := make(map[string]*domain.Artist, len(artists))
	for i := range artists {
		index[artists[i].ID] = &artists[i]
	}
	return index
}
