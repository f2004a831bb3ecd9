package analyzing

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/vfg2006/posts-stats-api/internal/domain"
	"github.com/vfg2006/posts-stats-api/pkg/utils"
)

// ErrInvalidWindow indica uma janela fora de domain.RecencyWindows
var ErrInvalidWindow = errors.New("janela de recência inválida")

func ValidateWindow(windowDays int) error {
	if !slices.Contains(domain.RecencyWindows, windowDays) {
		return fmt.Errorf("%w: %d dias (aceitas: %v)", ErrInvalidWindow, windowDays, domain.RecencyWindows)
	}
	return nil
}

// RankRecent ordena por visualizações somadas os posts publicados em [hoje-janela, hoje].
// Plataformas sem snapshot contribuem 0 e posts sem visualizações continuam na lista.
func RankRecent(datasets []PlatformDataset, windowDays int, today time.Time) (domain.RecentPosts, error) {
	if err := ValidateWindow(windowDays); err != nil {
		return domain.RecentPosts{}, err
	}

	to := utils.DateOnly(today)
	from := to.AddDate(0, 0, -windowDays)

	recent := domain.RecentPosts{
		WindowDays: windowDays,
		From:       from,
		To:         to,
		Posts:      []domain.RecentPost{},
	}

	for _, post := range unionPosts(datasets) {
		published := utils.DateOnly(post.PostDate)
		if published.Before(from) || published.After(to) {
			continue
		}

		item := domain.RecentPost{
			PostID:   post.ID,
			PostName: post.Name,
			PostDate: published,
			ArtistID: post.ArtistID,
			Views:    map[domain.Platform]float64{},
		}

		for _, dataset := range datasets {
			snapshot, ok := dataset.Latest[post.ID]
			if !ok {
				continue
			}
			views := snapshot.Value(domain.MetricViews)
			item.Views[dataset.Config.Platform] = views
			item.TotalViews += views
		}

		recent.Posts = append(recent.Posts, item)
	}

	sort.SliceStable(recent.Posts, func(i, j int) bool {
		a, b := recent.Posts[i], recent.Posts[j]
		if a.TotalViews != b.TotalViews {
			return a.TotalViews > b.TotalViews
		}
		if !a.PostDate.Equal(b.PostDate) {
			return a.PostDate.After(b.PostDate)
		}
		return a.PostID < b.PostID
	})

	return recent, nil
}
