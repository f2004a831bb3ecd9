package analyzing

import (
	"strings"

	"github.com/vfg2006/posts-stats-api/internal/domain"
)

// EligiblePosts mantém os posts publicados que têm URL na plataforma
func EligiblePosts(posts []domain.Post, cfg domain.PlatformConfig) []domain.Post {
	eligible := make([]domain.Post, 0, len(posts))
	for i := range posts {
		post := &posts[i]
		if post.Status != domain.PostStatusPosted {
			continue
		}

		url := cfg.URL(post)
		if url == nil || strings.TrimSpace(*url) == "" {
			continue
		}

		eligible = append(eligible, *post)
	}

	return eligible
}

func postIDs(posts []domain.Post) []string {
	ids := make([]string, 0, len(posts))
	seen := make(map[string]struct{}, len(posts))
	for _, post := range posts {
		if _, ok := seen[post.ID]; ok {
			continue
		}
		seen[post.ID] = struct{}{}
		ids = append(ids, post.ID)
	}
	return ids
}
