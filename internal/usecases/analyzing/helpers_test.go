package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/posts-stats-api/internal/domain"
)

var baseTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func platformConfig(t *testing.T, platform domain.Platform) domain.PlatformConfig {
	t.Helper()

	cfg, ok := domain.ConfigFor(platform)
	require.True(t, ok)
	return cfg
}

// postedPost cria um post publicado com URL nas plataformas informadas
func postedPost(id, artistID string, date time.Time, platforms ...domain.Platform) domain.Post {
	post := domain.Post{
		ID:       id,
		Name:     "Post " + id,
		PostDate: date,
		Status:   domain.PostStatusPosted,
		ArtistID: artistID,
	}

	for _, platform := range platforms {
		url := "https://example.com/" + string(platform) + "/" + id
		switch platform {
		case domain.PlatformYouTube:
			post.YouTubeURL = &url
		case domain.PlatformTikTok:
			post.TikTokURL = &url
		case domain.PlatformInstagram:
			post.InstagramURL = &url
		}
	}

	return post
}

func snapshotAt(postID string, platform domain.Platform, at time.Time) domain.Snapshot {
	return domain.Snapshot{
		PostID:     postID,
		Platform:   platform,
		SnapshotAt: at,
	}
}
