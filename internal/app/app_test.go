package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/posts-stats-api/internal/config"
	"github.com/vfg2006/posts-stats-api/internal/domain"
	"github.com/vfg2006/posts-stats-api/pkg/log"
)

type memoryStore struct {
	artists   []domain.Artist
	posts     []domain.Post
	snapshots []domain.Snapshot
	failOn    domain.Platform
	closed    bool
}

func (s *memoryStore) FetchSnapshotPage(_ context.Context, postIDs []string, platform domain.Platform, offset, limit int) ([]domain.Snapshot, error) {
	if platform == s.failOn {
		return nil, errors.New("statement timeout")
	}

	wanted := make(map[string]bool, len(postIDs))
	for _, id := range postIDs {
		wanted[id] = true
	}

	var matched []domain.Snapshot
	for _, snapshot := range s.snapshots {
		if snapshot.Platform == platform && wanted[snapshot.PostID] {
			matched = append(matched, snapshot)
		}
	}

	if offset >= len(matched) {
		return []domain.Snapshot{}, nil
	}
	end := min(offset+limit, len(matched))
	return matched[offset:end], nil
}

func (s *memoryStore) ListArtists(context.Context) ([]domain.Artist, error) { return s.artists, nil }

func (s *memoryStore) ListPostedPosts(context.Context) ([]domain.Post, error) { return s.posts, nil }

func (s *memoryStore) Ping(context.Context) error { return nil }

func (s *memoryStore) Close() error {
	s.closed = true
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		SnapshotStore: config.SnapshotStore{
			Driver:             config.DriverPostgres,
			PageSize:           2,
			PageTimeout:        time.Second,
			BreakerMaxFailures: 10,
		},
		Dashboard: config.Dashboard{
			DefaultWindowDays: 90,
			DefaultPageSize:   20,
		},
	}
}

func ptr[T any](v T) *T { return &v }

func seededStore() *memoryStore {
	postDate := time.Now().UTC().AddDate(0, 0, -3)
	post := func(id string) domain.Post {
		return domain.Post{
			ID:         id,
			Name:       "Post " + id,
			PostDate:   postDate,
			Status:     domain.PostStatusPosted,
			ArtistID:   "a1",
			YouTubeURL: ptr("https://youtube.com/shorts/" + id),
			TikTokURL:  ptr("https://tiktok.com/@a1/video/" + id),
		}
	}

	snapshot := func(postID string, platform domain.Platform, views float64) domain.Snapshot {
		return domain.Snapshot{
			PostID:     postID,
			Platform:   platform,
			SnapshotAt: postDate.Add(time.Hour),
			Views:      ptr(views),
			Comments:   ptr(views / 100),
		}
	}

	return &memoryStore{
		artists: []domain.Artist{
			{ID: "a1", Name: "Artista", YouTubeFollowers: ptr(int64(500)), TikTokFollowers: ptr(int64(2000))},
		},
		posts: []domain.Post{post("p1"), post("p2"), post("p3")},
		snapshots: []domain.Snapshot{
			snapshot("p1", domain.PlatformYouTube, 1000),
			snapshot("p2", domain.PlatformYouTube, 200),
			snapshot("p3", domain.PlatformYouTube, 300),
			snapshot("p1", domain.PlatformTikTok, 5000),
			snapshot("p2", domain.PlatformTikTok, 100),
			snapshot("p3", domain.PlatformTikTok, 400),
		},
	}
}

func TestWire_MontaDashboardDePontaAPonta(t *testing.T) {
	store := seededStore()
	app := Wire(testConfig(), store, log.Nop())

	dashboard, err := app.Analyzer.GetDashboard(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, dashboard.Platforms, 3)
	for _, stats := range dashboard.Platforms {
		assert.True(t, stats.Loaded, stats.Platform)
	}
	assert.Empty(t, dashboard.Errors)

	youtube := dashboard.Platforms[0]
	require.Len(t, youtube.Tiers, 1)
	assert.Equal(t, "100-999 followers", youtube.Tiers[0].Tier)
	assert.Equal(t, "p1", youtube.Tiers[0].Posts[0].PostID)

	require.Len(t, dashboard.Recent.Posts, 3)
	assert.Equal(t, "p1", dashboard.Recent.Posts[0].PostID)
	assert.Equal(t, float64(6000), dashboard.Recent.Posts[0].TotalViews)

	require.NotEmpty(t, dashboard.Standouts[domain.CategoryViews])
	assert.Equal(t, "p1", dashboard.Standouts[domain.CategoryViews][0].PostID)

	require.NoError(t, app.Close())
	assert.True(t, store.closed)
}

func TestWire_FalhaIsoladaDePlataforma(t *testing.T) {
	store := seededStore()
	store.failOn = domain.PlatformTikTok

	dashboard, err := Wire(testConfig(), store, log.Nop()).Analyzer.GetDashboard(context.Background(), nil)
	require.NoError(t, err)

	assert.Contains(t, dashboard.Errors, domain.PlatformTikTok)
	assert.False(t, dashboard.Platforms[1].Loaded)
	assert.True(t, dashboard.Platforms[0].Loaded)

	// Sem o TikTok nenhum post tem delta positivo em duas plataformas
	for _, standouts := range dashboard.Standouts {
		assert.Empty(t, standouts)
	}
}

func TestOpenStore(t *testing.T) {
	t.Run("driver hosted não abre conexão", func(t *testing.T) {
		cfg := testConfig()
		cfg.SnapshotStore.Driver = config.DriverHosted
		cfg.Hosted.URL = "http://127.0.0.1:1"

		store, err := OpenStore(context.Background(), cfg)
		require.NoError(t, err)
		assert.NoError(t, store.Close())
	})

	t.Run("driver desconhecido", func(t *testing.T) {
		cfg := testConfig()
		cfg.SnapshotStore.Driver = "sqlite"

		_, err := OpenStore(context.Background(), cfg)
		assert.ErrorContains(t, err, "sqlite")
	})
}
