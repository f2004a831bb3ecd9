package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_ListPostedPosts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostRepository(db)
	postDate := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	columns := []string{"id", "post_name", "post_date", "status", "artist_id", "youtube_url", "tiktok_url", "instagram_url"}
	rows := sqlmock.NewRows(columns).
		AddRow("p1", "Clipe", postDate, "posted", "a1", "https://youtube.com/shorts/1", nil, "").
		AddRow("p2", "Sem artista", postDate, "posted", nil, nil, "https://tiktok.com/@x/video/2", nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM posts p WHERE p.status = $1 ORDER BY p.post_date DESC, p.id ASC")).
		WithArgs("posted").
		WillReturnRows(rows)

	posts, err := repo.ListPostedPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, "p1", posts[0].ID)
	assert.Equal(t, "Clipe", posts[0].Name)
	assert.Equal(t, "a1", posts[0].ArtistID)
	require.NotNil(t, posts[0].YouTubeURL)
	assert.Equal(t, "https://youtube.com/shorts/1", *posts[0].YouTubeURL)
	assert.Nil(t, posts[0].TikTokURL)
	require.NotNil(t, posts[0].InstagramURL)
	assert.Equal(t, "", *posts[0].InstagramURL)

	assert.Equal(t, "", posts[1].ArtistID)
	require.NotNil(t, posts[1].TikTokURL)

	assert.NoError(t, mock.ExpectationsWereMet())
}
