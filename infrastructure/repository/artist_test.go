package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtistRepository_ListArtists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewArtistRepository(db)

	columns := []string{"id", "name", "youtube_followers", "tiktok_followers", "ig_followers"}
	rows := sqlmock.NewRows(columns).
		AddRow("a1", "Banda A", int64(150), nil, int64(5000)).
		AddRow("a2", "Banda B", nil, int64(299), nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT a.id, a.name, a.youtube_followers, a.tiktok_followers, a.ig_followers FROM artists a ORDER BY a.name ASC")).
		WillReturnRows(rows)

	artists, err := repo.ListArtists(context.Background())
	require.NoError(t, err)
	require.Len(t, artists, 2)

	require.NotNil(t, artists[0].YouTubeFollowers)
	assert.Equal(t, int64(150), *artists[0].YouTubeFollowers)
	assert.Nil(t, artists[0].TikTokFollowers)
	assert.Equal(t, int64(5000), *artists[0].InstagramFollowers)

	assert.Nil(t, artists[1].YouTubeFollowers)
	assert.Equal(t, int64(299), *artists[1].TikTokFollowers)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtistRepository_ListArtists_Erro(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewArtistRepository(db)
	dbErr := errors.New("timeout")

	mock.ExpectQuery(regexp.QuoteMeta("FROM artists a")).WillReturnError(dbErr)

	artists, err := repo.ListArtists(context.Background())
	assert.Nil(t, artists)
	assert.ErrorIs(t, err, dbErr)
}
