package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/posts-stats-api/infrastructure/database/postgres"
	"github.com/vfg2006/posts-stats-api/internal/domain"
)

const (
	artistsTable = "artists a"
)

type ArtistRepository interface {
	ListArtists(ctx context.Context) ([]domain.Artist, error)
}

type artistRepository struct {
	conn postgres.Queryer
}

func NewArtistRepository(conn postgres.Queryer) ArtistRepository {
	return &artistRepository{
		conn: conn,
	}
}

func (r *artistRepository) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	query, args, err := squirrel.
		Select("a.id, a.name, a.youtube_followers, a.tiktok_followers, a.ig_followers").
		From(artistsTable).
		OrderBy("a.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	artists := make([]domain.Artist, 0)
	for rows.Next() {
		artist := domain.Artist{}
		if err := rows.Scan(
			&artist.ID,
			&artist.Name,
			&artist.YouTubeFollowers,
			&artist.TikTokFollowers,
			&artist.InstagramFollowers,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear artista: %w", err)
		}
		artists = append(artists, artist)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return artists, nil
}
