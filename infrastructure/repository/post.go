package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/posts-stats-api/infrastructure/database/postgres"
	"github.com/vfg2006/posts-stats-api/internal/domain"
)

const (
	postsTable = "posts p"
)

type PostRepository interface {
	ListPostedPosts(ctx context.Context) ([]domain.Post, error)
}

type postRepository struct {
	conn postgres.Queryer
}

func NewPostRepository(conn postgres.Queryer) PostRepository {
	return &postRepository{
		conn: conn,
	}
}

// ListPostedPosts retorna apenas posts publicados, os únicos elegíveis para as análises
func (r *postRepository) ListPostedPosts(ctx context.Context) ([]domain.Post, error) {
	query, args, err := squirrel.
		Select("p.id, p.post_name, p.post_date, p.status, p.artist_id, p.youtube_url, p.tiktok_url, p.instagram_url").
		From(postsTable).
		Where(squirrel.Eq{"p.status": domain.PostStatusPosted}).
		OrderBy("p.post_date DESC", "p.id ASC").
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

	posts := make([]domain.Post, 0)
	for rows.Next() {
		post := domain.Post{}
		var artistID sql.NullString

		if err := rows.Scan(
			&post.ID,
			&post.Name,
			&post.PostDate,
			&post.Status,
			&artistID,
			&post.YouTubeURL,
			&post.TikTokURL,
			&post.InstagramURL,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear post: %w", err)
		}
		post.ArtistID = artistID.String

		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return posts, nil
}
