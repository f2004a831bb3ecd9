// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/posts-stats-api/infrastructure/database/postgres"
	"github.com/vfg2006/posts-stats-api/internal/domain"
)

const (
	snapshotsTable = "post_snapshots s"
)

var snapshotColumns = []string{
	"s.id",
	"s.post_id",
	"s.platform",
	"s.snapshot_at",
	"s.views",
	"s.likes",
	"s.comments",
	"s.shares",
	"s.reach",
	"s.saves",
	"s.avg_view_duration",
	"s.retention_rate",
	"s.completion_rate",
	"s.tiktok_retention_score",
	"s.tiktok_shareability_score",
}

// SnapshotRepository lê páginas do histórico de snapshots; as linhas são gravadas pelos coletores
type SnapshotRepository interface {
	FetchSnapshotPage(ctx context.Context, postIDs []string, platform domain.Platform, offset, limit int) ([]domain.Snapshot, error)
}

type snapshotRepository struct {
	conn postgres.Queryer
}

func NewSnapshotRepository(conn postgres.Queryer) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// FetchSnapshotPage envia os ids como um único array para não esbarrar no limite de
// parâmetros do Postgres. Retorna uma página ordenada por snapshot_at ASC; o id desempata
// para que páginas consecutivas sejam estáveis
func (r *snapshotRepository) FetchSnapshotPage(
	ctx context.Context,
	postIDs []string,
	platform domain.Platform,
	offset, limit int,
) ([]domain.Snapshot, error) {
	query, args, err := squirrel.
		Select(snapshotColumns...).
		From(snapshotsTable).
		Where("s.post_id = ANY(?)", pq.Array(postIDs)).
		Where(squirrel.Eq{"s.platform": string(platform)}).
		OrderBy("s.snapshot_at ASC", "s.id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]domain.Snapshot, 0, limit)
	for rows.Next() {
		snapshot, err := r.scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, *snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *snapshotRepository) scanSnapshot(rows *sql.Rows) (*domain.Snapshot, error) {
	snapshot := &domain.Snapshot{}
	var platform string

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.PostID,
		&platform,
		&snapshot.SnapshotAt,
		&snapshot.Views,
		&snapshot.Likes,
		&snapshot.Comments,
		&snapshot.Shares,
		&snapshot.Reach,
		&snapshot.Saves,
		&snapshot.AvgViewDuration,
		&snapshot.RetentionRate,
		&snapshot.CompletionRate,
		&snapshot.TikTokRetentionScore,
		&snapshot.TikTokShareabilityScore,
	)
	if err != nil {
		return nil, err
	}
	snapshot.Platform = domain.Platform(platform)

	return snapshot, nil
}
