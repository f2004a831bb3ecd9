package hosted

import (
	"context"
	"fmt"

	hosteddomain "github.com/vfg2006/posts-stats-api/infrastructure/integrator/hosted/domain"
	"github.com/vfg2006/posts-stats-api/infrastructure/integrator/hosted/hostedclient"
	"github.com/vfg2006/posts-stats-api/internal/domain"
	"github.com/vfg2006/posts-stats-api/pkg/paginate"
	"github.com/vfg2006/posts-stats-api/pkg/utils"
)

// StoreIntegrator expõe o armazenamento hospedado com os mesmos contratos dos repositórios Postgres
type StoreIntegrator interface {
	FetchSnapshotPage(ctx context.Context, postIDs []string, platform domain.Platform, offset, limit int) ([]domain.Snapshot, error)
	ListPostedPosts(ctx context.Context) ([]domain.Post, error)
	ListArtists(ctx context.Context) ([]domain.Artist, error)
	Ping(ctx context.Context) error
}

type HostedService struct {
	Client   hostedclient.Client
	pageSize int
}

// New usa pageSize também para paginar posts e artistas, que seguem o mesmo limite de linhas
func New(client hostedclient.Client, pageSize int) StoreIntegrator {
	return &HostedService{
		Client:   client,
		pageSize: pageSize,
	}
}

func (s *HostedService) FetchSnapshotPage(
	ctx context.Context,
	postIDs []string,
	platform domain.Platform,
	offset, limit int,
) ([]domain.Snapshot, error) {
	rows, err := s.Client.GetSnapshots(ctx, hostedclient.SnapshotParams{
		PostIDs:  postIDs,
		Platform: string(platform),
	}, offset, limit)
	if err != nil {
		return nil, err
	}

	snapshots := make([]domain.Snapshot, 0, len(rows))
	for _, row := range rows {
		snapshot, err := toSnapshot(row)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}

func (s *HostedService) ListPostedPosts(ctx context.Context) ([]domain.Post, error) {
	rows, err := paginate.All(ctx, s.pageSize, s.Client.GetPosts)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar posts: %w", err)
	}

	posts := make([]domain.Post, 0, len(rows))
	for _, row := range rows {
		post, err := toPost(row)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func (s *HostedService) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	rows, err := paginate.All(ctx, s.pageSize, s.Client.GetArtists)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar artistas: %w", err)
	}

	artists := make([]domain.Artist, 0, len(rows))
	for _, row := range rows {
		artists = append(artists, domain.Artist{
			ID:                 row.ID,
			Name:               row.Name,
			YouTubeFollowers:   row.YouTubeFollowers,
			TikTokFollowers:    row.TikTokFollowers,
			InstagramFollowers: row.InstagramFollowers,
		})
	}

	return artists, nil
}

// Ping confirma que o gateway responde lendo uma única linha de artistas
func (s *HostedService) Ping(ctx context.Context) error {
	if _, err := s.Client.GetArtists(ctx, 0, 1); err != nil {
		return fmt.Errorf("erro ao verificar o armazenamento hospedado: %w", err)
	}
	return nil
}

func toSnapshot(row hosteddomain.SnapshotRow) (domain.Snapshot, error) {
	snapshotAt, err := utils.ParseTimestamp(row.SnapshotAt)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("erro ao converter snapshot %d: %w", row.ID, err)
	}

	return domain.Snapshot{
		ID:                      row.ID,
		PostID:                  row.PostID,
		Platform:                domain.Platform(row.Platform),
		SnapshotAt:              snapshotAt,
		Views:                   row.Views,
		Likes:                   row.Likes,
		Comments:                row.Comments,
		Shares:                  row.Shares,
		Reach:                   row.Reach,
		Saves:                   row.Saves,
		AvgViewDuration:         row.AvgViewDuration,
		RetentionRate:           row.RetentionRate,
		CompletionRate:          row.CompletionRate,
		TikTokRetentionScore:    row.TikTokRetentionScore,
		TikTokShareabilityScore: row.TikTokShareabilityScore,
	}, nil
}

// toPost aceita post_date como data ou timestamp; só o dia é usado
func toPost(row hosteddomain.PostRow) (domain.Post, error) {
	raw := row.PostDate
	if len(raw) > len("2006-01-02") {
		raw = raw[:len("2006-01-02")]
	}

	postDate, err := utils.ParseDate(raw)
	if err != nil {
		return domain.Post{}, fmt.Errorf("erro ao converter data do post %s: %w", row.ID, err)
	}

	post := domain.Post{
		ID:           row.ID,
		Name:         row.PostName,
		PostDate:     *postDate,
		Status:       row.Status,
		YouTubeURL:   row.YouTubeURL,
		TikTokURL:    row.TikTokURL,
		InstagramURL: row.InstagramURL,
	}
	if row.ArtistID != nil {
		post.ArtistID = *row.ArtistID
	}

	return post, nil
}
