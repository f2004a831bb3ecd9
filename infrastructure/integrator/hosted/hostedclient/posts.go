package hostedclient

import (
	"context"
	"net/url"

	hosteddomain "github.com/vfg2006/posts-stats-api/infrastructure/integrator/hosted/domain"
	"github.com/vfg2006/posts-stats-api/internal/domain"
)

func (c *HostedClient) GetPosts(ctx context.Context, offset, limit int) ([]hosteddomain.PostRow, error) {
	query := url.Values{}
	query.Set("select", "id,post_name,post_date,status,artist_id,youtube_url,tiktok_url,instagram_url")
	query.Set("status", "eq."+domain.PostStatusPosted)
	query.Set("order", "post_date.desc,id.asc")

	rows := make([]hosteddomain.PostRow, 0)
	if err := c.getRange(ctx, c.cfg.PostsTable, query, offset, limit, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}
