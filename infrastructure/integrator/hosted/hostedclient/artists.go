package hostedclient

import (
	"context"
	"net/url"

	hosteddomain "github.com/vfg2006/posts-stats-api/infrastructure/integrator/hosted/domain"
)

func (c *HostedClient) GetArtists(ctx context.Context, offset, limit int) ([]hosteddomain.ArtistRow, error) {
	query := url.Values{}
	query.Set("select", "id,name,youtube_followers,tiktok_followers,ig_followers")
	query.Set("order", "name.asc")

	rows := make([]hosteddomain.ArtistRow, 0)
	if err := c.getRange(ctx, c.cfg.ArtistsTable, query, offset, limit, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}
