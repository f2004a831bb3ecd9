package hostedclient

import (
	"context"
	"net/url"
	"strings"

	hosteddomain "github.com/vfg2006/posts-stats-api/infrastructure/integrator/hosted/domain"
)

type SnapshotParams struct {
	PostIDs  []string
	Platform string
}

func (c *HostedClient) GetSnapshots(ctx context.Context, params SnapshotParams, offset, limit int) ([]hosteddomain.SnapshotRow, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("post_id", inFilter(params.PostIDs))
	query.Set("platform", "eq."+params.Platform)
	query.Set("order", "snapshot_at.asc,id.asc")

	rows := make([]hosteddomain.SnapshotRow, 0)
	if err := c.getRange(ctx, c.cfg.SnapshotsTable, query, offset, limit, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// inFilter monta o operador in.(...) com cada valor entre aspas
func inFilter(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ReplaceAll(v, `\`, `\\`)
		v = strings.ReplaceAll(v, `"`, `\"`)
		quoted = append(quoted, `"`+v+`"`)
	}

	return "in.(" + strings.Join(quoted, ",") + ")"
}
