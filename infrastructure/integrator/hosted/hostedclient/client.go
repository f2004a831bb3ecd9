package hostedclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	hosteddomain "github.com/vfg2006/posts-stats-api/infrastructure/integrator/hosted/domain"
	"github.com/vfg2006/posts-stats-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetSnapshots(ctx context.Context, params SnapshotParams, offset, limit int) ([]hosteddomain.SnapshotRow, error)
	GetPosts(ctx context.Context, offset, limit int) ([]hosteddomain.PostRow, error)
	GetArtists(ctx context.Context, offset, limit int) ([]hosteddomain.ArtistRow, error)
}

type HostedClient struct {
	httpClient *http.Client
	cfg        config.Hosted
}

func NewClient(cfg config.Hosted) Client {
	return &HostedClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg: cfg,
	}
}

// getRange busca as linhas [offset, offset+limit) de uma tabela usando o cabeçalho Range.
// 416 significa que o offset passou do fim da tabela e resulta em página vazia.
func (c *HostedClient) getRange(ctx context.Context, table string, query url.Values, offset, limit int, out any) error {
	endpoint, err := url.Parse(c.cfg.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/rest/v1", table)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("apikey", c.cfg.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Range-Unit", "items")
	req.Header.Set("Range", strconv.Itoa(offset)+"-"+strconv.Itoa(offset+limit-1))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusPartialContent:
	case http.StatusRequestedRangeNotSatisfiable:
		return nil
	default:
		var errResp hosteddomain.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("requisição falhou com status %s: %w", resp.Status, &errResp)
		}
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
