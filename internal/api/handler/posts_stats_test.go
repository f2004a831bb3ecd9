package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/posts-stats-api/internal/api/handler/router"
	"github.com/vfg2006/posts-stats-api/internal/domain"
	"github.com/vfg2006/posts-stats-api/internal/usecases/analyzing"
	"github.com/vfg2006/posts-stats-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/posts-stats-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var asOf = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

func sampleDashboard() *domain.Dashboard {
	return &domain.Dashboard{
		GeneratedAt: asOf,
		AsOf:        asOf,
		Platforms: []domain.PlatformStats{
			{
				Platform:  domain.PlatformYouTube,
				Name:      "YouTube",
				Loaded:    true,
				PostCount: 1,
				Tiers: []domain.TierGroup{
					{Tier: "100-999 followers", TotalPosts: 1, Page: 1, PageSize: 20, TotalPages: 1},
				},
				Averages: map[string]domain.ArtistPlatformAverage{
					"a1": {ArtistID: "a1", Platform: domain.PlatformYouTube, PostCount: 1},
				},
			},
			{
				Platform:   domain.PlatformTikTok,
				Name:       "TikTok",
				Diagnostic: "TikTok data is unavailable right now (ref abc123)",
				Tiers:      []domain.TierGroup{},
				Averages:   map[string]domain.ArtistPlatformAverage{},
			},
		},
		Standouts: map[domain.StandoutCategory][]domain.Standout{
			domain.CategoryViews: {{PostID: "p1", Score: 1.5}},
		},
		Recent: domain.RecentPosts{
			WindowDays: 7,
			Posts:      []domain.RecentPost{{PostID: "p1", TotalViews: 1000}},
		},
		Errors: map[domain.Platform]string{
			domain.PlatformTikTok: "TikTok data is unavailable right now (ref abc123)",
		},
	}
}

func newStatsRouter(service analyzing.Analyzer) http.Handler {
	return router.New(router.WithRoutes(PostsStats(service)...))
}

func TestPostsStats_Filtros(t *testing.T) {
	log.L = log.Nop()

	tests := []struct {
		name        string
		query       string
		wantFilters domain.DashboardFilters
	}{
		{
			name:        "sem parâmetros usa os padrões do serviço",
			query:       "",
			wantFilters: domain.DashboardFilters{},
		},
		{
			name:        "janela e paginação",
			query:       "?window=14&page=2&page_size=50",
			wantFilters: domain.DashboardFilters{WindowDays: 14, Page: 2, PageSize: 50},
		},
		{
			name:        "data de referência",
			query:       "?as_of=2024-06-03",
			wantFilters: domain.DashboardFilters{AsOf: &asOf},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAnalyzer(ctrl)

			service.EXPECT().
				GetDashboard(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, filters *domain.DashboardFilters) (*domain.Dashboard, error) {
					assert.Equal(t, tt.wantFilters.WindowDays, filters.WindowDays)
					assert.Equal(t, tt.wantFilters.Page, filters.Page)
					assert.Equal(t, tt.wantFilters.PageSize, filters.PageSize)
					if tt.wantFilters.AsOf == nil {
						assert.Nil(t, filters.AsOf)
					} else {
						require.NotNil(t, filters.AsOf)
						assert.True(t, tt.wantFilters.AsOf.Equal(*filters.AsOf))
					}
					return sampleDashboard(), nil
				})

			rec := httptest.NewRecorder()
			newStatsRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/posts/stats"+tt.query, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestPostsStats_ParametrosInvalidos(t *testing.T) {
	log.L = log.Nop()

	queries := []string{
		"?window=semana",
		"?page=um",
		"?page_size=x",
		"?as_of=03/06/2024",
		"?platform=myspace",
	}

	for _, query := range queries {
		t.Run(query, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAnalyzer(ctrl)
			service.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Times(0)

			rec := httptest.NewRecorder()
			newStatsRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/posts/stats"+query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VAL_003")
		})
	}
}

func TestPostsStats_Erros(t *testing.T) {
	log.L = log.Nop()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "janela fora das permitidas",
			err:        fmt.Errorf("%w: 30 dias", analyzing.ErrInvalidWindow),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VAL_004",
		},
		{
			name:       "timeout do armazenamento",
			err:        fmt.Errorf("erro ao buscar posts: %w", context.DeadlineExceeded),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "SRV_004",
		},
		{
			name:       "falha ao listar artistas",
			err:        errors.New("erro ao buscar artistas: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "SRV_002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAnalyzer(ctrl)
			service.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			newStatsRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/posts/stats?window=30", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestPostsStats_Secoes(t *testing.T) {
	log.L = log.Nop()

	t.Run("tiers filtrados por plataforma", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAnalyzer(ctrl)
		service.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Return(sampleDashboard(), nil)

		rec := httptest.NewRecorder()
		newStatsRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/posts/stats/tiers?platform=youtube", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var response TierGroupsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.Len(t, response.Platforms, 1)
		assert.Equal(t, domain.PlatformYouTube, response.Platforms[0].Platform)
		assert.Equal(t, "100-999 followers", response.Platforms[0].Tiers[0].Tier)
	})

	t.Run("averages mantém o diagnóstico da plataforma com falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAnalyzer(ctrl)
		service.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Return(sampleDashboard(), nil)

		rec := httptest.NewRecorder()
		newStatsRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/posts/stats/averages", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var response AveragesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.Len(t, response.Platforms, 2)
		assert.Contains(t, response.Platforms[0].Averages, "a1")
		assert.False(t, response.Platforms[1].Loaded)
		assert.Contains(t, response.Platforms[1].Diagnostic, "ref abc123")
	})

	t.Run("standouts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAnalyzer(ctrl)
		service.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Return(sampleDashboard(), nil)

		rec := httptest.NewRecorder()
		newStatsRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/posts/stats/standouts", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var response StandoutsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.Len(t, response.Standouts[domain.CategoryViews], 1)
		assert.Equal(t, "p1", response.Standouts[domain.CategoryViews][0].PostID)
		assert.Contains(t, response.Errors, domain.PlatformTikTok)
	})

	t.Run("recent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAnalyzer(ctrl)
		service.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Return(sampleDashboard(), nil)

		rec := httptest.NewRecorder()
		newStatsRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/posts/stats/recent?window=7", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var response RecentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, 7, response.WindowDays)
		require.Len(t, response.Posts, 1)
		assert.Equal(t, float64(1000), response.Posts[0].TotalViews)
	})
}
