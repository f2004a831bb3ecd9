package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/posts-stats-api/internal/domain"
	"github.com/vfg2006/posts-stats-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func reportDashboard() *domain.Dashboard {
	return &domain.Dashboard{
		Platforms: []domain.PlatformStats{
			{
				Platform: domain.PlatformYouTube,
				Loaded:   true,
				Tiers:    []domain.TierGroup{{Tier: "1000+ followers", TotalPosts: 2}},
				Averages: map[string]domain.ArtistPlatformAverage{"a1": {ArtistID: "a1", PostCount: 2}},
			},
		},
		Standouts: map[domain.StandoutCategory][]domain.Standout{domain.CategoryViews: {}},
		Recent:    domain.RecentPosts{WindowDays: 14, Posts: []domain.RecentPost{}},
	}
}

func TestRunReport_Secoes(t *testing.T) {
	tests := []struct {
		section string
		want    string
	}{
		{section: "all", want: `"platforms"`},
		{section: "tiers", want: `"1000+ followers"`},
		{section: "averages", want: `"post_count": 2`},
		{section: "standouts", want: `"views"`},
		{section: "recent", want: `"window_days": 14`},
	}

	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			analyzer := mocks.NewMockAnalyzer(ctrl)
			analyzer.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Return(reportDashboard(), nil)

			var out bytes.Buffer
			err := runReport(context.Background(), analyzer, reportOptions{section: tt.section, page: 1}, &out)

			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestRunReport_RepassaFiltros(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mocks.NewMockAnalyzer(ctrl)

	analyzer.EXPECT().
		GetDashboard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters *domain.DashboardFilters) (*domain.Dashboard, error) {
			assert.Equal(t, 14, filters.WindowDays)
			assert.Equal(t, 2, filters.Page)
			assert.Equal(t, 5, filters.PageSize)
			require.NotNil(t, filters.AsOf)
			assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), *filters.AsOf)
			return reportDashboard(), nil
		})

	opts := reportOptions{window: 14, section: "recent", asOf: "2024-06-03", page: 2, pageSize: 5}
	require.NoError(t, runReport(context.Background(), analyzer, opts, &bytes.Buffer{}))
}

func TestRunReport_Erros(t *testing.T) {
	t.Run("seção desconhecida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		analyzer := mocks.NewMockAnalyzer(ctrl)

		err := runReport(context.Background(), analyzer, reportOptions{section: "graficos"}, &bytes.Buffer{})
		assert.ErrorContains(t, err, "graficos")
	})

	t.Run("data inválida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		analyzer := mocks.NewMockAnalyzer(ctrl)

		err := runReport(context.Background(), analyzer, reportOptions{section: "all", asOf: "ontem"}, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("falha ao montar o dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		analyzer := mocks.NewMockAnalyzer(ctrl)
		errStore := errors.New("erro ao buscar artistas")
		analyzer.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Return(nil, errStore)

		err := runReport(context.Background(), analyzer, reportOptions{section: "all"}, &bytes.Buffer{})
		assert.ErrorIs(t, err, errStore)
	})
}
