package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/posts-stats-api/internal/domain"
	"github.com/vfg2006/posts-stats-api/internal/usecases/analyzing"
	"github.com/vfg2006/posts-stats-api/pkg/apiErrors"
	"github.com/vfg2006/posts-stats-api/pkg/log"
	"github.com/vfg2006/posts-stats-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// statsQuery são os parâmetros aceitos por todas as rotas de estatísticas
type statsQuery struct {
	filters  domain.DashboardFilters
	platform domain.Platform
}

type TierGroupsResponse struct {
	AsOf      time.Time           `json:"as_of"`
	Platforms []PlatformTierGroup `json:"platforms"`
}

type PlatformTierGroup struct {
	Platform   domain.Platform    `json:"platform"`
	Name       string             `json:"name"`
	Loaded     bool               `json:"loaded"`
	Diagnostic string             `json:"diagnostic,omitempty"`
	Tiers      []domain.TierGroup `json:"tiers"`
}

type AveragesResponse struct {
	AsOf      time.Time         `json:"as_of"`
	Platforms []PlatformAverage `json:"platforms"`
}

type PlatformAverage struct {
	Platform   domain.Platform                         `json:"platform"`
	Name       string                                  `json:"name"`
	Loaded     bool                                    `json:"loaded"`
	Diagnostic string                                  `json:"diagnostic,omitempty"`
	Averages   map[string]domain.ArtistPlatformAverage `json:"averages"`
}

type StandoutsResponse struct {
	AsOf      time.Time                                     `json:"as_of"`
	Standouts map[domain.StandoutCategory][]domain.Standout `json:"standouts"`
	Errors    map[domain.Platform]string                    `json:"errors,omitempty"`
}

type RecentResponse struct {
	domain.RecentPosts
	Errors map[domain.Platform]string `json:"errors,omitempty"`
}

// GetPostsStats retorna o dashboard completo
func GetPostsStats(service analyzing.Analyzer) http.Handler {
	return statsHandler(service, "dashboard", func(d *domain.Dashboard, q statsQuery) any {
		if q.platform == "" {
			return d
		}
		filtered := *d
		filtered.Platforms = platformsFor(d.Platforms, q.platform)
		return &filtered
	})
}

// GetTierGroups retorna apenas os agrupamentos por faixa de seguidores
func GetTierGroups(service analyzing.Analyzer) http.Handler {
	return statsHandler(service, "tiers", func(d *domain.Dashboard, q statsQuery) any {
		response := TierGroupsResponse{AsOf: d.AsOf, Platforms: []PlatformTierGroup{}}
		for _, stats := range platformsFor(d.Platforms, q.platform) {
			response.Platforms = append(response.Platforms, PlatformTierGroup{
				Platform:   stats.Platform,
				Name:       stats.Name,
				Loaded:     stats.Loaded,
				Diagnostic: stats.Diagnostic,
				Tiers:      stats.Tiers,
			})
		}
		return response
	})
}

// GetArtistAverages retorna as médias móveis por artista
func GetArtistAverages(service analyzing.Analyzer) http.Handler {
	return statsHandler(service, "averages", func(d *domain.Dashboard, q statsQuery) any {
		response := AveragesResponse{AsOf: d.AsOf, Platforms: []PlatformAverage{}}
		for _, stats := range platformsFor(d.Platforms, q.platform) {
			response.Platforms = append(response.Platforms, PlatformAverage{
				Platform:   stats.Platform,
				Name:       stats.Name,
				Loaded:     stats.Loaded,
				Diagnostic: stats.Diagnostic,
				Averages:   stats.Averages,
			})
		}
		return response
	})
}

// GetStandouts retorna os posts que se destacaram em mais de uma plataforma
func GetStandouts(service analyzing.Analyzer) http.Handler {
	return statsHandler(service, "standouts", func(d *domain.Dashboard, _ statsQuery) any {
		return StandoutsResponse{AsOf: d.AsOf, Standouts: d.Standouts, Errors: d.Errors}
	})
}

// GetRecentPosts retorna o ranking de posts recentes
func GetRecentPosts(service analyzing.Analyzer) http.Handler {
	return statsHandler(service, "recent", func(d *domain.Dashboard, _ statsQuery) any {
		return RecentResponse{RecentPosts: d.Recent, Errors: d.Errors}
	})
}

func statsHandler(service analyzing.Analyzer, section string, view func(*domain.Dashboard, statsQuery) any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("section", section)

		query, err := parseStatsQuery(r.URL.Query())
		if err != nil {
			logger.WithError(err).Warn("stats: parâmetros inválidos")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		dashboard, err := service.GetDashboard(r.Context(), &query.filters)
		if err != nil {
			code, message := classifyError(err)
			logger.WithError(err).Error("stats: erro ao montar o dashboard")
			apiErrors.WriteError(w, code, message, nil)
			return
		}

		if len(dashboard.Errors) > 0 {
			logger.WithField("failed_platforms", len(dashboard.Errors)).Warn("stats: dashboard parcial")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(view(dashboard, query)); err != nil {
			logger.WithError(err).Error("stats: erro ao enviar resposta")
		}
	})
}

func parseStatsQuery(values url.Values) (statsQuery, error) {
	var query statsQuery

	var err error
	if query.filters.WindowDays, err = optionalInt(values, "window"); err != nil {
		return query, err
	}
	if query.filters.Page, err = optionalInt(values, "page"); err != nil {
		return query, err
	}
	if query.filters.PageSize, err = optionalInt(values, "page_size"); err != nil {
		return query, err
	}

	if raw := values.Get("as_of"); raw != "" {
		asOf, err := utils.ParseDate(raw)
		if err != nil {
			return query, fmt.Errorf("as_of must be a YYYY-MM-DD date: %q", raw)
		}
		query.filters.AsOf = asOf
	}

	if raw := values.Get("platform"); raw != "" {
		platform, ok := domain.ParsePlatform(raw)
		if !ok {
			return query, fmt.Errorf("unknown platform: %q", raw)
		}
		query.platform = platform
	}

	return query, nil
}

func optionalInt(values url.Values, key string) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %q", key, raw)
	}
	return n, nil
}

func classifyError(err error) (string, string) {
	switch {
	case errors.Is(err, analyzing.ErrInvalidWindow):
		return apiErrors.ErrInvalidWindow, fmt.Sprintf("window must be one of %v days", domain.RecencyWindows)
	case errors.Is(err, context.DeadlineExceeded):
		return apiErrors.ErrCommunication, "Snapshot store timed out"
	default:
		return apiErrors.ErrDatabaseOperation, "Unable to load posts statistics"
	}
}

func platformsFor(platforms []domain.PlatformStats, platform domain.Platform) []domain.PlatformStats {
	if platform == "" {
		return platforms
	}

	filtered := make([]domain.PlatformStats, 0, 1)
	for _, stats := range platforms {
		if stats.Platform == platform {
			filtered = append(filtered, stats)
		}
	}
	return filtered
}
