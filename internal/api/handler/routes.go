package handler

import (
	"net/http"

	"github.com/vfg2006/posts-stats-api/internal/api/handler/router"
	"github.com/vfg2006/posts-stats-api/internal/usecases/analyzing"
)

func Healthcheck(pinger Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(pinger),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func PostsStats(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/posts/stats",
			Method:  http.MethodGet,
			Handler: GetPostsStats(service),
		},
		{
			Path:    "/v1/posts/stats/tiers",
			Method:  http.MethodGet,
			Handler: GetTierGroups(service),
		},
		{
			Path:    "/v1/posts/stats/averages",
			Method:  http.MethodGet,
			Handler: GetArtistAverages(service),
		},
		{
			Path:    "/v1/posts/stats/standouts",
			Method:  http.MethodGet,
			Handler: GetStandouts(service),
		},
		{
			Path:    "/v1/posts/stats/recent",
			Method:  http.MethodGet,
			Handler: GetRecentPosts(service),
		},
	}
}
