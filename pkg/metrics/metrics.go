// Package metrics expõe as métricas Prometheus do serviço
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "posts_stats"

// Registry agrupa as métricas num registro próprio, sem tocar no registro global
type Registry struct {
	registry *prometheus.Registry

	SnapshotPages         *prometheus.CounterVec
	SnapshotRows          *prometheus.CounterVec
	SnapshotFetchDuration *prometheus.HistogramVec
	PlatformFailures      *prometheus.CounterVec
	DashboardBuilds       *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		SnapshotPages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "snapshot_pages_total",
				Help:      "Páginas de snapshots requisitadas ao armazenamento",
			},
			[]string{"platform", "result"},
		),

		SnapshotRows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "snapshot_rows_total",
				Help:      "Linhas de snapshots recebidas em buscas completas",
			},
			[]string{"platform"},
		),

		SnapshotFetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "snapshot_fetch_duration_seconds",
				Help:      "Duração da busca paginada de snapshots de uma plataforma",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"platform", "result"},
		),

		PlatformFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "platform_failures_total",
				Help:      "Plataformas que ficaram fora do dashboard por falha na busca",
			},
			[]string{"platform"},
		),

		DashboardBuilds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dashboard_builds_total",
				Help:      "Montagens do dashboard de estatísticas de posts",
			},
			[]string{"result"},
		),
	}

	r.registry.MustRegister(
		r.SnapshotPages,
		r.SnapshotRows,
		r.SnapshotFetchDuration,
		r.PlatformFailures,
		r.DashboardBuilds,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Handler serve o endpoint /metrics
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
