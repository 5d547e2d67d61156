package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type QueryMetrics struct {
	QueriesTotal   metrics.Counter
	CacheHitsTotal metrics.Counter
}

func (m *QueryMetrics) Query(query string, cached bool) {
	m.QueriesTotal.With(LabelQuery, query).Add(1)
	if cached {
		m.CacheHitsTotal.With(LabelQuery, query).Add(1)
	}
}

func PromQueryMetrics() *QueryMetrics {
	return &QueryMetrics{
		QueriesTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: QuerySubsystem,
			Name:      "queries_total",
			Help:      "Total number of queries served.",
		}, []string{LabelQuery}),
		CacheHitsTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: QuerySubsystem,
			Name:      "cache_hits_total",
			Help:      "Total number of queries answered from the cache.",
		}, []string{LabelQuery}),
	}
}

func NopQueryMetrics() *QueryMetrics {
	return &QueryMetrics{
		QueriesTotal:   discard.NewCounter(),
		CacheHitsTotal: discard.NewCounter(),
	}
}
