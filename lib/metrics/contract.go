package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type ContractMetrics struct {
	TxsTotal          metrics.Counter
	TxDurationSeconds metrics.Histogram
}

func (m *ContractMetrics) Tx(action, status string, seconds float64) {
	m.TxsTotal.With(LabelAction, action, LabelStatus, status).Add(1)
	m.TxDurationSeconds.With(LabelAction, action, LabelStatus, status).Observe(seconds)
}

func PromContractMetrics() *ContractMetrics {
	return &ContractMetrics{
		TxsTotal: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: ContractSubsystem,
			Name:      "txs_total",
			Help:      "Total number of transactions, by action and status.",
		}, []string{LabelAction, LabelStatus}),
		TxDurationSeconds: prometheus.NewSummaryFrom(stdprometheus.SummaryOpts{
			Namespace: Namespace,
			Subsystem: ContractSubsystem,
			Name:      "tx_duration_seconds",
			Help:      "Time spent to execute and commit a transaction.",
		}, []string{LabelAction, LabelStatus}),
	}
}

func NopContractMetrics() *ContractMetrics {
	return &ContractMetrics{
		TxsTotal:          discard.NewCounter(),
		TxDurationSeconds: discard.NewHistogram(),
	}
}
