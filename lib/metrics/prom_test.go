package metrics

import (
	"testing"

	stdprometheus "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestInitPrometheusMetrics(t *testing.T) {
	InitPrometheusMetrics()

	Contract.Tx("vote", StatusCommitted, 0.01)
	Contract.Tx("vote", StatusRejected, 0.01)
	Query.Query("get_poll", true)

	families, err := stdprometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}

	require.True(t, names["polls_version"])
	require.True(t, names["polls_contract_txs_total"])
	require.True(t, names["polls_contract_tx_duration_seconds"])
	require.True(t, names["polls_query_queries_total"])
	require.True(t, names["polls_query_cache_hits_total"])
}

func TestNopMetrics(t *testing.T) {
	m := NopContractMetrics()
	m.Tx("create_poll", StatusCommitted, 1)

	q := NopQueryMetrics()
	q.Query("get_config", false)
}
