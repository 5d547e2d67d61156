package metrics

// InitPrometheusMetrics replaces the discarding metrics with ones registered
// to the default prometheus registry. Call it once per process.
func InitPrometheusMetrics() {
	Version = PromVersion()
	Contract = PromContractMetrics()
	Query = PromQueryMetrics()

	SetVersion()
}
