package metrics

var (
	Contract = NopContractMetrics()
	Query    = NopQueryMetrics()
)
