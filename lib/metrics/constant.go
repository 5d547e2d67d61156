package metrics

const (
	Namespace         = "polls"
	ContractSubsystem = "contract"
	QuerySubsystem    = "query"
)

const (
	LabelAction = "action"
	LabelStatus = "status"
	LabelQuery  = "query"

	StatusCommitted = "committed"
	StatusRejected  = "rejected"
)
