package observer

import (
	"github.com/GianlucaGuarini/go-observable"
)

// TxObserver is triggered after every committed transaction against the
// contract state. go-observable splits event names on whitespace, so ids
// must not contain any.
var TxObserver = observable.New()

const (
	ResourceInstantiate = "instantiate"
	ResourceCreatePoll  = "create_poll"
	ResourceVote        = "vote"
	ConditionAll        = "*"
	ConditionSender     = "sender"
)

type Event struct {
	Resource  string `json:"resource"`
	Condition string `json:"condition"`
	Id        string `json:"id"`
}

func NewEvent(resource, condition, id string) Event {
	return Event{
		Resource:  resource,
		Condition: condition,
		Id:        id,
	}
}

func (e Event) String() string {
	toStr := e.Resource + "-"
	if e.Condition == ConditionAll {
		toStr += e.Condition
	} else {
		toStr += e.Condition + "="
		toStr += e.Id
	}
	return toStr
}
