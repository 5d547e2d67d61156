package contract

import (
	"time"

	"boscoin.io/polls/lib/store"
)

// Deps is what a query sees: read-only storage.
type Deps struct {
	Storage store.Reader
	API     API
	State   *State
}

// DepsMut is what a transaction sees. The host commits every write made
// through Storage when the handler returns nil, and discards them otherwise.
type DepsMut struct {
	Storage store.ReadWriter
	API     API
	State   *State
}

func (d DepsMut) AsRef() Deps {
	return Deps{Storage: d.Storage, API: d.API, State: d.State}
}

func (d Deps) state() *State {
	if d.State == nil {
		return DefaultState
	}
	return d.State
}

func (d DepsMut) state() *State {
	return d.AsRef().state()
}

type BlockInfo struct {
	Height uint64
	Time   time.Time
}

type Env struct {
	ChainID string
	Block   BlockInfo
}

// MessageInfo carries the already verified sender of a transaction.
type MessageInfo struct {
	Sender string
}
