package contract

import (
	"boscoin.io/polls/lib/store"
)

// Addr is an address that already passed API.AddrValidate.
type Addr string

func (a Addr) String() string {
	return string(a)
}

type Config struct {
	AdminAddress Addr `json:"admin_address" msgpack:"admin_address"`
}

type Poll struct {
	Question string `json:"question" msgpack:"question"`
	YesVotes uint64 `json:"yes_votes" msgpack:"yes_votes"`
	NoVotes  uint64 `json:"no_votes" msgpack:"no_votes"`
}

func NewPoll(question string) Poll {
	return Poll{Question: question}
}

// ContractInfo records which contract, at which version, owns the state.
type ContractInfo struct {
	Contract string `json:"contract" msgpack:"contract"`
	Version  string `json:"version" msgpack:"version"`
}

const (
	ConfigKey       = "config"
	PollsNamespace  = "polls"
	ContractInfoKey = "contract_info"
)

// State holds the handles of every store the contract owns. It carries no
// data itself; values live in the storage passed along with it.
type State struct {
	Config       store.Item
	ContractInfo store.Item
	Polls        store.Map
}

func NewState(codec store.Codec) *State {
	return &State{
		Config:       store.NewItem(ConfigKey, codec),
		ContractInfo: store.NewItem(ContractInfoKey, codec),
		Polls:        store.NewMap(PollsNamespace, codec),
	}
}

var DefaultState = NewState(store.DefaultCodec)
