package runtime

import (
	"encoding/json"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"boscoin.io/polls/lib/common"
	"boscoin.io/polls/lib/common/observer"
	"boscoin.io/polls/lib/contract"
	"boscoin.io/polls/lib/errors"
	"boscoin.io/polls/lib/metrics"
	"boscoin.io/polls/pkg/rawdb"
)

// Runtime is the in-process host of the poll contract. It runs one
// transaction at a time, each inside its own storage transaction which is
// committed only when the contract accepts the message.
type Runtime struct {
	sync.RWMutex

	db     *rawdb.LevelDb
	config Config
	state  *contract.State
	cache  *lru.Cache
	height uint64
}

func NewRuntime(db *rawdb.LevelDb, config Config) (*Runtime, error) {
	if config.API == nil {
		config.API = contract.KeypairAPI{}
	}
	if config.QueryCacheSize < 1 {
		config.QueryCacheSize = DefaultQueryCacheSize
	}

	cache, err := lru.New(config.QueryCacheSize)
	if err != nil {
		return nil, err
	}

	return &Runtime{
		db:     db,
		config: config,
		state:  contract.NewState(config.Codec),
		cache:  cache,
	}, nil
}

func (r *Runtime) Height() uint64 {
	r.RLock()
	defer r.RUnlock()

	return r.height
}

func (r *Runtime) env() contract.Env {
	return contract.Env{
		ChainID: r.config.ChainID,
		Block: contract.BlockInfo{
			Height: r.height + 1,
			Time:   time.Now().UTC(),
		},
	}
}

func (r *Runtime) Instantiate(info contract.MessageInfo, raw []byte) (*contract.Response, error) {
	msg, err := contract.ParseInstantiateMsg(raw)
	if err != nil {
		return nil, err
	}

	return r.transact(contract.ActionInstantiate, info.Sender, raw, func(deps contract.DepsMut, env contract.Env) (*contract.Response, error) {
		if instantiated, err := r.state.ContractInfo.Exists(deps.Storage); err != nil {
			return nil, err
		} else if instantiated {
			return nil, errors.ContractAlreadyInstantiated.Clone()
		}

		return contract.Instantiate(deps, env, info, msg)
	})
}

func (r *Runtime) Execute(info contract.MessageInfo, raw []byte) (*contract.Response, error) {
	msg, err := contract.ParseExecuteMsg(raw)
	if err != nil {
		return nil, err
	}

	return r.transact(msg.Action(), info.Sender, raw, func(deps contract.DepsMut, env contract.Env) (*contract.Response, error) {
		return contract.Execute(deps, env, info, msg)
	})
}

type txFunc func(contract.DepsMut, contract.Env) (*contract.Response, error)

// txResources maps contract actions to the resources of TxObserver events.
var txResources = map[string]string{
	contract.ActionInstantiate: observer.ResourceInstantiate,
	contract.ActionCreatePoll:  observer.ResourceCreatePoll,
	contract.ActionVote:        observer.ResourceVote,
}

// txRecord identifies a transaction in the logs.
type txRecord struct {
	Action  string
	Sender  string
	Message []byte
	Height  uint64
}

func (r *Runtime) transact(action, sender string, raw []byte, f txFunc) (resp *contract.Response, err error) {
	r.Lock()
	defer r.Unlock()

	started := time.Now()
	defer func() {
		status := metrics.StatusCommitted
		if err != nil {
			status = metrics.StatusRejected
		}
		metrics.Contract.Tx(action, status, time.Since(started).Seconds())
	}()

	hash, err := common.MakeObjectHashString(txRecord{
		Action:  action,
		Sender:  sender,
		Message: raw,
		Height:  r.height + 1,
	})
	if err != nil {
		return nil, err
	}

	ts, err := r.db.OpenTransaction()
	if err != nil {
		return nil, err
	}

	deps := contract.DepsMut{Storage: ts, API: r.config.API, State: r.state}
	if resp, err = f(deps, r.env()); err != nil {
		ts.Discard()
		log.Debug("transaction rejected", "tx", hash, "action", action, "sender", sender, "code", errors.Code(err), "error", err)
		return nil, err
	}

	if err = ts.Commit(); err != nil {
		ts.Discard()
		log.Error("failed to commit transaction", "tx", hash, "action", action, "error", err)
		return nil, err
	}

	r.height++
	r.cache.Purge()

	log.Debug("transaction committed", "tx", hash, "action", action, "sender", sender, "height", r.height)

	if resource, found := txResources[action]; found {
		observer.TxObserver.Trigger(observer.NewEvent(resource, observer.ConditionAll, "").String(), resp)
		if len(sender) > 0 {
			observer.TxObserver.Trigger(observer.NewEvent(resource, observer.ConditionSender, sender).String(), resp)
		}
	}

	return resp, nil
}

// Query answers raw against the committed state. Answers are cached until
// the next committed transaction.
func (r *Runtime) Query(raw []byte) ([]byte, error) {
	msg, err := contract.ParseQueryMsg(raw)
	if err != nil {
		return nil, err
	}

	name := "get_config"
	if msg.GetPoll != nil {
		name = "get_poll"
	}

	key, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	r.RLock()
	defer r.RUnlock()

	if cached, ok := r.cache.Get(string(key)); ok {
		metrics.Query.Query(name, true)
		return append([]byte(nil), cached.([]byte)...), nil
	}

	deps := contract.Deps{Storage: r.db, API: r.config.API, State: r.state}
	b, err := contract.Query(deps, r.env(), msg)
	if err != nil {
		return nil, err
	}

	r.cache.Add(string(key), append([]byte(nil), b...))
	metrics.Query.Query(name, false)

	return b, nil
}

// Polls returns every poll in ascending question order.
func (r *Runtime) Polls() ([]contract.Poll, error) {
	r.RLock()
	defer r.RUnlock()

	var polls []contract.Poll
	err := r.state.Polls.Walk(r.db, func(key string, value []byte) (bool, error) {
		var poll contract.Poll
		if err := r.state.Polls.Decode(value, &poll); err != nil {
			return false, err
		}
		polls = append(polls, poll)
		return true, nil
	})

	return polls, err
}

func (r *Runtime) ContractInfo() (contract.ContractInfo, error) {
	r.RLock()
	defer r.RUnlock()

	return contract.QueryContractInfo(contract.Deps{Storage: r.db, API: r.config.API, State: r.state})
}
