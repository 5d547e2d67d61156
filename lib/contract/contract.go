package contract

import (
	"encoding/json"

	"boscoin.io/polls/lib/errors"
	"boscoin.io/polls/lib/version"
)

const ContractName = "boscoin.io:polls"

func Instantiate(deps DepsMut, env Env, info MessageInfo, msg InstantiateMsg) (*Response, error) {
	admin, err := deps.API.AddrValidate(msg.AdminAddress)
	if err != nil {
		log.Debug("invalid admin address", "address", msg.AdminAddress, "error", err)
		return nil, err
	}

	state := deps.state()
	contractInfo := ContractInfo{Contract: ContractName, Version: version.Version}
	if err := state.ContractInfo.Save(deps.Storage, contractInfo); err != nil {
		return nil, err
	}
	if err := state.Config.Save(deps.Storage, Config{AdminAddress: admin}); err != nil {
		return nil, err
	}

	log.Debug("instantiated", "admin", admin, "sender", info.Sender, "height", env.Block.Height)

	return NewResponse().AddAttribute("action", ActionInstantiate), nil
}

func Execute(deps DepsMut, env Env, info MessageInfo, msg ExecuteMsg) (*Response, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	switch {
	case msg.CreatePoll != nil:
		return ExecuteCreatePoll(deps, msg.CreatePoll.Question)
	case msg.Vote != nil:
		return ExecuteVote(deps, msg.Vote.Question, msg.Vote.Choice)
	}

	return nil, errors.UnknownMessage.Clone()
}

func ExecuteCreatePoll(deps DepsMut, question string) (*Response, error) {
	state := deps.state()

	exists, err := state.Polls.Has(deps.Storage, question)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.DuplicateKeyError.Clone().SetData("question", question)
	}

	if err := state.Polls.Save(deps.Storage, question, NewPoll(question)); err != nil {
		return nil, err
	}

	log.Debug("poll created", "question", question)

	return NewResponse().AddAttribute("action", ActionCreatePoll), nil
}

func ExecuteVote(deps DepsMut, question, choice string) (*Response, error) {
	state := deps.state()

	var poll Poll
	found, err := state.Polls.MayLoad(deps.Storage, question, &poll)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFoundError.Clone().SetData("question", question)
	}

	switch choice {
	case ChoiceYes:
		poll.YesVotes++
	case ChoiceNo:
		poll.NoVotes++
	default:
		return nil, errors.InvalidChoiceError.Clone().
			SetData("question", question).
			SetData("choice", choice)
	}

	if err := state.Polls.Save(deps.Storage, question, poll); err != nil {
		return nil, err
	}

	log.Debug("voted", "question", question, "choice", choice, "yes", poll.YesVotes, "no", poll.NoVotes)

	return NewResponse().AddAttribute("action", ActionVote), nil
}

// Query answers msg with its JSON encoded response.
func Query(deps Deps, env Env, msg QueryMsg) ([]byte, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	var response interface{}
	switch {
	case msg.GetPoll != nil:
		poll, err := QueryPoll(deps, msg.GetPoll.Question)
		if err != nil {
			return nil, err
		}
		response = GetPollResponse{Poll: poll}
	case msg.GetConfig != nil:
		config, err := QueryConfig(deps)
		if err != nil {
			return nil, err
		}
		response = ConfigResponse{AdminAddress: config.AdminAddress.String()}
	}

	return json.Marshal(response)
}

// QueryPoll returns nil, not an error, for a question nobody created.
func QueryPoll(deps Deps, question string) (*Poll, error) {
	var poll Poll
	found, err := deps.state().Polls.MayLoad(deps.Storage, question, &poll)
	if err != nil || !found {
		return nil, err
	}

	return &poll, nil
}

// QueryConfig fails with StorageRecordDoesNotExist before instantiation.
func QueryConfig(deps Deps) (Config, error) {
	var config Config
	err := deps.state().Config.Load(deps.Storage, &config)
	return config, err
}

func QueryContractInfo(deps Deps) (ContractInfo, error) {
	var info ContractInfo
	err := deps.state().ContractInfo.Load(deps.Storage, &info)
	return info, err
}
