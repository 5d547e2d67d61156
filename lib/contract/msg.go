package contract

import (
	"bytes"
	"encoding/json"
	"io"

	"boscoin.io/polls/lib/errors"
)

const (
	ChoiceYes = "yes"
	ChoiceNo  = "no"
)

type InstantiateMsg struct {
	AdminAddress string `json:"admin_address"`
}

type CreatePoll struct {
	Question string `json:"question"`
}

type Vote struct {
	Question string `json:"question"`
	Choice   string `json:"choice"`
}

// ExecuteMsg holds exactly one transaction variant, encoded as
// `{"create_poll": {...}}` or `{"vote": {...}}`.
type ExecuteMsg struct {
	CreatePoll *CreatePoll `json:"create_poll,omitempty"`
	Vote       *Vote       `json:"vote,omitempty"`
}

func (m ExecuteMsg) Action() string {
	switch {
	case m.CreatePoll != nil:
		return ActionCreatePoll
	case m.Vote != nil:
		return ActionVote
	}
	return ""
}

func (m ExecuteMsg) Validate() error {
	var n int
	if m.CreatePoll != nil {
		n++
		if len(m.CreatePoll.Question) < 1 {
			return errors.InvalidMessage.Clone().SetData("reason", "empty question")
		}
	}
	if m.Vote != nil {
		n++
	}

	switch {
	case n == 0:
		return errors.UnknownMessage.Clone()
	case n > 1:
		return errors.InvalidMessage.Clone().SetData("reason", "more than one variant")
	}
	return nil
}

type GetPoll struct {
	Question string `json:"question"`
}

type GetConfig struct{}

// QueryMsg holds exactly one query variant, encoded as
// `{"get_poll": {...}}` or `{"get_config": {}}`.
type QueryMsg struct {
	GetPoll   *GetPoll   `json:"get_poll,omitempty"`
	GetConfig *GetConfig `json:"get_config,omitempty"`
}

func (m QueryMsg) Validate() error {
	var n int
	if m.GetPoll != nil {
		n++
	}
	if m.GetConfig != nil {
		n++
	}

	switch {
	case n == 0:
		return errors.UnknownMessage.Clone()
	case n > 1:
		return errors.InvalidMessage.Clone().SetData("reason", "more than one variant")
	}
	return nil
}

// GetPollResponse.Poll is nil when no poll was created for the question.
type GetPollResponse struct {
	Poll *Poll `json:"poll"`
}

type ConfigResponse struct {
	AdminAddress string `json:"admin_address"`
}

func decodeMessage(b []byte, v interface{}) error {
	d := json.NewDecoder(bytes.NewReader(b))
	d.DisallowUnknownFields()
	if err := d.Decode(v); err != nil {
		return errors.InvalidMessage.Clone().SetData("reason", err.Error())
	}

	// a message is exactly one json value
	var extra json.RawMessage
	if err := d.Decode(&extra); err != io.EOF {
		return errors.InvalidMessage.Clone().SetData("reason", "trailing data after message")
	}
	return nil
}

func ParseInstantiateMsg(b []byte) (msg InstantiateMsg, err error) {
	err = decodeMessage(b, &msg)
	return
}

func ParseExecuteMsg(b []byte) (msg ExecuteMsg, err error) {
	if err = decodeMessage(b, &msg); err != nil {
		return
	}
	err = msg.Validate()
	return
}

func ParseQueryMsg(b []byte) (msg QueryMsg, err error) {
	if err = decodeMessage(b, &msg); err != nil {
		return
	}
	err = msg.Validate()
	return
}
