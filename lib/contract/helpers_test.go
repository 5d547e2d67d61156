package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"boscoin.io/polls/lib/store"
	"boscoin.io/polls/pkg/rawdb"
)

const testQuestion = "Do you like grapes?"

func mockDependencies() DepsMut {
	return DepsMut{
		Storage: rawdb.NewMemoryDb(),
		API:     MockAPI{},
		State:   NewState(store.DefaultCodec),
	}
}

func mockEnv() Env {
	return Env{
		ChainID: "polls-testing",
		Block:   BlockInfo{Height: 12345, Time: time.Unix(1571797419, 0).UTC()},
	}
}

func mockInfo(sender string) MessageInfo {
	return MessageInfo{Sender: sender}
}

func instantiate(t *testing.T, deps DepsMut, admin string) {
	_, err := Instantiate(deps, mockEnv(), mockInfo(admin), InstantiateMsg{AdminAddress: admin})
	require.NoError(t, err)
}

func createPoll(t *testing.T, deps DepsMut, question string) {
	_, err := Execute(deps, mockEnv(), mockInfo("addr1"), ExecuteMsg{CreatePoll: &CreatePoll{Question: question}})
	require.NoError(t, err)
}

func vote(deps DepsMut, question, choice string) (*Response, error) {
	return Execute(deps, mockEnv(), mockInfo("addr1"), ExecuteMsg{Vote: &Vote{Question: question, Choice: choice}})
}

func queryPoll(t *testing.T, deps DepsMut, question string) GetPollResponse {
	b, err := Query(deps.AsRef(), mockEnv(), QueryMsg{GetPoll: &GetPoll{Question: question}})
	require.NoError(t, err)

	var resp GetPollResponse
	require.NoError(t, decodeMessage(b, &resp))
	return resp
}
