package cmd

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"boscoin.io/polls/lib/contract"
	"boscoin.io/polls/lib/runtime"
)

var errEmptyValue = errors.New("empty value")

var createPollCmd = &cobra.Command{
	Use:   "create-poll <question>",
	Short: "Create a poll",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return execute(contract.ExecuteMsg{
			CreatePoll: &contract.CreatePoll{Question: args[0]},
		})
	},
}

var voteCmd = &cobra.Command{
	Use:   "vote <question> <yes|no>",
	Short: "Vote on a poll",
	Args:  cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		return execute(contract.ExecuteMsg{
			Vote: &contract.Vote{Question: args[0], Choice: args[1]},
		})
	},
}

func init() {
	rootCmd.AddCommand(createPollCmd)
	rootCmd.AddCommand(voteCmd)
}

func execute(msg contract.ExecuteMsg) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return withRuntime(func(rt *runtime.Runtime) (interface{}, error) {
		return rt.Execute(senderInfo(), raw)
	})
}
