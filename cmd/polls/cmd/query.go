package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"boscoin.io/polls/lib/contract"
	"boscoin.io/polls/lib/runtime"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the contract state",
	Run: func(c *cobra.Command, args []string) {
		if len(args) < 1 {
			c.Usage()
		}
	},
}

var queryPollCmd = &cobra.Command{
	Use:   "poll <question>",
	Short: "Show a poll; `{\"poll\": null}` when it does not exist",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		var resp contract.GetPollResponse
		return query(contract.QueryMsg{GetPoll: &contract.GetPoll{Question: args[0]}}, &resp)
	},
}

var queryConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the contract configuration",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		var resp contract.ConfigResponse
		return query(contract.QueryMsg{GetConfig: &contract.GetConfig{}}, &resp)
	},
}

var queryContractInfoCmd = &cobra.Command{
	Use:   "contract-info",
	Short: "Show the contract name and version stored at instantiation",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		return withRuntime(func(rt *runtime.Runtime) (interface{}, error) {
			return rt.ContractInfo()
		})
	},
}

var pollsCmd = &cobra.Command{
	Use:   "polls",
	Short: "List every poll",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		return withRuntime(func(rt *runtime.Runtime) (interface{}, error) {
			polls, err := rt.Polls()
			if polls == nil {
				polls = []contract.Poll{}
			}
			return polls, err
		})
	},
}

func init() {
	queryCmd.AddCommand(queryPollCmd)
	queryCmd.AddCommand(queryConfigCmd)
	queryCmd.AddCommand(queryContractInfoCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(pollsCmd)
}

// query decodes the answer into resp, so every output format sees the same
// fields.
func query(msg contract.QueryMsg, resp interface{}) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return withRuntime(func(rt *runtime.Runtime) (interface{}, error) {
		b, err := rt.Query(raw)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(b, resp); err != nil {
			return nil, err
		}
		return resp, nil
	})
}
