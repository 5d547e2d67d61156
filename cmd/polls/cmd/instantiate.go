package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"boscoin.io/polls/lib/contract"
	"boscoin.io/polls/lib/runtime"
)

var flagAdmin string

var instantiateCmd = &cobra.Command{
	Use:   "instantiate",
	Short: "Instantiate the contract with an admin address",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		if len(flagAdmin) < 1 {
			return &flagError{name: "--admin", err: errEmptyValue}
		}

		raw, err := json.Marshal(contract.InstantiateMsg{AdminAddress: flagAdmin})
		if err != nil {
			return err
		}

		return withRuntime(func(rt *runtime.Runtime) (interface{}, error) {
			return rt.Instantiate(senderInfo(), raw)
		})
	},
}

func init() {
	instantiateCmd.Flags().StringVar(&flagAdmin, "admin", "", "admin address")
	rootCmd.AddCommand(instantiateCmd)
}
