package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/stellar/go/keypair"

	cmdcommon "boscoin.io/polls/cmd/polls/common"
)

var (
	flagParseSeed bool
	flagKeyFormat string
)

type keyPair struct {
	Seed    string `json:"seed,omitempty"`
	Address string `json:"address"`
}

func defaultKeyEncode(v interface{}, w io.Writer) error {
	kp := v.(keyPair)
	if len(kp.Seed) > 0 {
		fmt.Fprintf(w, "   Secret Seed: %s\n", kp.Seed)
	}
	_, err := fmt.Fprintf(w, "Public Address: %s\n", kp.Address)
	return err
}

func onelineKeyEncode(v interface{}, w io.Writer) error {
	kp := v.(keyPair)
	_, err := fmt.Fprintln(w, strings.TrimSpace(kp.Seed+" "+kp.Address))
	return err
}

var keyEncodes = map[string]cmdcommon.Encode{
	"default":    defaultKeyEncode,
	"oneline":    onelineKeyEncode,
	"json":       cmdcommon.DefaultEncodes["json"],
	"prettyjson": cmdcommon.DefaultEncodes["prettyjson"],
	"yaml":       cmdcommon.DefaultEncodes["yaml"],
}

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Keypair management",
	Run: func(c *cobra.Command, args []string) {
		if len(args) < 1 {
			c.Usage()
		}
	},
}

var keyGenerateCmd = &cobra.Command{
	Use:   "generate [<secret seed>]",
	Short: "Generate a keypair, or print the address of a secret seed with --parse",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		encode, ok := keyEncodes[flagKeyFormat]
		if !ok {
			return &flagError{name: "--format", err: fmt.Errorf("%q not recognized", flagKeyFormat)}
		}

		var input string
		if len(args) > 0 {
			input = strings.TrimSpace(args[0])
		}
		if flagParseSeed && len(input) < 1 {
			return &flagError{name: "--parse", err: fmt.Errorf("--parse needs <secret seed>")}
		}

		kp, err := generateKP(input, flagParseSeed)
		if err != nil {
			return &flagError{name: "<secret seed>", err: err}
		}

		return encode(kp, output)
	},
}

func init() {
	keyGenerateCmd.Flags().BoolVar(&flagParseSeed, "parse", false, "parse secret seed")
	keyGenerateCmd.Flags().StringVar(&flagKeyFormat, "format", "default", "format={default, oneline, json, prettyjson, yaml}")

	keyCmd.AddCommand(keyGenerateCmd)
	rootCmd.AddCommand(keyCmd)
}

// generateKP creates a random keypair, or the one derived from a network
// passphrase. With fromSeed, seed must be a secret seed.
func generateKP(seedOrPassphrase string, fromSeed bool) (keyPair, error) {
	var full *keypair.Full

	switch {
	case len(seedOrPassphrase) < 1:
		kp, err := keypair.Random()
		if err != nil {
			return keyPair{}, err
		}
		full = kp
	case fromSeed:
		kp, err := keypair.Parse(seedOrPassphrase)
		if err != nil {
			return keyPair{}, err
		}
		kf, ok := kp.(*keypair.Full)
		if !ok {
			return keyPair{}, fmt.Errorf("not a secret seed")
		}
		full = kf
	default:
		full = keypair.Master(seedOrPassphrase).(*keypair.Full)
	}

	return keyPair{Seed: full.Seed(), Address: full.Address()}, nil
}
