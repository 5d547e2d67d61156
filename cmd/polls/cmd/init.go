package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"

	logging "github.com/inconshreveable/log15"
	isatty "github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	cmdcommon "boscoin.io/polls/cmd/polls/common"
	"boscoin.io/polls/lib/common"
	"boscoin.io/polls/lib/contract"
	"boscoin.io/polls/lib/metrics"
	"boscoin.io/polls/lib/runtime"
	"boscoin.io/polls/lib/store"
	"boscoin.io/polls/pkg/rawdb"
)

const (
	defaultChainID    = "polls-local"
	defaultStorage    = "file://./.polls"
	defaultOutput     = "json"
	defaultAddressAPI = "keypair"
	defaultLogLevel   = logging.LvlWarn
)

var (
	flagChainID    string = common.GetENVValue("POLLS_CHAIN_ID", defaultChainID)
	flagStorage    string = common.GetENVValue("POLLS_STORAGE", defaultStorage)
	flagLogLevel   string = common.GetENVValue("POLLS_LOG_LEVEL", defaultLogLevel.String())
	flagLogOutput  string = common.GetENVValue("POLLS_LOG_OUTPUT", "")
	flagOutput     string = common.GetENVValue("POLLS_OUTPUT", defaultOutput)
	flagAddressAPI string = common.GetENVValue("POLLS_ADDRESS_API", defaultAddressAPI)
	flagCodec      string = common.GetENVValue("POLLS_CODEC", store.DefaultCodec.Name())
	flagSender     string = common.GetENVValue("POLLS_SENDER", "")
	flagMetrics    bool

	output io.Writer = os.Stdout

	storageConfig *rawdb.Config
	runtimeConfig runtime.Config
	encode        cmdcommon.Encode

	log logging.Logger = logging.New("module", "main")

	initMetricsOnce sync.Once
)

// flagError marks errors caused by a bad flag value.
type flagError struct {
	name string
	err  error
}

func (e *flagError) Error() string {
	return fmt.Sprintf("invalid '%s'; %s", e.name, cmdcommon.ErrorString(e.err))
}

var rootCmd = &cobra.Command{
	Use:           "polls",
	Short:         "polls contract runner",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		return parseFlags()
	},
	Run: func(c *cobra.Command, args []string) {
		if len(args) < 1 {
			c.Usage()
		}
	},
}

func init() {
	setPersistentFlags(rootCmd.PersistentFlags())
}

func setPersistentFlags(flags *pflag.FlagSet) {
	flags.StringVar(&flagChainID, "chain-id", flagChainID, "chain id reported to the contract")
	flags.StringVar(&flagStorage, "storage", flagStorage, "storage uri, {file:///path, memory://}")
	flags.StringVar(&flagLogLevel, "log-level", flagLogLevel, "log level, {crit, error, warn, info, debug}")
	flags.StringVar(&flagLogOutput, "log-output", flagLogOutput, "set log output file")
	flags.StringVarP(&flagOutput, "output", "o", flagOutput, "output format, {json, prettyjson, yaml}")
	flags.StringVar(&flagAddressAPI, "address-api", flagAddressAPI, "address validation, {keypair, mock}")
	flags.StringVar(&flagCodec, "codec", flagCodec, "state codec, {json, msgpack}")
	flags.StringVar(&flagSender, "sender", flagSender, "address of the message sender")
	flags.BoolVar(&flagMetrics, "metrics", flagMetrics, "print prometheus metrics after the command")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if fe, ok := err.(*flagError); ok {
			cmdcommon.PrintFlagsError(rootCmd, fe.name, fe.err)
		}
		cmdcommon.PrintError(rootCmd, err)
	}
}

func SetArgs(s []string) {
	rootCmd.SetArgs(s)
}

func parseFlags() (err error) {
	var logLevel logging.Lvl
	if logLevel, err = logging.LvlFromString(flagLogLevel); err != nil {
		return &flagError{name: "--log-level", err: err}
	}

	var logHandler logging.Handler
	if len(flagLogOutput) > 0 {
		if logHandler, err = logging.FileHandler(flagLogOutput, common.JSONLogFormat(false, true)); err != nil {
			return &flagError{name: "--log-output", err: err}
		}
	} else if isatty.IsTerminal(os.Stderr.Fd()) {
		logHandler = logging.StreamHandler(os.Stderr, logging.TerminalFormat())
	} else {
		logHandler = logging.StreamHandler(os.Stderr, common.JSONLogFormat(false, true))
	}
	logHandler = logging.CallerFileHandler(logHandler)

	common.SetLogging(log, logLevel, logHandler)
	contract.SetLogging(logLevel, logHandler)
	runtime.SetLogging(logLevel, logHandler)

	var ok bool
	if encode, ok = cmdcommon.DefaultEncodes[flagOutput]; !ok {
		return &flagError{name: "--output", err: fmt.Errorf("%q not recognized", flagOutput)}
	}

	if storageConfig, err = rawdb.NewConfigFromString(flagStorage); err != nil {
		return &flagError{name: "--storage", err: err}
	}

	runtimeConfig = runtime.NewConfig(flagChainID)
	if runtimeConfig.API, err = contract.NewAPI(flagAddressAPI); err != nil {
		return &flagError{name: "--address-api", err: err}
	}
	if runtimeConfig.Codec, ok = store.CodecByName(flagCodec); !ok {
		return &flagError{name: "--codec", err: fmt.Errorf("%q not recognized", flagCodec)}
	}

	if flagMetrics {
		initMetricsOnce.Do(metrics.InitPrometheusMetrics)
	}

	log.Debug(
		"parsed flags",
		"chain-id", flagChainID,
		"storage", flagStorage,
		"log-level", flagLogLevel,
		"output", flagOutput,
		"address-api", flagAddressAPI,
		"codec", flagCodec,
		"sender", flagSender,
	)

	return nil
}

// withRuntime opens the storage, runs f against a fresh runtime and prints
// what f returns.
func withRuntime(f func(*runtime.Runtime) (interface{}, error)) error {
	db, err := rawdb.NewLevelDbFromConfig(storageConfig)
	if err != nil {
		return err
	}
	defer db.Close()

	rt, err := runtime.NewRuntime(db, runtimeConfig)
	if err != nil {
		return err
	}

	v, err := f(rt)
	if err != nil {
		return err
	}

	if err := encode(v, output); err != nil {
		return err
	}

	if flagMetrics {
		return printMetrics(output)
	}
	return nil
}

func printMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func senderInfo() contract.MessageInfo {
	return contract.MessageInfo{Sender: flagSender}
}
