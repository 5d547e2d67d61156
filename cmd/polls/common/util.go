package common

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"boscoin.io/polls/lib/errors"
)

// ErrorString prefers the message and code of the error catalogue over the
// serialized form.
func ErrorString(err error) string {
	pollsError, ok := err.(*errors.Error)
	if !ok {
		return err.Error()
	}

	code := errors.Code(pollsError)
	if len(pollsError.Data) < 1 {
		return fmt.Sprintf("%s (code=%d)", pollsError.Message, code)
	}
	return fmt.Sprintf("%s (code=%d); %v", pollsError.Message, code, pollsError.Data)
}

/**
 * Issue a message on Stderr then exit with an error code
 */
func PrintFlagsError(cmd *cobra.Command, flagName string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid '%s'; %s\n\n", flagName, ErrorString(err))
	}

	cmd.Help()

	os.Exit(1)
}

func PrintError(cmd *cobra.Command, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", ErrorString(err))
	}

	os.Exit(1)
}
