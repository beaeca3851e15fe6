package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/analogrelay/abi-check/internal/log"
	"github.com/analogrelay/abi-check/native"
	"github.com/analogrelay/abi-check/probe"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// loadLibrary is swapped out in tests.
var loadLibrary = native.Load

// usageError marks errors raised before the probe ran: stray arguments or
// unknown flags.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// newRootCmd builds the abi-check command. It has no subcommands.
func newRootCmd() *cobra.Command {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "abi-check",
		Short: "Verify the ABI of the linked abi_check library",
		Long: `Calls addone(2) and addtwo(2) from the library linked into this binary and
compares the results with 3 and 4. Exits nonzero on the first mismatch, which
usually means the library was built for a different calling convention.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				log.DisableColor()
			}

			lib, err := loadLibrary()
			if err != nil {
				return fmt.Errorf("failed to load library: %w", err)
			}
			return probe.Run(lib)
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	bindFlags(rootCmd.Flags(), &noColor)

	return rootCmd
}

func bindFlags(fs *pflag.FlagSet, noColor *bool) {
	fs.BoolVar(noColor, "no-color", false, "Disable colored diagnostics")
}

// Run executes the command with args and returns the process exit code.
// Nothing is written to stderr when the checks pass.
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	log.ErrorMsg(stderr, "%s", err)

	var mismatch *probe.MismatchError
	var usage *usageError
	switch {
	case errors.As(err, &mismatch):
		return ExitFailure
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, native.ErrUnavailable):
		return ExitEnvError
	default:
		return ExitFailure
	}
}

// Execute runs abi-check with the process arguments and exits.
// This is called by main.main().
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
