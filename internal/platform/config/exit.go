package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// Process exit codes used by service entrypoints.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode maps a startup or run error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, ErrInvalidEnv):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// Exit reports err under prefix on stderr and terminates the process with
// ExitCode(err). A nil err returns without exiting.
func Exit(prefix string, err error) {
	if err == nil {
		return
	}
	os.Exit(report(os.Stderr, prefix, err))
}

func report(w io.Writer, prefix string, err error) int {
	code := ExitCode(err)
	if code != ExitOK {
		fmt.Fprintf(w, "%s: %v\n", prefix, err)
	}
	return code
}
