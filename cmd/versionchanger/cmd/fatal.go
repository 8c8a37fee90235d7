// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/oneconcern/versionchanger/pkg/status"
)

// Exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// used to patch over calls to os.Exit() and process arguments during test
var (
	osExit = os.Exit
	osArgs = os.Args
)

// ExitCode of the process for an error returned by the command.
//
// Wrong command lines exit with ExitUsage, any other error with ExitFailure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case status.IsUsage(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// errorPrefix is highlighted when writing to a terminal
var errorPrefix = color.New(color.FgRed, color.Bold).SprintFunc()

// report prints a failure as a single line, then returns the exit code
func report(out io.Writer, err error) int {
	if err != nil {
		prefix := "Error:"
		if out == os.Stdout {
			prefix = errorPrefix(prefix)
		}
		_, _ = fmt.Fprintf(out, "%s %v\n", prefix, err)
	}
	return ExitCode(err)
}
