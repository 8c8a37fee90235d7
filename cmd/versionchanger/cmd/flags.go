// Copyright © 2018 One Concern

package cmd

import (
	"strings"

	"github.com/oneconcern/versionchanger/pkg/dlogger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	archivesFlag = "archives"
	logLevelFlag = "loglevel"
)

func addArchivesFlag(cmd *cobra.Command) string {
	cmd.Flags().String(archivesFlag, defaultArchivesRoot(), "The directory holding archive folders (env: VERSIONCHANGER_ARCHIVES)")
	return archivesFlag
}

func addLogLevelFlag(cmd *cobra.Command) string {
	cmd.Flags().String(logLevelFlag, dlogger.LogLevelNone, "The logging level. Levels by increasing order of verbosity: none, error, warn, info, debug (env: VERSIONCHANGER_LOGLEVEL)")
	return logLevelFlag
}

// escapeNegativeArgs keeps negative numbers such as a build number "-1" from being parsed as flags.
//
// When a positional argument starts with a dash and a digit, flags (with their values) are moved
// ahead of a "--" terminator and every positional argument follows it, in its original order.
func escapeNegativeArgs(flags *pflag.FlagSet, args []string) []string {
	var (
		options, positionals []string
		negative             bool
	)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positionals = append(positionals, args[i+1:]...)
			i = len(args)
		case isNegativeNumber(arg):
			negative = true
			positionals = append(positionals, arg)
		case len(arg) > 1 && arg[0] == '-':
			options = append(options, arg)
			if takesValue(flags, arg) && i+1 < len(args) {
				i++
				options = append(options, args[i])
			}
		default:
			positionals = append(positionals, arg)
		}
	}
	if !negative {
		return args
	}

	escaped := make([]string, 0, len(args)+1)
	escaped = append(escaped, options...)
	escaped = append(escaped, "--")
	return append(escaped, positionals...)
}

func isNegativeNumber(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9'
}

// takesValue tells if a flag given without "=" consumes the next argument
func takesValue(flags *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	var flag *pflag.Flag
	switch name := strings.TrimLeft(arg, "-"); {
	case strings.HasPrefix(arg, "--"):
		flag = flags.Lookup(name)
	case len(name) == 1:
		flag = flags.ShorthandLookup(name)
	}
	return flag != nil && flag.NoOptDefVal == ""
}
