// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oneconcern/versionchanger/pkg/core"
	"github.com/oneconcern/versionchanger/pkg/dlogger"
	"github.com/oneconcern/versionchanger/pkg/model"
	"github.com/oneconcern/versionchanger/pkg/status"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// used to patch over the file system and the wall clock during test
	appFs afero.Fs = afero.NewOsFs()
	now            = time.Now
)

func newRootCmd() *cobra.Command {
	settings := viper.New()

	rootCmd := &cobra.Command{
		Use:   "versionchanger <version> <build number>",
		Short: "Bumps the version of the latest Xcode archive",
		Long: `Bumps the version of the latest Xcode archive.

The latest archive of the latest archive folder is copied under a new name, ending
with the current time (HH.mm). The version (CFBundleShortVersionString) and build
number (CFBundleVersion) are then set in the Info.plist of the copy and in the
Info.plist of its app debug symbols (dSYMs).

The version must be made of 3 dot-separated integers (#.#.#), the build number must
be an integer.
`,
		Example: `  versionchanger 3.1.4 27
  VERSIONCHANGER_ARCHIVES=/tmp/Archives versionchanger --loglevel info 3.1.4 27`,
		Version:       NewVersionInfo().Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := model.ParseArgs(args)
			if err != nil {
				return err
			}

			config, err := newConfig(settings)
			if err != nil {
				return err
			}

			logger, err := dlogger.NewLogger(cmd.ErrOrStderr(), config.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			_, err = core.NewBumper(appFs, config.Archives,
				core.Logger(logger),
				core.Clock(now),
			).Run(cmd.Context(), params)
			return err
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("{{ .Short }}\n" + NewVersionInfo().String())
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return status.ErrWrongArguments.Withf("%v", err)
	})

	addArchivesFlag(rootCmd)
	addLogLevelFlag(rootCmd)
	bindFlags(settings, rootCmd)

	return rootCmd
}

// Execute runs the root command with the process arguments, then exits.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Stdout, osArgs[1:])
	stop()
	osExit(code)
}

func execute(ctx context.Context, out io.Writer, args []string) int {
	rootCmd := newRootCmd()
	rootCmd.SetOut(out)
	rootCmd.SetArgs(escapeNegativeArgs(rootCmd.Flags(), args))

	return report(out, rootCmd.ExecuteContext(ctx))
}
