// Copyright © 2018 One Concern

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "VERSIONCHANGER"

// CLIConfig describes the CLI configuration, resolved from flags and environment.
//
// There is no configuration file.
type CLIConfig struct {
	Archives string `mapstructure:"archives"`
	LogLevel string `mapstructure:"loglevel"`
}

// defaultArchivesRoot is the folder where Xcode stores archives
func defaultArchivesRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "~"
	}
	return filepath.Join(home, "Library", "Developer", "Xcode", "Archives")
}

func bindFlags(settings *viper.Viper, cmd *cobra.Command) {
	settings.SetEnvPrefix(envPrefix)
	settings.AutomaticEnv()
	_ = settings.BindPFlag(archivesFlag, cmd.Flags().Lookup(archivesFlag))
	_ = settings.BindPFlag(logLevelFlag, cmd.Flags().Lookup(logLevelFlag))
}

func newConfig(settings *viper.Viper) (*CLIConfig, error) {
	var config CLIConfig
	err := settings.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}
