// Package cmd is for command line interactions with the fishbio application
package cmd

import (
	"fmt"
	"log"

	"github.com/PaulaGudiela/Fishbiotools/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is built before each command runs, see RootCmd.PersistentPreRunE
var logger = zap.NewNop()

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "fishbio",
	Short: `Tools for fish biology workflows: audit mitogenome records,
sort zipped annotation bundles and normalize morphometric tables`,
	Version:       "0.2.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		settings, _ := cmd.Flags().GetString("settings")
		if err := config.ReadSettings(viper.GetViper(), settings); err != nil {
			return err
		}

		conf := zap.NewProductionConfig()
		if viper.GetBool("verbose") {
			conf.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := conf.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	config.SetDefaults(viper.GetViper())

	// settings is an optional YAML file that overrides the defaults in config
	RootCmd.PersistentFlags().StringP("settings", "s", "", "settings file (YAML)")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug details to stderr")
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}
