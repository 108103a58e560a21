package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd is the base command; simux is currently a single-subcommand CLI
// (run), structured as a cobra command tree the way bennypowers-cem and
// wbrown-janus-datalog's CLIs are, so additional subcommands (e.g. a future
// `list-scenarios`) have somewhere idiomatic to attach.
var rootCmd = &cobra.Command{
	Use:   "simux",
	Short: "Run discrete-event simulation scenarios",
	Long:  "simux runs named discrete-event simulation scenarios and reports per-entity and per-resource metrics.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(runCmd)
}

func initConfig() {
	viper.SetEnvPrefix("SIMUX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
