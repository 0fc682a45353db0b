// Package cmd provides the command-line interface for LeanMutator, a
// mutation testing tool for Lean-like sources, with configuration
// management supporting multiple sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--operators, --timeout, etc.) - highest priority
//	2. LEANMUTATOR_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (LEANMUTATOR_<SECTION>)
//	4. Configuration file (.leanmutator.yml) - lowest priority
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "leanmutator",
	Short: "A mutation testing tool for Lean-like sources",
	Long: `LeanMutator generates mutants of a dependently-typed functional-language
source tree, judges each one with the project's own build tool or parser,
and reports a mutation score along with the gaps that score exposes.

Quick Start:
  leanmutator init                      Write a default configuration file
  leanmutator list-operators             List registered mutation operators
  leanmutator mutate src/                Run mutation testing over a directory`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .leanmutator.yml, can also use LEANMUTATOR_CONFIG_FILE env var)")
}

// initConfig initializes viper with the same precedence ladder
// internal/config.Load documents: --config flag, then
// LEANMUTATOR_CONFIG_FILE, then .leanmutator.yml in the current
// directory, then built-in defaults.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("LEANMUTATOR_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".leanmutator")
	}

	viper.SetEnvPrefix("LEANMUTATOR")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
