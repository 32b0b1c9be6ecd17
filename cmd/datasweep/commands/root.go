// Package commands implements the CLI commands for datasweep.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "datasweep",
	Short: "Pluggable cleaning pipeline for tabular data",
	Long: `Datasweep applies an ordered list of named cleaning strategies to a
tabular dataset. Each strategy declares the options it needs, and the
pipeline refuses to touch the data until every required option resolves.

Options come from a schema file with a cleaning block, or directly from
--set flags on the command line.

Examples:
  # Clean a CSV using a schema's cleaning block
  datasweep clean -i data.csv -s schema.yaml --strategy remove_duplicates

  # Supply options on the command line instead
  datasweep clean -i data.csv \
      --strategy remove_duplicates --strategy remove_columns \
      --set 'remove_duplicates_subset_fields=[id]' \
      --set 'remove_duplicates_keep=last' \
      --set 'remove_columns=[internal_notes]'

  # See what a strategy needs before running it
  datasweep strategies`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.datasweep.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".datasweep")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DATASWEEP")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
