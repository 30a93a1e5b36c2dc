package main

import (
	"fmt"
	"os"

	"github.com/lesfleursdelanuitdev/kinship-infer/cmd/kinship/commands"
	"github.com/lesfleursdelanuitdev/kinship-infer/cmd/kinship/internal"
	"github.com/spf13/cobra"
)

var (
	version    = "1.0.0"
	configPath string
	quiet      bool
	verbose    bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:     "kinship",
	Short:   "Chinese kinship title inference tool",
	Long:    "A command-line tool for inferring the Chinese kinship title one person would use to address another, given a family graph",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config, err := internal.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to load config: %v\n", err)
			config = internal.DefaultConfig()
		}

		if quiet {
			internal.SetQuietMode(true)
			config.Output.Progress = false
		}
		if noColor {
			config.Output.Color = false
		}

		internal.InitColor(config.Output.Color)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (suppress progress bars)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(commands.GetInferCommand())
	rootCmd.AddCommand(commands.GetInteractiveCommand())
	rootCmd.AddCommand(commands.GetRulesCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		internal.PrintError("Error: %v\n", err)
		os.Exit(1)
	}
}
