package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coursetrail/coursetrail/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "coursetrail",
	Short: "AI-generated learning courses with progressive disclosure",
	Long: `Coursetrail turns a learning goal into a week-by-week course using a
local Ollama-backed generation service. It serves a browser UI that
fetches weekly breakdowns and daily content on demand as you expand
them, and can export a generated course as a static HTML page.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
