package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/coursetrail/coursetrail/internal/api"
	"github.com/coursetrail/coursetrail/internal/config"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the course backend and its Ollama runtime",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		backend := api.New(cfg.BackendURL, 10*time.Second)
		health, err := backend.CheckHealth(ctx)
		if err != nil {
			return fmt.Errorf("backend at %s: %w", cfg.BackendURL, err)
		}

		if health.Connected {
			fmt.Printf("Backend %s: ok, Ollama connected at %s\n", cfg.BackendURL, health.OllamaURL)
			return nil
		}
		fmt.Printf("Backend %s: ok, Ollama %s", cfg.BackendURL, health.OllamaStatus)
		if health.Detail != "" {
			fmt.Printf(" (%s)", health.Detail)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
