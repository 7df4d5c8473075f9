package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/coursetrail/coursetrail/internal/api"
	"github.com/coursetrail/coursetrail/internal/config"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models installed on the course backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()

		backend := api.New(cfg.BackendURL, 15*time.Second)
		models, err := backend.ListModels(ctx)
		if err != nil {
			return fmt.Errorf("listing models: %w", err)
		}

		if len(models) == 0 {
			fmt.Println("No models installed. Try: ollama pull deepseek-r1:1.5b")
			return nil
		}
		for _, m := range models {
			if m.Size > 0 {
				fmt.Printf("%-40s %6.1f GB\n", m.Name, float64(m.Size)/1e9)
			} else {
				fmt.Println(m.Name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
