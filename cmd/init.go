package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/coursetrail/coursetrail/internal/api"
	"github.com/coursetrail/coursetrail/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create a .coursetrail.yml config",
	Run: func(cmd *cobra.Command, args []string) {
		_, err := config.RunWizard(probeModels)
		exitOnError(err)
	},
}

// probeModels fetches model names from a backend so the wizard can offer
// a live selection.
func probeModels(baseURL string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	backend := api.New(baseURL, 10*time.Second)
	models, err := backend.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(models))
	for _, m := range models {
		names = append(names, m.Name)
	}
	return names, nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
