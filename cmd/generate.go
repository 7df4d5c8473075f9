package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursetrail/coursetrail/internal/api"
	"github.com/coursetrail/coursetrail/internal/config"
	"github.com/coursetrail/coursetrail/internal/course"
	"github.com/coursetrail/coursetrail/internal/disclosure"
	"github.com/coursetrail/coursetrail/internal/export"
	"github.com/coursetrail/coursetrail/internal/progress"
)

var (
	generateGoal  string
	generateModel string
	generateOut   string
	generateFull  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a course and export it as a static HTML page",
	Long: `Generates a course outline for the given goal and writes it to a
self-contained HTML page. With --full, every week's daily breakdown and
every day's content is generated too; day content is always generated
after its week's breakdown has arrived.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if generateOut != "" {
			cfg.OutputDir = generateOut
		}
		model := generateModel
		if model == "" {
			model = cfg.Model
		}

		ctx := cmd.Context()
		backend := api.New(cfg.BackendURL, cfg.RequestTimeout())
		store := course.NewStore()
		ctrl := disclosure.New(store, backend)

		fmt.Printf("Generating outline for %q with %s...\n", generateGoal, model)
		if err := ctrl.StartCourse(ctx, generateGoal, model); err != nil {
			return fmt.Errorf("generating outline: %w", err)
		}
		if verbose {
			for _, w := range store.Snapshot().Weeks {
				fmt.Fprintf(cmd.ErrOrStderr(), "Week %d: %s\n", w.Number, w.Title)
			}
		}

		if generateFull {
			if err := expandEverything(cmd, ctrl, store); err != nil {
				return err
			}
		}

		snapshot := store.Snapshot()
		exporter := export.New(cfg.OutputDir)
		path, err := exporter.Write(snapshot)
		if err != nil {
			return fmt.Errorf("exporting course: %w", err)
		}

		fmt.Printf("Exported %q (%d weeks) to %s\n", snapshot.Title, len(snapshot.Weeks), path)
		return nil
	},
}

// expandEverything fetches every week's breakdown, then every day's
// content. A failed fetch is reported and skipped; the export keeps
// whatever was generated.
func expandEverything(cmd *cobra.Command, ctrl *disclosure.Controller, store *course.Store) error {
	ctx := cmd.Context()

	outline := store.Snapshot()
	rep := progress.NewReporter("Expanding weeks")
	rep.Start(len(outline.Weeks))
	for _, w := range outline.Weeks {
		rep.Step(fmt.Sprintf("Week %d: %s", w.Number, w.Title))
		if err := ctrl.ToggleWeek(ctx, w.Number); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: week %d failed: %v\n", w.Number, err)
		} else if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "Expanded week %d: %s\n", w.Number, w.Title)
		}
	}
	rep.Finish()

	expanded := store.Snapshot()
	total := 0
	for _, w := range expanded.Weeks {
		total += len(w.Days)
	}
	rep = progress.NewReporter("Generating days")
	rep.Start(total)
	for _, w := range expanded.Weeks {
		for _, d := range w.Days {
			rep.Step(fmt.Sprintf("Day %d: %s", course.GlobalDayNumber(w.Number, d.Number), d.Title))
			if err := ctrl.LoadDay(ctx, w.Number, d.Number); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: week %d day %d failed: %v\n", w.Number, d.Number, err)
			} else if verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "Generated day %d: %s\n", course.GlobalDayNumber(w.Number, d.Number), d.Title)
			}
		}
	}
	rep.Finish()
	return nil
}

func init() {
	generateCmd.Flags().StringVar(&generateGoal, "goal", "", "learning goal, e.g. \"Learn Rust\"")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "model to use (default from config)")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "output directory (default from config)")
	generateCmd.Flags().BoolVar(&generateFull, "full", false, "also generate every week's and day's content")
	generateCmd.MarkFlagRequired("goal")
	rootCmd.AddCommand(generateCmd)
}
