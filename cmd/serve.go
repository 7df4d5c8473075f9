package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/coursetrail/coursetrail/internal/api"
	"github.com/coursetrail/coursetrail/internal/config"
	"github.com/coursetrail/coursetrail/internal/course"
	"github.com/coursetrail/coursetrail/internal/disclosure"
	"github.com/coursetrail/coursetrail/internal/render"
	"github.com/coursetrail/coursetrail/internal/web"
)

var (
	servePort     int
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the coursetrail web UI",
	Long:  `Starts the coursetrail UI server. Open it in a browser, enter a learning goal, and expand weeks and days as they interest you.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Port = servePort
		}
		if serveAllowAll {
			cfg.AllowAllOrigins = true
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		backend := api.New(cfg.BackendURL, cfg.RequestTimeout())
		store := course.NewStore()
		ctrl := disclosure.New(store, backend)
		renderer := render.New()

		srv := web.New(web.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
			ToastTTL: cfg.ToastTTL(),
		}, backend, store, ctrl, renderer)

		// Warn early when the backend is down; the landing page shows
		// the live status either way.
		probeCtx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		if health, err := backend.CheckHealth(probeCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: course backend at %s is unreachable: %v\n", cfg.BackendURL, err)
		} else if !health.Connected {
			fmt.Fprintf(os.Stderr, "Warning: backend is up but Ollama is disconnected (%s)\n", health.Detail)
		}

		fmt.Printf("coursetrail UI on http://localhost:%d (backend %s)\n", cfg.Port, cfg.BackendURL)

		errCh := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-sigCh:
			fmt.Println("\nShutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "override the configured port")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}
