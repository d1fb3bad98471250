package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lehigh-university-libraries/waterprint/internal/analysis"
	"github.com/lehigh-university-libraries/waterprint/internal/config"
	"github.com/lehigh-university-libraries/waterprint/internal/handlers"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		host      string
		port      string
		staticDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the water footprint web service",
		Long: `Starts the Waterprint web service.

Routes:
  GET  /         static web interface (index.html from --static-dir)
  POST /analyze  {"image": "<base64 or data URL>"} -> analysis JSON
  GET  /health   model initialization state

The model is initialized once at startup. When GEMINI_API_KEY (or
OPENAI_API_KEY with MODEL_PROVIDER=openai) is missing or invalid the server
still starts, /health reports a warning and /analyze answers 500.`,
		Example: `  # Start server on default port 5000
  waterprint serve

  # Start server on custom port
  waterprint serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, host, port, staticDir)
			if err != nil {
				return err
			}

			model := analysis.LoadModel(cmd.Context(), cfg)
			defer closeModel(model)

			handler := handlers.New(analysis.NewService(model))
			router := handlers.NewRouter(handler, handlers.Options{
				StaticDir:          cfg.StaticDir,
				MaxRequestBodySize: cfg.MaxRequestBodySize,
				CORSAllowOrigins:   cfg.CORSAllowOrigins,
				Debug:              cfg.LogLevel == "debug",
			})

			addr := cfg.ServerAddress()
			server := &http.Server{
				Addr:    addr,
				Handler: router,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Waterprint available", "addr", addr, "model_loaded", model.Loaded())
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Interface to listen on (default $HOST or 0.0.0.0)")
	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default $PORT or 5000)")
	cmd.Flags().StringVar(&staticDir, "static-dir", "", "Directory holding index.html (default $STATIC_DIR or ./static)")

	return cmd
}

// loadConfig reads the environment and applies flag overrides
func loadConfig(cmd *cobra.Command, host, port, staticDir string) (*config.Config, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = host
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = port
	}
	if cmd.Flags().Changed("static-dir") {
		cfg.StaticDir = staticDir
	}
	return cfg, cfg.Validate()
}

func closeModel(model *analysis.Model) {
	if err := model.Close(); err != nil {
		slog.Warn("Unable to close model client", "err", err)
	}
}
