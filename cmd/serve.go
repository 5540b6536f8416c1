package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/budgetplanner/backend/internal/config"
	"github.com/budgetplanner/backend/internal/controllers"
	"github.com/budgetplanner/backend/internal/router"
	"github.com/budgetplanner/backend/internal/service"
	"github.com/budgetplanner/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server (default)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagEnvFiles...)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	setupLogging(cfg, os.Stdout)

	stores, err := store.Open(cfg.StorageBackend, cfg.SQLiteDSN, nil)
	if err != nil {
		return fmt.Errorf("could not open the %s store: %w", cfg.StorageBackend, err)
	}
	defer func() {
		if err := stores.Close(); err != nil {
			log.Error().Str("error", err.Error()).Msg("Closing store")
		}
	}()

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		return err
	}

	co := controllers.New(service.New(stores), cfg.DefaultUserID)
	router.AttachRoutes(cfg, co, stores, router.Group(r, cfg))

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return serve(ctx, cfg, r)
}

// serve runs the HTTP server until ctx is done, then shuts it down
// within the configured timeout.
func serve(ctx context.Context, cfg *config.Config, h http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("address", cfg.ListenAddress).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()
	if err == nil {
		log.Info().Msg("Server stopped")
	}
	return err
}

// setupLogging configures gin and the global zerolog logger.
//
// The log format defaults to human readable for debug mode and JSON
// otherwise.
func setupLogging(cfg *config.Config, out io.Writer) {
	gin.SetMode(cfg.GinMode)

	output := out
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}
