package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"retail-backend/internal/data/repository"
	"retail-backend/internal/pricelist"
	"retail-backend/internal/wire"
	"retail-backend/pkg/database"
	"retail-backend/pkg/mailer"
	"retail-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	shutdownTimeout = 10 * time.Second
	sessionSweep    = time.Hour
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	config, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return err
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	fetcher, err := pricelist.NewFetcher(ctx, config.PriceList, config.S3, logger)
	if err != nil {
		logger.Error("Failed to init price list fetcher", zap.Error(err))
		return err
	}

	mail, err := mailer.New(config.Email, logger)
	if err != nil {
		logger.Error("Failed to init mailer", zap.Error(err))
		return err
	}

	repos := repository.NewRepository(db, logger)
	deps := wire.Deps{
		Tokens: utils.NewTokenManager(config.JWT.Secret,
			time.Duration(config.JWT.ExpiryHours)*time.Hour, config.App.Name),
		Mailer: mail,
		Source: fetcher,
	}

	app := wire.Wiring(repos, deps, config, logger)

	go app.Limiter.Sweep(ctx)
	go sweepSessions(ctx, repos.Session, logger)

	return APIServer(ctx, app.Router, config.App.Port, logger)
}

// APIServer serves route until ctx is cancelled, then drains in-flight requests.
func APIServer(ctx context.Context, route *chi.Mux, port string, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           route,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server error", zap.Error(err))
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
		return err
	}

	logger.Info("Server stopped")
	return nil
}

func sweepSessions(ctx context.Context, sessions repository.SessionRepository, logger *zap.Logger) {
	ticker := time.NewTicker(sessionSweep)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := sessions.CleanExpiredSessions(ctx)
			if err != nil {
				logger.Warn("Failed to clean expired sessions", zap.Error(err))
				continue
			}
			if removed > 0 {
				logger.Info("Expired sessions cleaned", zap.Int64("removed", removed))
			}
		}
	}
}
