package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/Dosada05/zone-cup/brackets"
	"github.com/Dosada05/zone-cup/handlers"
	"github.com/Dosada05/zone-cup/middleware"
	api "github.com/Dosada05/zone-cup/routes"
	"github.com/Dosada05/zone-cup/storage"
)

const shutdownTimeout = 15 * time.Second

var (
	serveSeed uint64

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the websocket feed",
		RunE:  runServe,
	}
)

func init() {
	serveCmd.Flags().Uint64Var(&serveSeed, "seed", 0, "seed for knockout draws (0 picks one from the clock)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.ValidateServer(); err != nil {
		return err
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort), slog.String("rules", cfg.RulesPath))

	ctx := cmd.Context()
	dbConn, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()

	// Загрузчик R2 нужен только для экспорта снимков.
	var uploader storage.FileUploader
	if cfg.R2 != nil {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, *cfg.R2)
		if err != nil {
			return fmt.Errorf("failed to initialize Cloudflare R2 uploader: %w", err)
		}
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2.BucketName))
	} else {
		logger.Warn("R2 is not configured, snapshot export disabled")
	}

	hubDone := make(chan struct{})
	wsHub := brackets.NewHub(logger)
	go wsHub.Run(hubDone)
	defer close(hubDone)
	logger.Info("WebSocket Hub started")

	seed := serveSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	shuffler := brackets.NewLockedShuffler(brackets.NewSeededShuffler(seed))
	app := newApplication(dbConn, cfg, shuffler, wsHub, uploader, logger)
	logger.Info("Services initialized", slog.Uint64("draw_seed", seed), slog.Any("rounds", app.tournament.RoundSequence()))

	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		Auth:       handlers.NewAuthHandler(app.auth, cfg.JWTSecretKey),
		Team:       handlers.NewTeamHandler(app.teams),
		Tournament: handlers.NewTournamentHandler(app.tournament),
		Match:      handlers.NewMatchHandler(app.matches),
		Bracket:    handlers.NewBracketHandler(app.bracket),
		Admin:      handlers.NewAdminHandler(app.tournament, logger),
		Export:     handlers.NewExportHandler(app.export),
		Demo:       handlers.NewDemoHandler(app.demo),
		WebSocket:  handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins, logger),
	}, middleware.NewAuthenticator(cfg.JWTSecretKey, logger), cfg.CORSAllowedOrigins)
	logger.Info("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			return err
		}
		logger.Info("server shutdown complete")
	}
	return nil
}
