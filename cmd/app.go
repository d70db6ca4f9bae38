package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/zone-cup/brackets"
	"github.com/Dosada05/zone-cup/config"
	"github.com/Dosada05/zone-cup/db"
	"github.com/Dosada05/zone-cup/repositories"
	"github.com/Dosada05/zone-cup/services"
	"github.com/Dosada05/zone-cup/storage"
)

const connectTimeout = 5 * time.Second

type application struct {
	db         *sql.DB
	tournament services.TournamentService
	teams      services.TeamService
	matches    services.MatchService
	bracket    services.BracketService
	export     services.ExportService
	demo       services.DemoService
	auth       services.AuthService
}

// openDatabase connects and brings the schema up to date.
func openDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	conn, err := db.Connect(cfg.DatabaseDriver, cfg.DatabaseURL, connectTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Migrate(ctx, conn, cfg.DatabaseDriver); err != nil {
		conn.Close()
		return nil, err
	}
	logger.Info("database ready", slog.String("driver", cfg.DatabaseDriver))
	return conn, nil
}

// newApplication wires repositories and services. notifier and uploader may be nil.
func newApplication(
	conn *sql.DB,
	cfg *config.Config,
	shuffler brackets.Shuffler,
	notifier services.Notifier,
	uploader storage.FileUploader,
	logger *slog.Logger,
) *application {
	teamRepo := repositories.NewTeamRepository(conn, cfg.DatabaseDriver)
	matchRepo := repositories.NewMatchRepository(conn, cfg.DatabaseDriver)
	drawRepo := repositories.NewDrawRepository(conn, cfg.DatabaseDriver)
	settingsRepo := repositories.NewSettingsRepository(conn, cfg.DatabaseDriver)

	tournament := services.NewTournamentService(conn, teamRepo, matchRepo, drawRepo, settingsRepo,
		cfg.Rules, shuffler, notifier, logger)
	teams := services.NewTeamService(teamRepo, settingsRepo, tournament, notifier, logger)
	matches := services.NewMatchService(conn, teamRepo, matchRepo, drawRepo, tournament, notifier, logger)
	bracket := services.NewBracketService(conn, matchRepo, drawRepo, tournament, notifier, logger)

	return &application{
		db:         conn,
		tournament: tournament,
		teams:      teams,
		matches:    matches,
		bracket:    bracket,
		export:     services.NewExportService(teamRepo, matchRepo, tournament, bracket, uploader, logger),
		demo:       services.NewDemoService(tournament, teams, matches, logger),
		auth:       services.NewAuthService(cfg.AdminPasswordHash, logger),
	}
}
