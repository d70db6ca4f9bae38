package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Dosada05/zone-cup/brackets"
	"github.com/Dosada05/zone-cup/config"
	database "github.com/Dosada05/zone-cup/db"
	"github.com/Dosada05/zone-cup/models"
	"github.com/Dosada05/zone-cup/repositories"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) Notify(eventType string, _ interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, eventType)
}

func (n *recordingNotifier) Events() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.events...)
}

type testEnv struct {
	db         *sql.DB
	teamRepo   repositories.TeamRepository
	matchRepo  repositories.MatchRepository
	drawRepo   repositories.DrawRepository
	settings   repositories.SettingsRepository
	tournament TournamentService
	teams      TeamService
	matches    MatchService
	bracket    BracketService
	demo       DemoService
	notifier   *recordingNotifier
}

func ptr[T any](v T) *T {
	return &v
}

func testRules(zones []string, qualifiers, maxTeams int, requireFull bool) config.Rules {
	return config.Rules{
		Zones:             zones,
		QualifiersPerZone: qualifiers,
		MaxTeamsPerZone:   maxTeams,
		DemoToolsEnabled:  ptr(true),
		RequireFullZones:  ptr(requireFull),
	}
}

func newTestEnv(t *testing.T, rules config.Rules) *testEnv {
	t.Helper()
	ctx := context.Background()

	conn, err := database.Connect(database.DriverSQLite, ":memory:", time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, database.Migrate(ctx, conn, database.DriverSQLite))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env := &testEnv{
		db:        conn,
		teamRepo:  repositories.NewTeamRepository(conn, database.DriverSQLite),
		matchRepo: repositories.NewMatchRepository(conn, database.DriverSQLite),
		drawRepo:  repositories.NewDrawRepository(conn, database.DriverSQLite),
		settings:  repositories.NewSettingsRepository(conn, database.DriverSQLite),
		notifier:  &recordingNotifier{},
	}
	env.tournament = NewTournamentService(conn, env.teamRepo, env.matchRepo, env.drawRepo, env.settings,
		rules, brackets.NewSeededShuffler(1), env.notifier, logger)
	env.teams = NewTeamService(env.teamRepo, env.settings, env.tournament, env.notifier, logger)
	env.matches = NewMatchService(conn, env.teamRepo, env.matchRepo, env.drawRepo, env.tournament, env.notifier, logger)
	env.bracket = NewBracketService(conn, env.matchRepo, env.drawRepo, env.tournament, env.notifier, logger)
	env.demo = NewDemoService(env.tournament, env.teams, env.matches, logger)
	return env
}

func (e *testEnv) addTeam(t *testing.T, name, zone string) models.Team {
	t.Helper()
	team, err := e.teams.AddTeam(context.Background(), TeamInput{Name: name, Zone: zone})
	require.NoError(t, err)
	return *team
}

func (e *testEnv) record(t *testing.T, home, away models.Team, hg, ag int) *models.Match {
	t.Helper()
	m, err := e.matches.RecordGroupResult(context.Background(), ResultInput{
		HomeTeamID: home.ID, AwayTeamID: away.ID, HomeGoals: hg, AwayGoals: ag,
	})
	require.NoError(t, err)
	return m
}

func (e *testEnv) stage(t *testing.T) models.Stage {
	t.Helper()
	stage, err := e.tournament.Stage(context.Background())
	require.NoError(t, err)
	return *stage
}

// homeWins turns a draw into results where the drawn home side wins 1-0.
func homeWins(draws []models.Draw) []ResultInput {
	results := make([]ResultInput, 0, len(draws))
	for _, d := range draws {
		results = append(results, ResultInput{HomeTeamID: d.HomeTeamID, AwayTeamID: d.AwayTeamID, HomeGoals: 1})
	}
	return results
}
