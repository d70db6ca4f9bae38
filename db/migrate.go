package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

const schemaTemplate = `
CREATE TABLE IF NOT EXISTS teams (
	id {{pk}},
	name TEXT NOT NULL,
	zone TEXT NOT NULL,
	color TEXT NOT NULL,
	CONSTRAINT teams_name_key UNIQUE (name),
	CONSTRAINT teams_color_key UNIQUE (color)
);

CREATE INDEX IF NOT EXISTS idx_teams_zone ON teams (zone);

CREATE TABLE IF NOT EXISTS matches (
	id {{pk}},
	phase TEXT NOT NULL,
	home_team_id INTEGER NOT NULL REFERENCES teams (id) ON DELETE CASCADE,
	away_team_id INTEGER NOT NULL REFERENCES teams (id) ON DELETE CASCADE,
	home_goals INTEGER NOT NULL CHECK (home_goals >= 0),
	away_goals INTEGER NOT NULL CHECK (away_goals >= 0),
	winner_team_id INTEGER REFERENCES teams (id) ON DELETE CASCADE,
	CHECK (home_team_id <> away_team_id)
);

CREATE INDEX IF NOT EXISTS idx_matches_phase ON matches (phase);

CREATE TABLE IF NOT EXISTS knockout_draws (
	id {{pk}},
	phase TEXT NOT NULL,
	position INTEGER NOT NULL,
	home_team_id INTEGER NOT NULL REFERENCES teams (id) ON DELETE CASCADE,
	away_team_id INTEGER NOT NULL REFERENCES teams (id) ON DELETE CASCADE,
	CONSTRAINT knockout_draws_phase_position_key UNIQUE (phase, position)
);

CREATE TABLE IF NOT EXISTS tournament_settings (
	name TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if IsPostgres(driver) {
		pk = "SERIAL PRIMARY KEY"
	}
	schema := strings.ReplaceAll(schemaTemplate, "{{pk}}", pk)

	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
