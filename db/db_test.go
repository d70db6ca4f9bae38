package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	q := `SELECT id FROM matches WHERE phase = ? AND home_team_id = ?`

	assert.Equal(t, q, Rebind(DriverSQLite, q))
	assert.Equal(t, `SELECT id FROM matches WHERE phase = $1 AND home_team_id = $2`, Rebind(DriverPostgres, q))
	assert.Equal(t, `SELECT id FROM matches WHERE phase = $1 AND home_team_id = $2`, Rebind(DriverPgx, q))
}

func TestMigrate_SQLiteIsIdempotent(t *testing.T) {
	conn, err := Connect(DriverSQLite, ":memory:", time.Second)
	require.NoError(t, err)
	defer conn.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, conn, DriverSQLite))
	require.NoError(t, Migrate(ctx, conn, DriverSQLite))

	for _, table := range []string{"teams", "matches", "knockout_draws", "tournament_settings"} {
		var name string
		err := conn.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
	}
}

func TestMigrate_ForeignKeysEnforced(t *testing.T) {
	conn, err := Connect(DriverSQLite, ":memory:", time.Second)
	require.NoError(t, err)
	defer conn.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, conn, DriverSQLite))

	_, err = conn.ExecContext(ctx, `INSERT INTO matches (phase, home_team_id, away_team_id, home_goals, away_goals) VALUES ('Group', 1, 2, 0, 0)`)
	assert.Error(t, err)
}
