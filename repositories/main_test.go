package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	database "github.com/Dosada05/zone-cup/db"
	"github.com/Dosada05/zone-cup/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := database.Connect(database.DriverSQLite, ":memory:", time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, database.Migrate(context.Background(), conn, database.DriverSQLite))
	return conn
}

func createTeam(t *testing.T, repo TeamRepository, name, zone, color string) models.Team {
	t.Helper()
	team := models.Team{Name: name, Zone: zone, Color: color}
	require.NoError(t, repo.Create(context.Background(), &team))
	return team
}
