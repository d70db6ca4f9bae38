package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "github.com/Dosada05/zone-cup/db"
	"github.com/Dosada05/zone-cup/models"
)

func TestDrawRepository(t *testing.T) {
	ctx := context.Background()
	conn := newTestDB(t)
	teams := NewTeamRepository(conn, database.DriverSQLite)
	repo := NewDrawRepository(conn, database.DriverSQLite)

	a := createTeam(t, teams, "A", "A", "#0000aa")
	b := createTeam(t, teams, "B", "B", "#0000bb")
	c := createTeam(t, teams, "C", "A", "#0000cc")
	d := createTeam(t, teams, "D", "B", "#0000dd")
	pairings := []models.Pairing{
		models.NewPairing(a.Ref(), d.Ref()),
		models.NewPairing(c.Ref(), b.Ref()),
	}

	created, err := repo.CreateBatch(ctx, nil, "Semifinals", pairings)
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, 1, created[0].Position)
	assert.Equal(t, 2, created[1].Position)

	stored, err := repo.ListByPhase(ctx, "Semifinals")
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, pairings[0], stored[0].Pairing)
	assert.Equal(t, pairings[1], stored[1].Pairing)

	_, err = repo.CreateBatch(ctx, nil, "Semifinals", pairings[:1])
	assert.ErrorIs(t, err, ErrDrawConflict)

	require.NoError(t, repo.DeleteAll(ctx, nil))
	stored, err = repo.ListByPhase(ctx, "Semifinals")
	require.NoError(t, err)
	assert.Empty(t, stored)
}
