package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/zone-cup/brackets"
	"github.com/Dosada05/zone-cup/models"
)

func TestTournamentService_FourTeamScenario(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, testRules([]string{"A", "B"}, 2, 4, false))

	a := env.addTeam(t, "A", "A")
	b := env.addTeam(t, "B", "A")
	c := env.addTeam(t, "C", "A")
	d := env.addTeam(t, "D", "A")
	env.addTeam(t, "E", "B")
	require.NoError(t, env.tournament.LockTeams(ctx))

	pending, err := env.tournament.PendingFixtures(ctx, "A")
	require.NoError(t, err)
	assert.Len(t, pending, 6)

	env.record(t, a, b, 2, 1)
	env.record(t, a, c, 1, 1)
	env.record(t, a, d, 0, 3)
	env.record(t, b, c, 0, 0)
	env.record(t, b, d, 1, 1)
	env.record(t, c, d, 2, 0)

	pending, err = env.tournament.PendingFixtures(ctx, "A")
	require.NoError(t, err)
	assert.Empty(t, pending)

	rows, err := env.tournament.Standings(ctx, "A")
	require.NoError(t, err)
	require.Len(t, rows, 4)

	type line struct {
		team                          string
		p, w, dr, l, gf, ga, gd, pts int
	}
	got := make([]line, len(rows))
	for i, r := range rows {
		got[i] = line{r.Team, r.Played, r.Won, r.Drawn, r.Lost, r.GoalsFor, r.GoalsAgainst, r.GoalDifference, r.Points}
	}
	assert.Equal(t, []line{
		{"C", 3, 1, 2, 0, 3, 1, 2, 5},
		{"D", 3, 1, 1, 1, 4, 3, 1, 4},
		{"A", 3, 1, 1, 1, 3, 5, -2, 4},
		{"B", 3, 0, 2, 1, 2, 3, -1, 2},
	}, got)

	_, err = env.tournament.Standings(ctx, "Z")
	assert.ErrorIs(t, err, ErrUnknownZone)
}

func TestTournamentService_InsufficientQualifiers(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, testRules([]string{"A"}, 4, 8, false))

	a := env.addTeam(t, "A", "A")
	b := env.addTeam(t, "B", "A")
	c := env.addTeam(t, "C", "A")
	require.NoError(t, env.tournament.LockTeams(ctx))
	env.record(t, a, b, 1, 0)
	env.record(t, a, c, 1, 0)
	env.record(t, b, c, 1, 0)
	require.NoError(t, env.tournament.LockGroups(ctx))

	pairings, err := env.tournament.SeedInitialKnockout(ctx)
	assert.ErrorIs(t, err, ErrInsufficientQualifiers)
	assert.Nil(t, pairings)

	_, err = env.bracket.DrawActiveRound(ctx)
	assert.ErrorIs(t, err, ErrInsufficientQualifiers)
}

func TestTournamentService_CrossSeedThroughStore(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, testRules([]string{"A", "B"}, 4, 4, true))

	// Зона A: a1 выигрывает всё, a4 проигрывает всё; то же в зоне B.
	zoneTeams := map[string][]models.Team{}
	for _, zone := range []string{"A", "B"} {
		for i := 1; i <= 4; i++ {
			name := zone + string(rune('0'+i))
			zoneTeams[zone] = append(zoneTeams[zone], env.addTeam(t, name, zone))
		}
	}
	require.NoError(t, env.tournament.LockTeams(ctx))

	_, err := env.tournament.SeedInitialKnockout(ctx)
	assert.ErrorIs(t, err, ErrGroupsNotLocked)

	for _, teams := range zoneTeams {
		for i := 0; i < len(teams); i++ {
			for j := i + 1; j < len(teams); j++ {
				env.record(t, teams[i], teams[j], 1, 0)
			}
		}
	}
	require.NoError(t, env.tournament.LockGroups(ctx))

	pairings, err := env.tournament.SeedInitialKnockout(ctx)
	require.NoError(t, err)
	got := make([][2]string, len(pairings))
	for i, p := range pairings {
		got[i] = [2]string{p.HomeTeam, p.AwayTeam}
	}
	assert.Equal(t, [][2]string{{"A1", "B4"}, {"A2", "B3"}, {"A3", "B2"}, {"A4", "B1"}}, got)
}

func TestTournamentService_StageTransitions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, testRules([]string{"A", "B"}, 1, 2, true))
	assert.Equal(t, models.StageRegistration, env.stage(t).Kind)

	a1 := env.addTeam(t, "A1", "A")
	env.addTeam(t, "B1", "B")
	assert.ErrorIs(t, env.tournament.LockTeams(ctx), ErrZonesNotFull)
	a2 := env.addTeam(t, "A2", "A")
	b2 := env.addTeam(t, "B2", "B")

	assert.ErrorIs(t, env.tournament.LockGroups(ctx), ErrRosterNotLocked)
	require.NoError(t, env.tournament.LockTeams(ctx))
	assert.Equal(t, models.StageGroupPlay, env.stage(t).Kind)

	env.record(t, a1, a2, 1, 0)
	assert.ErrorIs(t, env.tournament.LockGroups(ctx), ErrGroupPhaseIncomplete)

	// Unlocking the roster discards group results.
	require.NoError(t, env.tournament.UnlockTeams(ctx))
	assert.Equal(t, models.StageRegistration, env.stage(t).Kind)
	pending, err := env.tournament.PendingFixtures(ctx, "A")
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	require.NoError(t, env.tournament.LockTeams(ctx))
	env.record(t, a1, a2, 1, 0)
	require.NoError(t, env.tournament.ResetGroupResults(ctx))
	pending, err = env.tournament.PendingFixtures(ctx, "A")
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	env.record(t, a1, a2, 1, 0)
	assert.ErrorIs(t, env.tournament.LockGroups(ctx), ErrGroupPhaseIncomplete)
	b1 := teamByName(t, env, "B1")
	env.record(t, b1, b2, 0, 2)
	require.NoError(t, env.tournament.LockGroups(ctx))

	stage := env.stage(t)
	assert.Equal(t, models.Stage{Kind: models.StageKnockout, Round: brackets.FinalRound}, stage)
	assert.ErrorIs(t, env.tournament.UnlockTeams(ctx), ErrGroupsLocked)
	assert.ErrorIs(t, env.tournament.ResetGroupResults(ctx), ErrInvalidStageTransition)

	require.NoError(t, env.tournament.UnlockGroups(ctx))
	assert.Equal(t, models.StageGroupPlay, env.stage(t).Kind)
	assert.Contains(t, env.notifier.Events(), brackets.EventStageChanged)
}

func TestTournamentService_NextRoundPairings(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, testRules([]string{"A", "B"}, 2, 2, true))

	_, err := env.tournament.NextRoundPairings(ctx, "Round of 64")
	assert.ErrorIs(t, err, ErrUnknownRound)

	pairings, err := env.tournament.NextRoundPairings(ctx, "Semifinals")
	require.NoError(t, err)
	assert.Empty(t, pairings)
}

func TestTournamentService_ResetAllAndOverview(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, testRules([]string{"A", "B"}, 1, 2, true))

	a1 := env.addTeam(t, "A1", "A")
	a2 := env.addTeam(t, "A2", "A")
	env.addTeam(t, "B1", "B")
	env.addTeam(t, "B2", "B")
	require.NoError(t, env.tournament.LockTeams(ctx))
	env.record(t, a1, a2, 3, 1)

	overview, err := env.tournament.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StageGroupPlay, overview.Stage.Kind)
	assert.Equal(t, 4, overview.TeamCount)
	require.Len(t, overview.Zones, 2)
	assert.Equal(t, "A1", overview.Zones[0].Standings[0].Team)
	assert.Empty(t, overview.Zones[0].PendingFixtures)
	assert.Len(t, overview.Zones[1].PendingFixtures, 1)
	assert.Equal(t, []string{"Final"}, overview.RoundsOrder)
	assert.Nil(t, overview.Champion)

	require.NoError(t, env.tournament.ResetAll(ctx))
	assert.Equal(t, models.StageRegistration, env.stage(t).Kind)
	overview, err = env.tournament.Overview(ctx)
	require.NoError(t, err)
	assert.Zero(t, overview.TeamCount)
}

func teamByName(t *testing.T, env *testEnv, name string) models.Team {
	t.Helper()
	teams, err := env.teams.ListTeams(context.Background(), "")
	require.NoError(t, err)
	for _, team := range teams {
		if team.Name == name {
			return team
		}
	}
	t.Fatalf("team %s not found", name)
	return models.Team{}
}

func TestTournamentService_DefaultShuffler(t *testing.T) {
	ctx := context.Background()
	env := knockoutEnv(t)

	semis, err := env.bracket.DrawActiveRound(ctx)
	require.NoError(t, err)
	_, err = env.matches.RecordKnockoutResults(ctx, "Semifinals", homeWins(semis))
	require.NoError(t, err)

	unseeded := NewTournamentService(env.db, env.teamRepo, env.matchRepo, env.drawRepo, env.settings,
		env.tournament.Rules(), nil, nil, nil)
	pairings, err := unseeded.NextRoundPairings(ctx, "Semifinals")
	require.NoError(t, err)
	require.Len(t, pairings, 1)
	assert.ElementsMatch(t, []string{"A1", "A2"}, []string{pairings[0].HomeTeam, pairings[0].AwayTeam})
}
