package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/zone-cup/brackets"
	"github.com/Dosada05/zone-cup/models"
)

func TestBracketService_DrawIsStable(t *testing.T) {
	ctx := context.Background()
	env := knockoutEnv(t)

	first, err := env.bracket.DrawActiveRound(ctx)
	require.NoError(t, err)
	second, err := env.bracket.DrawActiveRound(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, env.tournament.ResetKnockout(ctx))
	redrawn, err := env.bracket.DrawActiveRound(ctx)
	require.NoError(t, err)
	require.Len(t, redrawn, len(first))
	for i := range first {
		assert.Equal(t, first[i].Pairing, redrawn[i].Pairing)
		assert.Equal(t, i+1, redrawn[i].Position)
	}
}

func TestBracketService_NotInKnockout(t *testing.T) {
	env := newTestEnv(t, testRules([]string{"A", "B"}, 1, 2, true))
	_, err := env.bracket.DrawActiveRound(context.Background())
	assert.ErrorIs(t, err, ErrGroupsNotLocked)
}

func TestBracketService_FullRun(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, testRules([]string{"A", "B"}, 2, 3, true))

	for _, name := range []string{"A1", "A2", "A3"} {
		env.addTeam(t, name, "A")
	}
	for _, name := range []string{"B1", "B2", "B3"} {
		env.addTeam(t, name, "B")
	}
	require.NoError(t, env.tournament.LockTeams(ctx))
	_, err := env.demo.GenerateGroupResults(ctx)
	require.NoError(t, err)
	require.NoError(t, env.tournament.LockGroups(ctx))

	semis, err := env.bracket.DrawActiveRound(ctx)
	require.NoError(t, err)
	require.Len(t, semis, 2)
	_, err = env.matches.RecordKnockoutResults(ctx, "Semifinals", homeWins(semis))
	require.NoError(t, err)

	final, err := env.bracket.DrawActiveRound(ctx)
	require.NoError(t, err)
	require.Len(t, final, 1)
	finalists := []int{final[0].HomeTeamID, final[0].AwayTeamID}
	assert.ElementsMatch(t, []int{semis[0].HomeTeamID, semis[1].HomeTeamID}, finalists)

	_, err = env.matches.RecordKnockoutResults(ctx, brackets.FinalRound, homeWins(final))
	require.NoError(t, err)

	assert.Equal(t, models.StageCompleted, env.stage(t).Kind)
	champion, err := env.tournament.Champion(ctx)
	require.NoError(t, err)
	require.NotNil(t, champion)
	assert.Equal(t, final[0].HomeTeamID, champion.ID)

	bracket, err := env.bracket.GetBracket(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StageCompleted, bracket.Stage.Kind)
	require.Len(t, bracket.Rounds, 2)
	assert.Equal(t, "Semifinals", bracket.Rounds[0].Name)
	assert.Len(t, bracket.Rounds[0].Matches, 2)
	assert.Len(t, bracket.Rounds[1].Draw, 1)
	require.NotNil(t, bracket.Champion)
	assert.Equal(t, champion.Name, bracket.Champion.Name)

	_, err = env.bracket.DrawActiveRound(ctx)
	assert.ErrorIs(t, err, ErrTournamentCompleted)
	_, err = env.matches.RecordKnockoutResults(ctx, brackets.FinalRound, homeWins(final))
	assert.ErrorIs(t, err, ErrTournamentCompleted)

	// Сброс плей-офф возвращает турнир к первому раунду.
	require.NoError(t, env.tournament.ResetKnockout(ctx))
	assert.Equal(t, models.Stage{Kind: models.StageKnockout, Round: "Semifinals"}, env.stage(t))
}
