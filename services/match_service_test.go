package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/zone-cup/brackets"
	"github.com/Dosada05/zone-cup/models"
)

func TestMatchService_RecordGroupResult(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, testRules([]string{"A", "B"}, 1, 2, true))

	a1 := env.addTeam(t, "A1", "A")
	a2 := env.addTeam(t, "A2", "A")
	b1 := env.addTeam(t, "B1", "B")
	b2 := env.addTeam(t, "B2", "B")

	_, err := env.matches.RecordGroupResult(ctx, ResultInput{HomeTeamID: a1.ID, AwayTeamID: a2.ID, HomeGoals: 1})
	assert.ErrorIs(t, err, ErrRosterNotLocked)
	require.NoError(t, env.tournament.LockTeams(ctx))

	first := env.record(t, a1, a2, 2, 1)
	assert.Equal(t, models.PhaseGroup, first.Phase)
	require.NotNil(t, first.WinnerTeamID)
	assert.Equal(t, a1.ID, *first.WinnerTeamID)
	assert.Equal(t, "A1", first.Winner)

	// Повторный ввод в обратной ориентации исправляет тот же матч.
	corrected := env.record(t, a2, a1, 3, 0)
	assert.Equal(t, first.ID, corrected.ID)
	assert.Equal(t, a1.ID, corrected.HomeTeamID)
	assert.Equal(t, 0, corrected.HomeGoals)
	assert.Equal(t, 3, corrected.AwayGoals)
	require.NotNil(t, corrected.WinnerTeamID)
	assert.Equal(t, a2.ID, *corrected.WinnerTeamID)

	drawn := env.record(t, b1, b2, 1, 1)
	assert.Nil(t, drawn.WinnerTeamID)

	group, err := env.matches.ListByPhase(ctx, models.PhaseGroup)
	require.NoError(t, err)
	assert.Len(t, group, 2)

	tests := []struct {
		name  string
		input ResultInput
		want  error
	}{
		{"same team", ResultInput{HomeTeamID: a1.ID, AwayTeamID: a1.ID}, ErrSameTeam},
		{"different zones", ResultInput{HomeTeamID: a1.ID, AwayTeamID: b1.ID}, ErrDifferentZones},
		{"unknown team", ResultInput{HomeTeamID: a1.ID, AwayTeamID: 999}, ErrTeamNotFound},
		{"negative goals", ResultInput{HomeTeamID: a1.ID, AwayTeamID: a2.ID, HomeGoals: -1}, ErrValidationFailed},
		{"missing team", ResultInput{HomeTeamID: a1.ID}, ErrValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.matches.RecordGroupResult(ctx, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Contains(t, env.notifier.Events(), brackets.EventMatchRecorded)

	require.NoError(t, env.tournament.LockGroups(ctx))
	_, err = env.matches.RecordGroupResult(ctx, ResultInput{HomeTeamID: a1.ID, AwayTeamID: a2.ID, HomeGoals: 1})
	assert.ErrorIs(t, err, ErrGroupsLocked)

	_, err = env.matches.GetMatch(ctx, 999)
	assert.ErrorIs(t, err, ErrMatchNotFound)
	_, err = env.matches.ListByPhase(ctx, "Quarterfinals")
	assert.ErrorIs(t, err, ErrUnknownRound)
}

// knockoutEnv returns a two-zone tournament with two qualifiers per zone and the
// group phase locked, so Semifinals is the active round.
func knockoutEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	env := newTestEnv(t, testRules([]string{"A", "B"}, 2, 2, true))

	a1 := env.addTeam(t, "A1", "A")
	a2 := env.addTeam(t, "A2", "A")
	b1 := env.addTeam(t, "B1", "B")
	b2 := env.addTeam(t, "B2", "B")
	require.NoError(t, env.tournament.LockTeams(ctx))
	env.record(t, a1, a2, 1, 0)
	env.record(t, b1, b2, 2, 2)
	require.NoError(t, env.tournament.LockGroups(ctx))
	return env
}

func TestMatchService_RecordKnockoutResults(t *testing.T) {
	ctx := context.Background()
	env := knockoutEnv(t)
	assert.Equal(t, models.Stage{Kind: models.StageKnockout, Round: "Semifinals"}, env.stage(t))

	_, err := env.matches.RecordKnockoutResults(ctx, "Round of 32", nil)
	assert.ErrorIs(t, err, ErrUnknownRound)
	_, err = env.matches.RecordKnockoutResults(ctx, brackets.FinalRound, nil)
	assert.ErrorIs(t, err, ErrRoundNotActive)
	_, err = env.matches.RecordKnockoutResults(ctx, "Semifinals", nil)
	assert.ErrorIs(t, err, ErrDrawMissing)

	draws, err := env.bracket.DrawActiveRound(ctx)
	require.NoError(t, err)
	require.Len(t, draws, 2)
	// B1 and B2 drew level on everything, so the name puts B1 first.
	assert.Equal(t, "A1", draws[0].HomeTeam)
	assert.Equal(t, "B2", draws[0].AwayTeam)
	assert.Equal(t, "A2", draws[1].HomeTeam)
	assert.Equal(t, "B1", draws[1].AwayTeam)

	level := homeWins(draws)
	level[0].HomeGoals, level[0].AwayGoals = 2, 2
	_, err = env.matches.RecordKnockoutResults(ctx, "Semifinals", level)
	assert.ErrorIs(t, err, ErrKnockoutDrawNotAllowed)

	_, err = env.matches.RecordKnockoutResults(ctx, "Semifinals", homeWins(draws)[:1])
	assert.ErrorIs(t, err, ErrResultsMismatch)

	dup := homeWins(draws)
	dup[1] = dup[0]
	_, err = env.matches.RecordKnockoutResults(ctx, "Semifinals", dup)
	assert.ErrorIs(t, err, ErrResultsMismatch)

	stranger := homeWins(draws)
	stranger[1].AwayTeamID = draws[0].AwayTeamID
	_, err = env.matches.RecordKnockoutResults(ctx, "Semifinals", stranger)
	assert.ErrorIs(t, err, ErrResultsMismatch)

	// Второй результат введён в обратной ориентации: B1 обыгрывает A2 3-1.
	results := []ResultInput{
		{HomeTeamID: draws[0].HomeTeamID, AwayTeamID: draws[0].AwayTeamID, HomeGoals: 1, AwayGoals: 0},
		{HomeTeamID: draws[1].AwayTeamID, AwayTeamID: draws[1].HomeTeamID, HomeGoals: 3, AwayGoals: 1},
	}
	stored, err := env.matches.RecordKnockoutResults(ctx, "Semifinals", results)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	var reversed *models.Match
	for i := range stored {
		if stored[i].HomeTeamID == draws[1].HomeTeamID {
			reversed = &stored[i]
		}
	}
	require.NotNil(t, reversed)
	assert.Equal(t, draws[1].AwayTeamID, reversed.AwayTeamID)
	assert.Equal(t, 1, reversed.HomeGoals)
	assert.Equal(t, 3, reversed.AwayGoals)
	assert.Equal(t, "B1", reversed.Winner)

	assert.Equal(t, models.Stage{Kind: models.StageKnockout, Round: brackets.FinalRound}, env.stage(t))
	_, err = env.matches.RecordKnockoutResults(ctx, "Semifinals", results)
	assert.ErrorIs(t, err, ErrRoundNotActive)

	events := env.notifier.Events()
	assert.Contains(t, events, brackets.EventRoundDrawn)
	assert.Contains(t, events, brackets.EventRoundCompleted)
}
