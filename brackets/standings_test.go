package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/zone-cup/models"
)

func TestComputeStandings_FourTeamScenario(t *testing.T) {
	a, b, c, d := fourTeams()
	matches := []models.Match{
		groupMatch(1, a, b, 2, 1),
		groupMatch(2, a, c, 1, 1),
		groupMatch(3, a, d, 0, 3),
		groupMatch(4, b, c, 0, 0),
		groupMatch(5, b, d, 1, 1),
		groupMatch(6, c, d, 2, 0),
	}

	rows := ComputeStandings([]models.Team{a, b, c, d}, matches)
	require.Len(t, rows, 4)

	want := []models.StandingRow{
		{Position: 1, TeamID: 3, Team: "C", Played: 3, Won: 1, Drawn: 2, Lost: 0, GoalsFor: 3, GoalsAgainst: 1, GoalDifference: 2, Points: 5},
		{Position: 2, TeamID: 4, Team: "D", Played: 3, Won: 1, Drawn: 1, Lost: 1, GoalsFor: 4, GoalsAgainst: 3, GoalDifference: 1, Points: 4},
		{Position: 3, TeamID: 1, Team: "A", Played: 3, Won: 1, Drawn: 1, Lost: 1, GoalsFor: 3, GoalsAgainst: 5, GoalDifference: -2, Points: 4},
		{Position: 4, TeamID: 2, Team: "B", Played: 3, Won: 0, Drawn: 2, Lost: 1, GoalsFor: 2, GoalsAgainst: 3, GoalDifference: -1, Points: 2},
	}
	assert.Equal(t, want, rows)
}

func TestComputeStandings_PointsLaw(t *testing.T) {
	a, b, c, d := fourTeams()
	matches := []models.Match{
		groupMatch(1, a, b, 3, 0),
		groupMatch(2, c, d, 2, 2),
		groupMatch(3, b, c, 1, 4),
		groupMatch(4, d, a, 0, 0),
	}
	rows := ComputeStandings([]models.Team{a, b, c, d}, matches)

	decisive, drawn, total := 0, 0, 0
	for _, m := range matches {
		if m.IsDraw() {
			drawn++
		} else {
			decisive++
		}
	}
	for _, r := range rows {
		total += r.Points
		assert.Equal(t, r.Played, r.Won+r.Drawn+r.Lost, r.Team)
		assert.Equal(t, r.GoalsFor-r.GoalsAgainst, r.GoalDifference, r.Team)
	}
	assert.Equal(t, 3*decisive+2*drawn, total)
}

func TestComputeStandings_IgnoresKnockoutAndForeignTeams(t *testing.T) {
	a, b, _, _ := fourTeams()
	stranger := models.Team{ID: 99, Name: "Z", Zone: "B"}
	ko := groupMatch(10, a, b, 5, 0)
	ko.Phase = "Final"

	rows := ComputeStandings([]models.Team{a, b}, []models.Match{
		ko,
		groupMatch(11, a, stranger, 1, 0),
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Team)
	assert.Equal(t, 1, rows[0].Played)
	assert.Equal(t, 3, rows[0].Points)
	assert.Equal(t, 0, rows[1].Played)
}

func TestComputeStandings_TeamsWithoutMatchesGetZeroRows(t *testing.T) {
	a, b, c, _ := fourTeams()
	rows := ComputeStandings([]models.Team{c, b, a}, nil)

	require.Len(t, rows, 3)
	for i, r := range rows {
		assert.Equal(t, i+1, r.Position)
		assert.Zero(t, r.Points)
	}
	// Равные строки упорядочены по имени.
	assert.Equal(t, []string{"A", "B", "C"}, []string{rows[0].Team, rows[1].Team, rows[2].Team})
}

func TestComputeStandings_GoalsForBreaksTie(t *testing.T) {
	a, b, c, d := fourTeams()
	// A and B both win by two; B scores more.
	rows := ComputeStandings([]models.Team{a, b, c, d}, []models.Match{
		groupMatch(1, a, c, 2, 0),
		groupMatch(2, b, d, 4, 2),
	})
	assert.Equal(t, "B", rows[0].Team)
	assert.Equal(t, "A", rows[1].Team)
}

func TestComputeStandings_Empty(t *testing.T) {
	assert.Empty(t, ComputeStandings(nil, nil))
}
