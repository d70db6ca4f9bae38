package brackets

import (
	"sort"

	"github.com/Dosada05/zone-cup/models"
)

const (
	pointsForWin  = 3
	pointsForDraw = 1
)

// ComputeStandings builds the zone table for teams from the group-phase matches.
// Rows are recomputed from scratch on every call.
func ComputeStandings(teams []models.Team, matches []models.Match) []models.StandingRow {
	rows := make([]models.StandingRow, 0, len(teams))
	index := make(map[int]int, len(teams))
	for _, t := range teams {
		index[t.ID] = len(rows)
		rows = append(rows, models.StandingRow{TeamID: t.ID, Team: t.Name})
	}

	for _, m := range matches {
		if m.Phase != models.PhaseGroup {
			continue
		}
		if i, ok := index[m.HomeTeamID]; ok {
			addResult(&rows[i], m.HomeGoals, m.AwayGoals)
		}
		if i, ok := index[m.AwayTeamID]; ok {
			addResult(&rows[i], m.AwayGoals, m.HomeGoals)
		}
	}

	for i := range rows {
		r := &rows[i]
		r.Lost = r.Played - r.Won - r.Drawn
		r.GoalDifference = r.GoalsFor - r.GoalsAgainst
		r.Points = pointsForWin*r.Won + pointsForDraw*r.Drawn
	}

	// Points, goal difference, goals for; the team name keeps equal lines deterministic.
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Team < b.Team
	})

	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows
}

func addResult(row *models.StandingRow, scored, conceded int) {
	row.Played++
	row.GoalsFor += scored
	row.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		row.Won++
	case scored == conceded:
		row.Drawn++
	}
}
