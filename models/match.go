package models

// PhaseGroup is the phase label of every round-robin match.
const PhaseGroup = "Group"

type Match struct {
	ID           int    `json:"id" db:"id"`
	Phase        string `json:"phase" db:"phase"`
	HomeTeamID   int    `json:"home_team_id" db:"home_team_id"`
	AwayTeamID   int    `json:"away_team_id" db:"away_team_id"`
	HomeGoals    int    `json:"home_goals" db:"home_goals"`
	AwayGoals    int    `json:"away_goals" db:"away_goals"`
	WinnerTeamID *int   `json:"winner_team_id,omitempty" db:"winner_team_id"`

	HomeTeam string `json:"home_team" db:"-"`
	AwayTeam string `json:"away_team" db:"-"`
	Winner   string `json:"winner,omitempty" db:"-"`
}

func (m *Match) IsDraw() bool {
	return m.HomeGoals == m.AwayGoals
}

// Involves reports whether the team played in the match on either side.
func (m *Match) Involves(teamID int) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// SameFixture reports whether the match was played between a and b, in either orientation.
func (m *Match) SameFixture(a, b int) bool {
	return (m.HomeTeamID == a && m.AwayTeamID == b) || (m.HomeTeamID == b && m.AwayTeamID == a)
}

// DecideWinner returns the id of the side with strictly more goals, or nil for a draw.
func DecideWinner(homeTeamID, awayTeamID, homeGoals, awayGoals int) *int {
	switch {
	case homeGoals > awayGoals:
		id := homeTeamID
		return &id
	case awayGoals > homeGoals:
		id := awayTeamID
		return &id
	default:
		return nil
	}
}
