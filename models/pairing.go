package models

type Pairing struct {
	HomeTeamID int    `json:"home_team_id"`
	HomeTeam   string `json:"home_team"`
	AwayTeamID int    `json:"away_team_id"`
	AwayTeam   string `json:"away_team"`
}

func NewPairing(home, away TeamRef) Pairing {
	return Pairing{
		HomeTeamID: home.ID,
		HomeTeam:   home.Name,
		AwayTeamID: away.ID,
		AwayTeam:   away.Name,
	}
}

// Draw is a knockout pairing persisted between the draw and the recording of its result.
type Draw struct {
	ID       int    `json:"id" db:"id"`
	Phase    string `json:"phase" db:"phase"`
	Position int    `json:"position" db:"position"`
	Pairing
}
