package models

type BracketRound struct {
	Name    string  `json:"name"`
	Draw    []Draw  `json:"draw"`
	Matches []Match `json:"matches"`
}

type Bracket struct {
	Stage    Stage          `json:"stage"`
	Rounds   []BracketRound `json:"rounds"`
	Champion *TeamRef       `json:"champion,omitempty"`
}

type ZoneOverview struct {
	Zone            string        `json:"zone"`
	Standings       []StandingRow `json:"standings"`
	PendingFixtures []Pairing     `json:"pending_fixtures"`
}

type Overview struct {
	Stage       Stage          `json:"stage"`
	TeamCount   int            `json:"team_count"`
	Zones       []ZoneOverview `json:"zones"`
	RoundsOrder []string       `json:"rounds_order"`
	Champion    *TeamRef       `json:"champion,omitempty"`
}
