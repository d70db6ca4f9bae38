package models

type Team struct {
	ID    int    `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Zone  string `json:"zone" db:"zone"`
	Color string `json:"color" db:"color"`
}

// TeamRef is the minimal reference to a team used by pairings and winner lookups.
type TeamRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (t *Team) Ref() TeamRef {
	return TeamRef{ID: t.ID, Name: t.Name}
}
