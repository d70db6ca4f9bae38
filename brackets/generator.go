package brackets

import "github.com/Dosada05/zone-cup/models"

type GenerateParams struct {
	// Round robin
	Teams   []models.Team
	Matches []models.Match

	// Cross-seeding
	Zones      []string
	Standings  map[string][]models.StandingRow
	Qualifiers int

	// Knockout progression
	Shuffler Shuffler
}

type PairingGenerator interface {
	Generate(params GenerateParams) ([]models.Pairing, error)

	GetName() string
}
