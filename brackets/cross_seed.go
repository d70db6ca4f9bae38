package brackets

import (
	"fmt"

	"github.com/Dosada05/zone-cup/models"
)

type CrossSeedGenerator struct{}

func NewCrossSeedGenerator() PairingGenerator {
	return &CrossSeedGenerator{}
}

func (g *CrossSeedGenerator) GetName() string {
	return "CrossSeed"
}

func (g *CrossSeedGenerator) Generate(params GenerateParams) ([]models.Pairing, error) {
	return CrossSeed(params.Zones, params.Standings, params.Qualifiers)
}

// CrossSeed pairs the qualifiers of the first zone against those of the second in
// reverse order: 1st of A meets the last qualifier of B, 2nd of A the one before it,
// and so on. Standings must already be ranked.
func CrossSeed(zones []string, standings map[string][]models.StandingRow, qualifiers int) ([]models.Pairing, error) {
	if qualifiers < 1 {
		return nil, fmt.Errorf("%w: qualifier count must be positive, got %d", ErrUnsupportedTopology, qualifiers)
	}

	qualified := make(map[string][]models.StandingRow, len(zones))
	for _, zone := range zones {
		table := standings[zone]
		if len(table) < qualifiers {
			return nil, fmt.Errorf("%w: zone %s has %d teams, %d required", ErrInsufficientQualifiers, zone, len(table), qualifiers)
		}
		qualified[zone] = table[:qualifiers]
	}

	if len(zones) != 2 {
		return nil, fmt.Errorf("%w: cross-seeding needs exactly 2 zones, %d configured", ErrUnsupportedTopology, len(zones))
	}
	if !ValidBracketSize(2 * qualifiers) {
		return nil, fmt.Errorf("%w: bracket of %d teams, want a power of two up to %d", ErrUnsupportedTopology, 2*qualifiers, MaxBracketSize)
	}

	zoneA, zoneB := qualified[zones[0]], qualified[zones[1]]
	pairings := make([]models.Pairing, 0, qualifiers)
	for i := 0; i < qualifiers; i++ {
		a := zoneA[i]
		b := zoneB[qualifiers-1-i]
		pairings = append(pairings, models.NewPairing(
			models.TeamRef{ID: a.TeamID, Name: a.Team},
			models.TeamRef{ID: b.TeamID, Name: b.Team},
		))
	}
	return pairings, nil
}
