package brackets

import "github.com/Dosada05/zone-cup/models"

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() PairingGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

func (g *RoundRobinGenerator) Generate(params GenerateParams) ([]models.Pairing, error) {
	return PendingFixtures(params.Teams, params.Matches), nil
}

// PendingFixtures returns every pair of distinct teams that has not met yet in the
// group phase. Home/away orientation is ignored when matching recorded games, and
// pairs come out in the enumeration order of teams.
func PendingFixtures(teams []models.Team, matches []models.Match) []models.Pairing {
	if len(teams) < 2 {
		return []models.Pairing{}
	}

	type fixtureKey struct{ low, high int }
	keyOf := func(a, b int) fixtureKey {
		if a > b {
			a, b = b, a
		}
		return fixtureKey{a, b}
	}

	played := make(map[fixtureKey]struct{}, len(matches))
	for _, m := range matches {
		if m.Phase != models.PhaseGroup {
			continue
		}
		played[keyOf(m.HomeTeamID, m.AwayTeamID)] = struct{}{}
	}

	pending := make([]models.Pairing, 0, len(teams)*(len(teams)-1)/2)
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			if _, ok := played[keyOf(teams[i].ID, teams[j].ID)]; ok {
				continue
			}
			pending = append(pending, models.NewPairing(teams[i].Ref(), teams[j].Ref()))
		}
	}
	return pending
}
