package brackets

import (
	"fmt"

	"github.com/Dosada05/zone-cup/models"
)

// FinalRound is the round whose single match decides the champion.
const FinalRound = "Final"

type KnockoutGenerator struct{}

func NewKnockoutGenerator() PairingGenerator {
	return &KnockoutGenerator{}
}

func (g *KnockoutGenerator) GetName() string {
	return "Knockout"
}

func (g *KnockoutGenerator) Generate(params GenerateParams) ([]models.Pairing, error) {
	winners, err := ResolveWinners(params.Matches)
	if err != nil {
		return nil, err
	}
	return PairWinners(winners, params.Shuffler)
}

// ResolveWinners returns the winner of every match, in match order.
func ResolveWinners(matches []models.Match) ([]models.TeamRef, error) {
	winners := make([]models.TeamRef, 0, len(matches))
	for _, m := range matches {
		w, err := matchWinner(m)
		if err != nil {
			return nil, err
		}
		winners = append(winners, w)
	}
	return winners, nil
}

func matchWinner(m models.Match) (models.TeamRef, error) {
	if m.IsDraw() {
		return models.TeamRef{}, fmt.Errorf("%w: match %d (%s) ended %d-%d", ErrIntegrityViolation, m.ID, m.Phase, m.HomeGoals, m.AwayGoals)
	}

	expected := models.DecideWinner(m.HomeTeamID, m.AwayTeamID, m.HomeGoals, m.AwayGoals)
	if m.WinnerTeamID == nil || *m.WinnerTeamID != *expected {
		return models.TeamRef{}, fmt.Errorf("%w: match %d (%s) winner does not match the score", ErrIntegrityViolation, m.ID, m.Phase)
	}

	if *expected == m.HomeTeamID {
		return models.TeamRef{ID: m.HomeTeamID, Name: m.HomeTeam}, nil
	}
	return models.TeamRef{ID: m.AwayTeamID, Name: m.AwayTeam}, nil
}

// PairWinners shuffles the winners and pairs them consecutively: (0,1), (2,3), ...
// The shuffle keeps the next round independent of recording order and bracket position.
func PairWinners(winners []models.TeamRef, s Shuffler) ([]models.Pairing, error) {
	if len(winners) < 2 {
		return []models.Pairing{}, nil
	}
	if len(winners)%2 != 0 {
		return nil, fmt.Errorf("%w: %d winners", ErrOddWinnerCount, len(winners))
	}

	if s == nil {
		return nil, ErrNoShuffler
	}

	pool := make([]models.TeamRef, len(winners))
	copy(pool, winners)
	shuffle(pool, s)

	pairings := make([]models.Pairing, 0, len(pool)/2)
	for i := 0; i+1 < len(pool); i += 2 {
		pairings = append(pairings, models.NewPairing(pool[i], pool[i+1]))
	}
	return pairings, nil
}

// Champion returns the winner of the final, or nil while it has not been played.
func Champion(finalMatches []models.Match) (*models.TeamRef, error) {
	switch len(finalMatches) {
	case 0:
		return nil, nil
	case 1:
		w, err := matchWinner(finalMatches[0])
		if err != nil {
			return nil, err
		}
		return &w, nil
	default:
		return nil, fmt.Errorf("%w: %d matches recorded for the %s", ErrIntegrityViolation, len(finalMatches), FinalRound)
	}
}
