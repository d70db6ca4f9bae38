package brackets

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/zone-cup/models"
)

func refs(n int) []models.TeamRef {
	out := make([]models.TeamRef, n)
	for i := range out {
		out[i] = models.TeamRef{ID: i + 1, Name: fmt.Sprintf("T%d", i+1)}
	}
	return out
}

func TestPairWinners_Conservation(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16} {
		winners := refs(n)
		for seed := uint64(0); seed < 5; seed++ {
			pairings, err := PairWinners(winners, NewSeededShuffler(seed))
			require.NoError(t, err)
			require.Len(t, pairings, n/2)

			seen := make(map[int]int)
			for _, p := range pairings {
				seen[p.HomeTeamID]++
				seen[p.AwayTeamID]++
			}
			require.Len(t, seen, n)
			for _, w := range winners {
				assert.Equal(t, 1, seen[w.ID], "team %d", w.ID)
			}
		}
	}
}

func TestPairWinners_ConsecutivePairsAfterShuffle(t *testing.T) {
	winners := refs(4)

	pairings, err := PairWinners(winners, identityShuffler{})
	require.NoError(t, err)
	assert.Equal(t, []models.Pairing{
		models.NewPairing(winners[0], winners[1]),
		models.NewPairing(winners[2], winners[3]),
	}, pairings)

	pairings, err = PairWinners(winners, reverseShuffler{})
	require.NoError(t, err)
	assert.Equal(t, []models.Pairing{
		models.NewPairing(winners[3], winners[2]),
		models.NewPairing(winners[1], winners[0]),
	}, pairings)

	// Input is not reordered in place.
	assert.Equal(t, refs(4), winners)
}

func TestPairWinners_SeededShufflerIsReproducible(t *testing.T) {
	first, err := PairWinners(refs(8), NewSeededShuffler(42))
	require.NoError(t, err)
	second, err := PairWinners(refs(8), NewSeededShuffler(42))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPairWinners_EdgeCases(t *testing.T) {
	pairings, err := PairWinners(nil, identityShuffler{})
	require.NoError(t, err)
	assert.Empty(t, pairings)

	pairings, err = PairWinners(refs(1), identityShuffler{})
	require.NoError(t, err)
	assert.Empty(t, pairings)

	_, err = PairWinners(refs(3), identityShuffler{})
	assert.ErrorIs(t, err, ErrOddWinnerCount)
}

func TestPairWinners_RequiresShuffler(t *testing.T) {
	_, err := PairWinners(refs(4), nil)
	assert.ErrorIs(t, err, ErrNoShuffler)

	_, err = NewKnockoutGenerator().Generate(GenerateParams{
		Matches: []models.Match{knockoutMatch(0, "Final", refs(2)[0], refs(2)[1], 1, 0)},
	})
	assert.NoError(t, err, "a lone winner needs no pairing")
}

func TestResolveWinners(t *testing.T) {
	teams := refs(4)
	matches := []models.Match{
		knockoutMatch(1, "Semifinals", teams[0], teams[1], 2, 1),
		knockoutMatch(2, "Semifinals", teams[2], teams[3], 0, 3),
	}

	winners, err := ResolveWinners(matches)
	require.NoError(t, err)
	assert.Equal(t, []models.TeamRef{teams[0], teams[3]}, winners)
}

func TestResolveWinners_IntegrityViolations(t *testing.T) {
	teams := refs(2)

	drawn := knockoutMatch(1, "Final", teams[0], teams[1], 1, 1)
	_, err := ResolveWinners([]models.Match{drawn})
	assert.ErrorIs(t, err, ErrIntegrityViolation)

	wrongWinner := knockoutMatch(2, "Final", teams[0], teams[1], 2, 0)
	wrongWinner.WinnerTeamID = &teams[1].ID
	_, err = ResolveWinners([]models.Match{wrongWinner})
	assert.ErrorIs(t, err, ErrIntegrityViolation)

	noWinner := knockoutMatch(3, "Final", teams[0], teams[1], 2, 0)
	noWinner.WinnerTeamID = nil
	_, err = ResolveWinners([]models.Match{noWinner})
	assert.ErrorIs(t, err, ErrIntegrityViolation)
}

func TestChampion(t *testing.T) {
	teams := refs(2)

	champ, err := Champion(nil)
	require.NoError(t, err)
	assert.Nil(t, champ)

	champ, err = Champion([]models.Match{knockoutMatch(1, FinalRound, teams[0], teams[1], 0, 2)})
	require.NoError(t, err)
	require.NotNil(t, champ)
	assert.Equal(t, teams[1], *champ)

	_, err = Champion([]models.Match{
		knockoutMatch(1, FinalRound, teams[0], teams[1], 0, 2),
		knockoutMatch(2, FinalRound, teams[0], teams[1], 3, 2),
	})
	assert.ErrorIs(t, err, ErrIntegrityViolation)

	_, err = Champion([]models.Match{knockoutMatch(1, FinalRound, teams[0], teams[1], 2, 2)})
	assert.ErrorIs(t, err, ErrIntegrityViolation)
}

func TestKnockoutGenerator(t *testing.T) {
	teams := refs(8)
	matches := make([]models.Match, 0, 4)
	for i := 0; i < 8; i += 2 {
		matches = append(matches, knockoutMatch(i, "Quarterfinals", teams[i], teams[i+1], 1, 0))
	}

	gen := NewKnockoutGenerator()
	assert.Equal(t, "Knockout", gen.GetName())
	pairings, err := gen.Generate(GenerateParams{Matches: matches, Shuffler: identityShuffler{}})
	require.NoError(t, err)
	assert.Equal(t, []models.Pairing{
		models.NewPairing(teams[0], teams[2]),
		models.NewPairing(teams[4], teams[6]),
	}, pairings)
}

func TestLockedShuffler(t *testing.T) {
	s := NewLockedShuffler(NewSeededShuffler(7))
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, err := PairWinners(refs(8), s)
			assert.NoError(t, err)
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}
