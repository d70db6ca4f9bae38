package brackets

import "github.com/Dosada05/zone-cup/models"

func groupMatch(id int, home, away models.Team, hg, ag int) models.Match {
	return models.Match{
		ID:           id,
		Phase:        models.PhaseGroup,
		HomeTeamID:   home.ID,
		AwayTeamID:   away.ID,
		HomeTeam:     home.Name,
		AwayTeam:     away.Name,
		HomeGoals:    hg,
		AwayGoals:    ag,
		WinnerTeamID: models.DecideWinner(home.ID, away.ID, hg, ag),
	}
}

func knockoutMatch(id int, phase string, home, away models.TeamRef, hg, ag int) models.Match {
	return models.Match{
		ID:           id,
		Phase:        phase,
		HomeTeamID:   home.ID,
		AwayTeamID:   away.ID,
		HomeTeam:     home.Name,
		AwayTeam:     away.Name,
		HomeGoals:    hg,
		AwayGoals:    ag,
		WinnerTeamID: models.DecideWinner(home.ID, away.ID, hg, ag),
	}
}

func fourTeams() (a, b, c, d models.Team) {
	return models.Team{ID: 1, Name: "A", Zone: "A"},
		models.Team{ID: 2, Name: "B", Zone: "A"},
		models.Team{ID: 3, Name: "C", Zone: "A"},
		models.Team{ID: 4, Name: "D", Zone: "A"}
}

// identityShuffler leaves the order untouched.
type identityShuffler struct{}

func (identityShuffler) Shuffle(int, func(i, j int)) {}

// reverseShuffler reverses the order, a fixed non-identity permutation.
type reverseShuffler struct{}

func (reverseShuffler) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}
