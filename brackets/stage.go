package brackets

import "github.com/Dosada05/zone-cup/models"

// StageFacts are the stored facts the tournament stage is derived from.
type StageFacts struct {
	TeamsLocked  bool
	GroupsLocked bool
	Rounds       []string       // knockout rounds in playing order
	RoundMatches map[string]int // recorded matches per knockout round
	ChampionSet  bool
}

// ResolveStage is the single place where the tournament stage is derived.
func ResolveStage(f StageFacts) models.Stage {
	switch {
	case !f.TeamsLocked:
		return models.Stage{Kind: models.StageRegistration}
	case !f.GroupsLocked:
		return models.Stage{Kind: models.StageGroupPlay}
	case f.ChampionSet:
		return models.Stage{Kind: models.StageCompleted}
	}

	for _, round := range f.Rounds {
		if f.RoundMatches[round] == 0 {
			return models.Stage{Kind: models.StageKnockout, Round: round}
		}
	}
	// Every round has results but no champion: the last round is still open for correction.
	if len(f.Rounds) > 0 {
		return models.Stage{Kind: models.StageKnockout, Round: f.Rounds[len(f.Rounds)-1]}
	}
	return models.Stage{Kind: models.StageKnockout}
}
