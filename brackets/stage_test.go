package brackets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dosada05/zone-cup/models"
)

func TestResolveStage(t *testing.T) {
	rounds := RoundSequence(8)
	tests := []struct {
		name  string
		facts StageFacts
		want  models.Stage
	}{
		{
			name:  "registration",
			facts: StageFacts{Rounds: rounds},
			want:  models.Stage{Kind: models.StageRegistration},
		},
		{
			name:  "group play",
			facts: StageFacts{TeamsLocked: true, Rounds: rounds},
			want:  models.Stage{Kind: models.StageGroupPlay},
		},
		{
			name:  "first knockout round",
			facts: StageFacts{TeamsLocked: true, GroupsLocked: true, Rounds: rounds},
			want:  models.Stage{Kind: models.StageKnockout, Round: "Quarterfinals"},
		},
		{
			name: "semifinals after quarterfinal results",
			facts: StageFacts{
				TeamsLocked: true, GroupsLocked: true, Rounds: rounds,
				RoundMatches: map[string]int{"Quarterfinals": 4},
			},
			want: models.Stage{Kind: models.StageKnockout, Round: "Semifinals"},
		},
		{
			name: "completed",
			facts: StageFacts{
				TeamsLocked: true, GroupsLocked: true, Rounds: rounds,
				RoundMatches: map[string]int{"Quarterfinals": 4, "Semifinals": 2, "Final": 1},
				ChampionSet:  true,
			},
			want: models.Stage{Kind: models.StageCompleted},
		},
		{
			name:  "unlocked roster overrides groups flag",
			facts: StageFacts{TeamsLocked: false, GroupsLocked: true, Rounds: rounds},
			want:  models.Stage{Kind: models.StageRegistration},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveStage(tt.facts))
		})
	}
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "knockout:Final", models.Stage{Kind: models.StageKnockout, Round: "Final"}.String())
	assert.Equal(t, "group_play", models.Stage{Kind: models.StageGroupPlay}.String())
}
