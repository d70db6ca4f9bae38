package models

type StageKind string

const (
	StageRegistration StageKind = "registration"
	StageGroupPlay    StageKind = "group_play"
	StageKnockout     StageKind = "knockout"
	StageCompleted    StageKind = "completed"
)

type Stage struct {
	Kind  StageKind `json:"kind"`
	Round string    `json:"round,omitempty"` // только для StageKnockout
}

func (s Stage) String() string {
	if s.Kind == StageKnockout && s.Round != "" {
		return string(s.Kind) + ":" + s.Round
	}
	return string(s.Kind)
}
