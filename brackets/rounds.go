package brackets

import "slices"

// MaxBracketSize is the largest opening round the naming table covers.
const MaxBracketSize = 16

var roundNames = map[int]string{
	16: "Round of 16",
	8:  "Quarterfinals",
	4:  "Semifinals",
	2:  FinalRound,
}

// RoundSequence lists the knockout round names for a bracket of totalQualifiers
// teams. Sizes missing from the naming table are skipped.
func RoundSequence(totalQualifiers int) []string {
	rounds := make([]string, 0, 4)
	for n := totalQualifiers; n >= 2; n /= 2 {
		if name, ok := roundNames[n]; ok {
			rounds = append(rounds, name)
		}
	}
	return rounds
}

// ValidBracketSize reports whether a knockout of n teams halves through named
// rounds only, so the opening round is the first name of RoundSequence(n).
func ValidBracketSize(n int) bool {
	return n >= 2 && n <= MaxBracketSize && n&(n-1) == 0
}

// PreviousRound returns the round played before round, or "" for the first one.
func PreviousRound(sequence []string, round string) (string, bool) {
	i := slices.Index(sequence, round)
	if i < 0 {
		return "", false
	}
	if i == 0 {
		return "", true
	}
	return sequence[i-1], true
}

func IsKnockoutRound(sequence []string, round string) bool {
	return slices.Contains(sequence, round)
}
