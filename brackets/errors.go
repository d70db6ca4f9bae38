package brackets

import "errors"

var (
	// ErrInsufficientQualifiers: a zone table is shorter than the qualifier count.
	ErrInsufficientQualifiers = errors.New("not enough teams in zone to classify")
	// ErrUnsupportedTopology: cross-seeding is only defined for two zones and a
	// power-of-two bracket of at most MaxBracketSize teams.
	ErrUnsupportedTopology = errors.New("unsupported zone topology for cross-seeding")
	// ErrIntegrityViolation: a knockout match without a valid winner.
	ErrIntegrityViolation = errors.New("knockout match integrity violation")
	ErrOddWinnerCount     = errors.New("odd number of winners cannot be paired")
	ErrNoShuffler         = errors.New("knockout progression needs a shuffler")
)
