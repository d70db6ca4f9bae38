package services

import (
	"errors"

	"github.com/Dosada05/zone-cup/brackets"
)

// Общие ошибки, используемые в сервисах и маппинге HTTP.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Валидация и бизнес-правила
	ErrValidationFailed       = errors.New("validation failed")
	ErrUnknownZone            = errors.New("zone is not configured")
	ErrZoneFull               = errors.New("zone is full")
	ErrSameTeam               = errors.New("a team cannot play itself")
	ErrDifferentZones         = errors.New("group matches are played within one zone")
	ErrKnockoutDrawNotAllowed = errors.New("knockout matches cannot end level")
	ErrResultsMismatch        = errors.New("results do not match the round draw")

	// Конфликты
	ErrTeamNameConflict = errors.New("team name is already in use")

	// Состояние турнира
	ErrRosterLocked           = errors.New("team roster is locked")
	ErrRosterNotLocked        = errors.New("team roster is not locked yet")
	ErrGroupsLocked           = errors.New("group phase is locked")
	ErrGroupsNotLocked        = errors.New("group phase is not locked yet")
	ErrGroupPhaseIncomplete   = errors.New("group phase has pending fixtures")
	ErrZonesNotFull           = errors.New("every zone must be full before locking the roster")
	ErrNotEnoughTeams         = errors.New("not enough teams")
	ErrInvalidStageTransition = errors.New("operation not allowed at the current stage")
	ErrUnknownRound           = errors.New("unknown knockout round")
	ErrRoundNotActive         = errors.New("round is not the active knockout round")
	ErrDrawMissing            = errors.New("round has not been drawn yet")
	ErrTournamentCompleted    = errors.New("tournament is already completed")

	// Ошибки движка правил
	ErrInsufficientQualifiers = brackets.ErrInsufficientQualifiers
	ErrUnsupportedTopology    = brackets.ErrUnsupportedTopology
	ErrIntegrityViolation     = brackets.ErrIntegrityViolation
	ErrOddWinnerCount         = brackets.ErrOddWinnerCount

	// Сущности
	ErrTeamNotFound  = errors.New("team not found")
	ErrMatchNotFound = errors.New("match not found")

	// Прочее
	ErrExportDisabled       = errors.New("snapshot export is not configured")
	ErrDemoToolsDisabled    = errors.New("demo tools are disabled")
	ErrInvalidCredentials   = errors.New("invalid password")
	ErrAuthenticationFailed = errors.New("authentication failed")
)
