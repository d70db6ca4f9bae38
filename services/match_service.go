package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/zone-cup/brackets"
	"github.com/Dosada05/zone-cup/metrics"
	"github.com/Dosada05/zone-cup/models"
	"github.com/Dosada05/zone-cup/repositories"
)

type MatchService interface {
	RecordGroupResult(ctx context.Context, input ResultInput) (*models.Match, error)
	RecordKnockoutResults(ctx context.Context, round string, results []ResultInput) ([]models.Match, error)
	ListByPhase(ctx context.Context, phase string) ([]models.Match, error)
	GetMatch(ctx context.Context, id int) (*models.Match, error)
}

type ResultInput struct {
	HomeTeamID int `json:"home_team_id" validate:"required"`
	AwayTeamID int `json:"away_team_id" validate:"required"`
	HomeGoals  int `json:"home_goals" validate:"gte=0"`
	AwayGoals  int `json:"away_goals" validate:"gte=0"`
}

type RoundCompletedPayload struct {
	Round    string          `json:"round"`
	Matches  []models.Match  `json:"matches"`
	Champion *models.TeamRef `json:"champion,omitempty"`
}

type matchService struct {
	db         *sql.DB
	teamRepo   repositories.TeamRepository
	matchRepo  repositories.MatchRepository
	drawRepo   repositories.DrawRepository
	tournament TournamentService
	notifier   Notifier
	logger     *slog.Logger
}

func NewMatchService(
	db *sql.DB,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	drawRepo repositories.DrawRepository,
	tournament TournamentService,
	notifier Notifier,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		db:         db,
		teamRepo:   teamRepo,
		matchRepo:  matchRepo,
		drawRepo:   drawRepo,
		tournament: tournament,
		notifier:   notifierOrNoop(notifier),
		logger:     loggerOrDefault(logger),
	}
}

// RecordGroupResult stores a group result. A fixture that already has a result, in
// either orientation, gets its score corrected instead of a second row.
func (s *matchService) RecordGroupResult(ctx context.Context, input ResultInput) (*models.Match, error) {
	stage, err := s.tournament.Stage(ctx)
	if err != nil {
		return nil, err
	}
	switch stage.Kind {
	case models.StageRegistration:
		return nil, ErrRosterNotLocked
	case models.StageKnockout, models.StageCompleted:
		return nil, ErrGroupsLocked
	}

	if err := s.checkResult(input); err != nil {
		return nil, err
	}
	home, err := s.team(ctx, input.HomeTeamID)
	if err != nil {
		return nil, err
	}
	away, err := s.team(ctx, input.AwayTeamID)
	if err != nil {
		return nil, err
	}
	if home.Zone != away.Zone {
		return nil, fmt.Errorf("%w: %s is in zone %s, %s in zone %s", ErrDifferentZones, home.Name, home.Zone, away.Name, away.Zone)
	}

	existing, err := s.matchRepo.FindByTeams(ctx, models.PhaseGroup, home.ID, away.ID)
	switch {
	case err == nil:
		existing.HomeGoals, existing.AwayGoals = input.HomeGoals, input.AwayGoals
		if existing.HomeTeamID != home.ID {
			existing.HomeGoals, existing.AwayGoals = input.AwayGoals, input.HomeGoals
		}
		if err := s.matchRepo.UpdateScore(ctx, existing); err != nil {
			return nil, err
		}
		s.logger.InfoContext(ctx, "Group result corrected", slog.Int("match_id", existing.ID),
			slog.String("home", home.Name), slog.String("away", away.Name))
		return s.afterGroupWrite(ctx, existing.ID)

	case errors.Is(err, repositories.ErrMatchNotFound):
		match := &models.Match{
			Phase:      models.PhaseGroup,
			HomeTeamID: home.ID,
			AwayTeamID: away.ID,
			HomeGoals:  input.HomeGoals,
			AwayGoals:  input.AwayGoals,
		}
		if err := s.matchRepo.Create(ctx, nil, match); err != nil {
			return nil, err
		}
		s.logger.InfoContext(ctx, "Group result recorded", slog.Int("match_id", match.ID),
			slog.String("home", home.Name), slog.String("away", away.Name))
		return s.afterGroupWrite(ctx, match.ID)

	default:
		return nil, err
	}
}

func (s *matchService) afterGroupWrite(ctx context.Context, matchID int) (*models.Match, error) {
	stored, err := s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	metrics.ResultsRecorded.WithLabelValues("group").Inc()
	s.notifier.Notify(brackets.EventMatchRecorded, stored)
	return stored, nil
}

// RecordKnockoutResults stores the results of the active round in one transaction.
// They must cover every pairing of the round's draw exactly once.
func (s *matchService) RecordKnockoutResults(ctx context.Context, round string, results []ResultInput) ([]models.Match, error) {
	if !brackets.IsKnockoutRound(s.tournament.RoundSequence(), round) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRound, round)
	}
	stage, err := s.tournament.Stage(ctx)
	if err != nil {
		return nil, err
	}
	switch {
	case stage.Kind == models.StageCompleted:
		return nil, ErrTournamentCompleted
	case stage.Kind != models.StageKnockout:
		return nil, ErrGroupsNotLocked
	case stage.Round != round:
		return nil, fmt.Errorf("%w: active round is %s", ErrRoundNotActive, stage.Round)
	}

	draws, err := s.drawRepo.ListByPhase(ctx, round)
	if err != nil {
		return nil, err
	}
	if len(draws) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDrawMissing, round)
	}

	for _, in := range results {
		if err := s.checkResult(in); err != nil {
			return nil, err
		}
		if in.HomeGoals == in.AwayGoals {
			return nil, fmt.Errorf("%w: %d-%d", ErrKnockoutDrawNotAllowed, in.HomeGoals, in.AwayGoals)
		}
	}
	matches, err := matchResultsToDraw(round, draws, results)
	if err != nil {
		return nil, err
	}

	err = withTx(ctx, s.db, s.logger, func(tx *sql.Tx) error {
		for i := range matches {
			if err := s.matchRepo.Create(ctx, tx, &matches[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	stored, err := s.matchRepo.ListByPhase(ctx, round)
	if err != nil {
		return nil, err
	}
	metrics.ResultsRecorded.WithLabelValues("knockout").Add(float64(len(stored)))
	s.logger.InfoContext(ctx, "Knockout round completed", slog.String("round", round), slog.Int("matches", len(stored)))

	payload := RoundCompletedPayload{Round: round, Matches: stored}
	if round == brackets.FinalRound {
		if payload.Champion, err = s.tournament.Champion(ctx); err != nil {
			return nil, err
		}
	}
	s.notifier.Notify(brackets.EventRoundCompleted, payload)
	if stage, err := s.tournament.Stage(ctx); err == nil {
		s.notifier.Notify(brackets.EventStageChanged, stage)
	}
	return stored, nil
}

// matchResultsToDraw pairs every result with its drawn fixture and orients the score
// to the drawn home/away sides.
func matchResultsToDraw(round string, draws []models.Draw, results []ResultInput) ([]models.Match, error) {
	if len(results) != len(draws) {
		return nil, fmt.Errorf("%w: %s has %d fixtures, got %d results", ErrResultsMismatch, round, len(draws), len(results))
	}

	used := make([]bool, len(draws))
	matches := make([]models.Match, 0, len(results))
	for _, in := range results {
		idx := -1
		for i, d := range draws {
			m := models.Match{HomeTeamID: d.HomeTeamID, AwayTeamID: d.AwayTeamID}
			if m.SameFixture(in.HomeTeamID, in.AwayTeamID) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: teams %d and %d were not drawn together in %s", ErrResultsMismatch, in.HomeTeamID, in.AwayTeamID, round)
		}
		if used[idx] {
			return nil, fmt.Errorf("%w: duplicate result for teams %d and %d", ErrResultsMismatch, in.HomeTeamID, in.AwayTeamID)
		}
		used[idx] = true

		d := draws[idx]
		hg, ag := in.HomeGoals, in.AwayGoals
		if d.HomeTeamID != in.HomeTeamID {
			hg, ag = ag, hg
		}
		matches = append(matches, models.Match{
			Phase:      round,
			HomeTeamID: d.HomeTeamID,
			AwayTeamID: d.AwayTeamID,
			HomeGoals:  hg,
			AwayGoals:  ag,
		})
	}
	return matches, nil
}

func (s *matchService) ListByPhase(ctx context.Context, phase string) ([]models.Match, error) {
	if phase != models.PhaseGroup && !brackets.IsKnockoutRound(s.tournament.RoundSequence(), phase) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRound, phase)
	}
	return s.matchRepo.ListByPhase(ctx, phase)
}

func (s *matchService) GetMatch(ctx context.Context, id int) (*models.Match, error) {
	m, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *matchService) checkResult(in ResultInput) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if in.HomeTeamID == in.AwayTeamID {
		return ErrSameTeam
	}
	return nil
}

func (s *matchService) team(ctx context.Context, id int) (*models.Team, error) {
	t, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrTeamNotFound, id)
		}
		return nil, err
	}
	return t, nil
}
