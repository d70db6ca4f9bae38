package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/zone-cup/brackets"
	"github.com/Dosada05/zone-cup/metrics"
	"github.com/Dosada05/zone-cup/models"
	"github.com/Dosada05/zone-cup/repositories"
)

type BracketService interface {
	DrawActiveRound(ctx context.Context) ([]models.Draw, error)
	GetBracket(ctx context.Context) (*models.Bracket, error)
}

type RoundDrawnPayload struct {
	Round string        `json:"round"`
	Draw  []models.Draw `json:"draw"`
}

type bracketService struct {
	db         *sql.DB
	matchRepo  repositories.MatchRepository
	drawRepo   repositories.DrawRepository
	tournament TournamentService
	notifier   Notifier
	logger     *slog.Logger
}

func NewBracketService(
	db *sql.DB,
	matchRepo repositories.MatchRepository,
	drawRepo repositories.DrawRepository,
	tournament TournamentService,
	notifier Notifier,
	logger *slog.Logger,
) BracketService {
	return &bracketService{
		db:         db,
		matchRepo:  matchRepo,
		drawRepo:   drawRepo,
		tournament: tournament,
		notifier:   notifierOrNoop(notifier),
		logger:     loggerOrDefault(logger),
	}
}

// DrawActiveRound returns the stored draw of the active knockout round, generating and
// storing it first when the round has not been drawn yet. After a purge the round is
// simply drawn again.
func (s *bracketService) DrawActiveRound(ctx context.Context) ([]models.Draw, error) {
	stage, err := s.tournament.Stage(ctx)
	if err != nil {
		return nil, err
	}
	switch stage.Kind {
	case models.StageCompleted:
		return nil, ErrTournamentCompleted
	case models.StageRegistration, models.StageGroupPlay:
		return nil, ErrGroupsNotLocked
	}
	round := stage.Round

	existing, err := s.drawRepo.ListByPhase(ctx, round)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	previous, ok := brackets.PreviousRound(s.tournament.RoundSequence(), round)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRound, round)
	}

	var pairings []models.Pairing
	if previous == "" {
		pairings, err = s.tournament.SeedInitialKnockout(ctx)
	} else {
		pairings, err = s.tournament.NextRoundPairings(ctx, previous)
	}
	if err != nil {
		return nil, err
	}
	if len(pairings) == 0 {
		return nil, fmt.Errorf("%w: no pairings could be produced for %s", ErrIntegrityViolation, round)
	}

	var draws []models.Draw
	err = withTx(ctx, s.db, s.logger, func(tx *sql.Tx) error {
		var txErr error
		draws, txErr = s.drawRepo.CreateBatch(ctx, tx, round, pairings)
		return txErr
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDrawConflict) {
			return s.drawRepo.ListByPhase(ctx, round)
		}
		return nil, err
	}

	metrics.RoundsDrawn.WithLabelValues(round).Inc()
	s.logger.InfoContext(ctx, "Knockout round drawn", slog.String("round", round), slog.Int("fixtures", len(draws)))
	s.notifier.Notify(brackets.EventRoundDrawn, RoundDrawnPayload{Round: round, Draw: draws})
	return draws, nil
}

func (s *bracketService) GetBracket(ctx context.Context) (*models.Bracket, error) {
	rounds := s.tournament.RoundSequence()
	bracket := &models.Bracket{Rounds: make([]models.BracketRound, len(rounds))}

	g, gCtx := errgroup.WithContext(ctx)
	for i, name := range rounds {
		bracket.Rounds[i].Name = name
		g.Go(func() error {
			draw, err := s.drawRepo.ListByPhase(gCtx, name)
			if err != nil {
				return fmt.Errorf("failed to load %s draw: %w", name, err)
			}
			matches, err := s.matchRepo.ListByPhase(gCtx, name)
			if err != nil {
				return fmt.Errorf("failed to load %s matches: %w", name, err)
			}
			bracket.Rounds[i].Draw = draw
			bracket.Rounds[i].Matches = matches
			return nil
		})
	}
	g.Go(func() error {
		stage, err := s.tournament.Stage(gCtx)
		if err != nil {
			return err
		}
		bracket.Stage = *stage
		return nil
	})
	g.Go(func() error {
		champion, err := s.tournament.Champion(gCtx)
		if err != nil {
			return err
		}
		bracket.Champion = champion
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bracket, nil
}
