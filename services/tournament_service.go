package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/zone-cup/brackets"
	"github.com/Dosada05/zone-cup/config"
	"github.com/Dosada05/zone-cup/models"
	"github.com/Dosada05/zone-cup/repositories"
)

type TournamentService interface {
	Zones() []string
	RoundSequence() []string
	Rules() config.Rules

	Stage(ctx context.Context) (*models.Stage, error)
	PendingFixtures(ctx context.Context, zone string) ([]models.Pairing, error)
	Standings(ctx context.Context, zone string) ([]models.StandingRow, error)
	SeedInitialKnockout(ctx context.Context) ([]models.Pairing, error)
	NextRoundPairings(ctx context.Context, completedRound string) ([]models.Pairing, error)
	Champion(ctx context.Context) (*models.TeamRef, error)
	Overview(ctx context.Context) (*models.Overview, error)

	LockTeams(ctx context.Context) error
	UnlockTeams(ctx context.Context) error
	LockGroups(ctx context.Context) error
	UnlockGroups(ctx context.Context) error
	ResetGroupResults(ctx context.Context) error
	ResetKnockout(ctx context.Context) error
	ResetAll(ctx context.Context) error
}

type tournamentService struct {
	db           *sql.DB
	teamRepo     repositories.TeamRepository
	matchRepo    repositories.MatchRepository
	drawRepo     repositories.DrawRepository
	settingsRepo repositories.SettingsRepository
	rules        config.Rules
	rounds       []string
	shuffler     brackets.Shuffler
	notifier     Notifier
	logger       *slog.Logger

	fixtures    brackets.PairingGenerator
	seeding     brackets.PairingGenerator
	progression brackets.PairingGenerator
}

func NewTournamentService(
	db *sql.DB,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	drawRepo repositories.DrawRepository,
	settingsRepo repositories.SettingsRepository,
	rules config.Rules,
	shuffler brackets.Shuffler,
	notifier Notifier,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		db:           db,
		teamRepo:     teamRepo,
		matchRepo:    matchRepo,
		drawRepo:     drawRepo,
		settingsRepo: settingsRepo,
		rules:        rules,
		rounds:       brackets.RoundSequence(rules.TotalQualifiers()),
		shuffler:     shufflerOrDefault(shuffler),
		notifier:     notifierOrNoop(notifier),
		logger:       loggerOrDefault(logger),
		fixtures:     brackets.NewRoundRobinGenerator(),
		seeding:      brackets.NewCrossSeedGenerator(),
		progression:  brackets.NewKnockoutGenerator(),
	}
}

func (s *tournamentService) Zones() []string {
	return slices.Clone(s.rules.Zones)
}

func (s *tournamentService) RoundSequence() []string {
	return slices.Clone(s.rounds)
}

func (s *tournamentService) Rules() config.Rules {
	return s.rules
}

func (s *tournamentService) checkZone(zone string) error {
	if !slices.Contains(s.rules.Zones, zone) {
		return fmt.Errorf("%w: %q", ErrUnknownZone, zone)
	}
	return nil
}

func (s *tournamentService) Stage(ctx context.Context) (*models.Stage, error) {
	stage, _, err := s.stageAndChampion(ctx)
	return stage, err
}

// stageAndChampion gathers the stored facts and derives the stage from them in one place.
func (s *tournamentService) stageAndChampion(ctx context.Context) (*models.Stage, *models.TeamRef, error) {
	teamsLocked, err := s.settingsRepo.TeamsLocked(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read roster lock: %w", err)
	}
	groupsLocked, err := s.settingsRepo.GroupsLocked(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read group lock: %w", err)
	}
	counts, err := s.matchRepo.CountByPhase(ctx)
	if err != nil {
		return nil, nil, err
	}

	var champion *models.TeamRef
	if counts[brackets.FinalRound] > 0 {
		if champion, err = s.Champion(ctx); err != nil {
			return nil, nil, err
		}
	}

	stage := brackets.ResolveStage(brackets.StageFacts{
		TeamsLocked:  teamsLocked,
		GroupsLocked: groupsLocked,
		Rounds:       s.rounds,
		RoundMatches: counts,
		ChampionSet:  champion != nil,
	})
	return &stage, champion, nil
}

func (s *tournamentService) PendingFixtures(ctx context.Context, zone string) ([]models.Pairing, error) {
	if err := s.checkZone(zone); err != nil {
		return nil, err
	}
	teams, matches, err := s.loadZone(ctx, zone)
	if err != nil {
		return nil, err
	}
	return s.fixtures.Generate(brackets.GenerateParams{Teams: teams, Matches: matches})
}

func (s *tournamentService) Standings(ctx context.Context, zone string) ([]models.StandingRow, error) {
	if err := s.checkZone(zone); err != nil {
		return nil, err
	}
	teams, matches, err := s.loadZone(ctx, zone)
	if err != nil {
		return nil, err
	}
	return brackets.ComputeStandings(teams, matches), nil
}

func (s *tournamentService) loadZone(ctx context.Context, zone string) ([]models.Team, []models.Match, error) {
	teams, err := s.teamRepo.ListByZone(ctx, zone)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load teams of zone %s: %w", zone, err)
	}
	matches, err := s.matchRepo.ListByPhase(ctx, models.PhaseGroup)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load group matches: %w", err)
	}
	return teams, matches, nil
}

// loadGroups returns every configured zone's teams (ordered by name) and all group matches.
func (s *tournamentService) loadGroups(ctx context.Context) (map[string][]models.Team, []models.Match, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load teams: %w", err)
	}
	matches, err := s.matchRepo.ListByPhase(ctx, models.PhaseGroup)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load group matches: %w", err)
	}

	byZone := make(map[string][]models.Team, len(s.rules.Zones))
	for _, zone := range s.rules.Zones {
		byZone[zone] = []models.Team{}
	}
	for _, t := range teams {
		if _, ok := byZone[t.Zone]; ok {
			byZone[t.Zone] = append(byZone[t.Zone], t)
		}
	}
	return byZone, matches, nil
}

func (s *tournamentService) SeedInitialKnockout(ctx context.Context) ([]models.Pairing, error) {
	groupsLocked, err := s.settingsRepo.GroupsLocked(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read group lock: %w", err)
	}
	if !groupsLocked {
		return nil, ErrGroupsNotLocked
	}

	byZone, matches, err := s.loadGroups(ctx)
	if err != nil {
		return nil, err
	}

	standings := make(map[string][]models.StandingRow, len(byZone))
	for _, zone := range s.rules.Zones {
		if pending := brackets.PendingFixtures(byZone[zone], matches); len(pending) > 0 {
			return nil, fmt.Errorf("%w: zone %s has %d fixtures left", ErrGroupPhaseIncomplete, zone, len(pending))
		}
		standings[zone] = brackets.ComputeStandings(byZone[zone], matches)
	}

	pairings, err := s.seeding.Generate(brackets.GenerateParams{
		Zones:      s.rules.Zones,
		Standings:  standings,
		Qualifiers: s.rules.QualifiersPerZone,
	})
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "Initial knockout seeded", slog.String("generator", s.seeding.GetName()), slog.Int("pairings", len(pairings)))
	return pairings, nil
}

func (s *tournamentService) NextRoundPairings(ctx context.Context, completedRound string) ([]models.Pairing, error) {
	if !brackets.IsKnockoutRound(s.rounds, completedRound) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRound, completedRound)
	}

	matches, err := s.matchRepo.ListByPhase(ctx, completedRound)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s matches: %w", completedRound, err)
	}
	return s.progression.Generate(brackets.GenerateParams{Matches: matches, Shuffler: s.shuffler})
}

func (s *tournamentService) Champion(ctx context.Context) (*models.TeamRef, error) {
	finals, err := s.matchRepo.ListByPhase(ctx, brackets.FinalRound)
	if err != nil {
		return nil, fmt.Errorf("failed to load final: %w", err)
	}
	return brackets.Champion(finals)
}

func (s *tournamentService) Overview(ctx context.Context) (*models.Overview, error) {
	var (
		stage    *models.Stage
		champion *models.TeamRef
		byZone   map[string][]models.Team
		matches  []models.Match
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stage, champion, err = s.stageAndChampion(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		byZone, matches, err = s.loadGroups(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview := &models.Overview{
		Stage:       *stage,
		Zones:       make([]models.ZoneOverview, 0, len(s.rules.Zones)),
		RoundsOrder: s.RoundSequence(),
		Champion:    champion,
	}
	for _, zone := range s.rules.Zones {
		teams := byZone[zone]
		overview.TeamCount += len(teams)
		overview.Zones = append(overview.Zones, models.ZoneOverview{
			Zone:            zone,
			Standings:       brackets.ComputeStandings(teams, matches),
			PendingFixtures: brackets.PendingFixtures(teams, matches),
		})
	}
	return overview, nil
}

func (s *tournamentService) LockTeams(ctx context.Context) error {
	locked, err := s.settingsRepo.TeamsLocked(ctx)
	if err != nil {
		return fmt.Errorf("failed to read roster lock: %w", err)
	}
	if locked {
		return nil
	}

	counts, err := s.teamRepo.CountByZone(ctx)
	if err != nil {
		return err
	}
	total := 0
	for _, zone := range s.rules.Zones {
		total += counts[zone]
		if s.rules.FullZonesRequired() && counts[zone] < s.rules.MaxTeamsPerZone {
			return fmt.Errorf("%w: zone %s has %d of %d teams", ErrZonesNotFull, zone, counts[zone], s.rules.MaxTeamsPerZone)
		}
	}
	if total < 2 {
		return fmt.Errorf("%w: %d registered", ErrNotEnoughTeams, total)
	}

	if err := s.settingsRepo.SetFlag(ctx, nil, repositories.FlagTeamsLocked); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Team roster locked", slog.Int("teams", total))
	s.notifyStage(ctx)
	return nil
}

// UnlockTeams reopens registration and discards group results.
func (s *tournamentService) UnlockTeams(ctx context.Context) error {
	groupsLocked, err := s.settingsRepo.GroupsLocked(ctx)
	if err != nil {
		return fmt.Errorf("failed to read group lock: %w", err)
	}
	if groupsLocked {
		return fmt.Errorf("%w: unlock the group phase first", ErrGroupsLocked)
	}

	err = withTx(ctx, s.db, s.logger, func(tx *sql.Tx) error {
		if err := s.matchRepo.DeleteByPhase(ctx, tx, models.PhaseGroup); err != nil {
			return err
		}
		return s.settingsRepo.ClearFlag(ctx, tx, repositories.FlagTeamsLocked)
	})
	if err != nil {
		return err
	}
	s.logger.WarnContext(ctx, "Team roster unlocked, group results discarded")
	s.notifyStage(ctx)
	return nil
}

func (s *tournamentService) LockGroups(ctx context.Context) error {
	stage, err := s.Stage(ctx)
	if err != nil {
		return err
	}
	switch stage.Kind {
	case models.StageRegistration:
		return ErrRosterNotLocked
	case models.StageKnockout, models.StageCompleted:
		return nil
	}

	byZone, matches, err := s.loadGroups(ctx)
	if err != nil {
		return err
	}
	total := 0
	for _, zone := range s.rules.Zones {
		total += len(byZone[zone])
		if pending := brackets.PendingFixtures(byZone[zone], matches); len(pending) > 0 {
			return fmt.Errorf("%w: zone %s has %d fixtures left", ErrGroupPhaseIncomplete, zone, len(pending))
		}
	}
	if total == 0 {
		return ErrNotEnoughTeams
	}

	if err := s.settingsRepo.SetFlag(ctx, nil, repositories.FlagGroupsLocked); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Group phase locked")
	s.notifyStage(ctx)
	return nil
}

// UnlockGroups reopens group play and discards every knockout result and draw.
func (s *tournamentService) UnlockGroups(ctx context.Context) error {
	locked, err := s.settingsRepo.GroupsLocked(ctx)
	if err != nil {
		return fmt.Errorf("failed to read group lock: %w", err)
	}
	if !locked {
		return nil
	}

	err = withTx(ctx, s.db, s.logger, func(tx *sql.Tx) error {
		if err := s.purgeKnockout(ctx, tx); err != nil {
			return err
		}
		return s.settingsRepo.ClearFlag(ctx, tx, repositories.FlagGroupsLocked)
	})
	if err != nil {
		return err
	}
	s.logger.WarnContext(ctx, "Group phase unlocked, knockout results discarded")
	s.notifyStage(ctx)
	return nil
}

func (s *tournamentService) ResetGroupResults(ctx context.Context) error {
	stage, err := s.Stage(ctx)
	if err != nil {
		return err
	}
	if stage.Kind != models.StageGroupPlay {
		return fmt.Errorf("%w: group results can be reset only during group play (stage %s)", ErrInvalidStageTransition, stage)
	}

	if err := s.matchRepo.DeleteByPhase(ctx, nil, models.PhaseGroup); err != nil {
		return err
	}
	s.logger.WarnContext(ctx, "Group results reset")
	s.notifier.Notify(brackets.EventMatchRecorded, nil)
	return nil
}

func (s *tournamentService) ResetKnockout(ctx context.Context) error {
	locked, err := s.settingsRepo.GroupsLocked(ctx)
	if err != nil {
		return fmt.Errorf("failed to read group lock: %w", err)
	}
	if !locked {
		return ErrGroupsNotLocked
	}

	if err := withTx(ctx, s.db, s.logger, func(tx *sql.Tx) error {
		return s.purgeKnockout(ctx, tx)
	}); err != nil {
		return err
	}
	s.logger.WarnContext(ctx, "Knockout phase reset")
	s.notifyStage(ctx)
	return nil
}

func (s *tournamentService) ResetAll(ctx context.Context) error {
	err := withTx(ctx, s.db, s.logger, func(tx *sql.Tx) error {
		if err := s.purgeKnockout(ctx, tx); err != nil {
			return err
		}
		if err := s.matchRepo.DeleteByPhase(ctx, tx, models.PhaseGroup); err != nil {
			return err
		}
		if err := s.teamRepo.DeleteAll(ctx, tx); err != nil {
			return err
		}
		return s.settingsRepo.DeleteAll(ctx, tx)
	})
	if err != nil {
		return err
	}
	s.logger.WarnContext(ctx, "Tournament data wiped")
	s.notifier.Notify(brackets.EventTeamsUpdated, nil)
	s.notifyStage(ctx)
	return nil
}

func (s *tournamentService) purgeKnockout(ctx context.Context, tx *sql.Tx) error {
	if err := s.drawRepo.DeleteAll(ctx, tx); err != nil {
		return err
	}
	return s.matchRepo.DeleteKnockout(ctx, tx)
}

func (s *tournamentService) notifyStage(ctx context.Context) {
	stage, err := s.Stage(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.logger.ErrorContext(ctx, "Failed to resolve stage for notification", slog.Any("error", err))
		}
		return
	}
	s.notifier.Notify(brackets.EventStageChanged, stage)
}

// shufflerOrDefault seeds a shared source from the clock when none is injected.
func shufflerOrDefault(s brackets.Shuffler) brackets.Shuffler {
	if s != nil {
		return s
	}
	return brackets.NewLockedShuffler(brackets.NewSeededShuffler(uint64(time.Now().UnixNano())))
}
