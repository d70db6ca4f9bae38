package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/Dosada05/zone-cup/brackets"
	"github.com/Dosada05/zone-cup/models"
	"github.com/Dosada05/zone-cup/repositories"
	"github.com/Dosada05/zone-cup/utils"
)

const maxColorAttempts = 32

type TeamService interface {
	AddTeam(ctx context.Context, input TeamInput) (*models.Team, error)
	UpdateTeam(ctx context.Context, id int, input TeamInput) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int) error
	DeleteAllTeams(ctx context.Context) error
	GetTeam(ctx context.Context, id int) (*models.Team, error)
	ListTeams(ctx context.Context, zone string) ([]models.Team, error)
}

type TeamInput struct {
	Name string `json:"name" validate:"required,max=64"`
	Zone string `json:"zone" validate:"required"`
}

type teamService struct {
	teamRepo     repositories.TeamRepository
	settingsRepo repositories.SettingsRepository
	tournament   TournamentService
	colorFn      func() string
	notifier     Notifier
	logger       *slog.Logger
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	settingsRepo repositories.SettingsRepository,
	tournament TournamentService,
	notifier Notifier,
	logger *slog.Logger,
) TeamService {
	return &teamService{
		teamRepo:     teamRepo,
		settingsRepo: settingsRepo,
		tournament:   tournament,
		colorFn:      utils.RandomColor,
		notifier:     notifierOrNoop(notifier),
		logger:       loggerOrDefault(logger),
	}
}

func (s *teamService) AddTeam(ctx context.Context, input TeamInput) (*models.Team, error) {
	if err := s.ensureRosterOpen(ctx); err != nil {
		return nil, err
	}
	input, err := s.normalize(input)
	if err != nil {
		return nil, err
	}
	if err := s.ensureZoneHasRoom(ctx, input.Zone); err != nil {
		return nil, err
	}

	color, err := s.uniqueColor(ctx)
	if err != nil {
		return nil, err
	}

	team := &models.Team{Name: input.Name, Zone: input.Zone, Color: color}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, fmt.Errorf("%w: %q", ErrTeamNameConflict, input.Name)
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	s.logger.InfoContext(ctx, "Team registered", slog.Int("team_id", team.ID), slog.String("name", team.Name), slog.String("zone", team.Zone))
	s.notifier.Notify(brackets.EventTeamsUpdated, team)
	return team, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id int, input TeamInput) (*models.Team, error) {
	if err := s.ensureRosterOpen(ctx); err != nil {
		return nil, err
	}
	input, err := s.normalize(input)
	if err != nil {
		return nil, err
	}

	team, err := s.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	if team.Zone != input.Zone {
		if err := s.ensureZoneHasRoom(ctx, input.Zone); err != nil {
			return nil, err
		}
	}

	team.Name = input.Name
	team.Zone = input.Zone
	if err := s.teamRepo.Update(ctx, team); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamNameConflict):
			return nil, fmt.Errorf("%w: %q", ErrTeamNameConflict, input.Name)
		default:
			return nil, fmt.Errorf("failed to update team %d: %w", id, err)
		}
	}

	s.notifier.Notify(brackets.EventTeamsUpdated, team)
	return team, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, id int) error {
	if err := s.ensureRosterOpen(ctx); err != nil {
		return err
	}
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team %d: %w", id, err)
	}

	s.logger.InfoContext(ctx, "Team deleted", slog.Int("team_id", id))
	s.notifier.Notify(brackets.EventTeamsUpdated, map[string]int{"deleted_team_id": id})
	return nil
}

func (s *teamService) DeleteAllTeams(ctx context.Context) error {
	if err := s.ensureRosterOpen(ctx); err != nil {
		return err
	}
	if err := s.teamRepo.DeleteAll(ctx, nil); err != nil {
		return err
	}

	s.logger.WarnContext(ctx, "All teams deleted")
	s.notifier.Notify(brackets.EventTeamsUpdated, nil)
	return nil
}

func (s *teamService) GetTeam(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team by id %d: %w", id, err)
	}
	return team, nil
}

// ListTeams returns all teams, or only the teams of zone when it is not empty.
func (s *teamService) ListTeams(ctx context.Context, zone string) ([]models.Team, error) {
	if zone == "" {
		return s.teamRepo.List(ctx)
	}
	if !slices.Contains(s.tournament.Zones(), zone) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, zone)
	}
	return s.teamRepo.ListByZone(ctx, zone)
}

func (s *teamService) ensureRosterOpen(ctx context.Context) error {
	locked, err := s.settingsRepo.TeamsLocked(ctx)
	if err != nil {
		return fmt.Errorf("failed to read roster lock: %w", err)
	}
	if locked {
		return ErrRosterLocked
	}
	return nil
}

func (s *teamService) normalize(input TeamInput) (TeamInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Zone = strings.TrimSpace(input.Zone)
	if err := validateStruct(input); err != nil {
		return input, err
	}
	if !slices.Contains(s.tournament.Zones(), input.Zone) {
		return input, fmt.Errorf("%w: %q", ErrUnknownZone, input.Zone)
	}
	return input, nil
}

func (s *teamService) ensureZoneHasRoom(ctx context.Context, zone string) error {
	counts, err := s.teamRepo.CountByZone(ctx)
	if err != nil {
		return err
	}
	if limit := s.tournament.Rules().MaxTeamsPerZone; counts[zone] >= limit {
		return fmt.Errorf("%w: zone %s already has %d teams", ErrZoneFull, zone, limit)
	}
	return nil
}

func (s *teamService) uniqueColor(ctx context.Context) (string, error) {
	for i := 0; i < maxColorAttempts; i++ {
		color := s.colorFn()
		inUse, err := s.teamRepo.ColorInUse(ctx, color)
		if err != nil {
			return "", err
		}
		if !inUse {
			return color, nil
		}
	}
	return "", fmt.Errorf("failed to pick a free team colour after %d attempts", maxColorAttempts)
}
