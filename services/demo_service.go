package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/Dosada05/zone-cup/models"
)

const maxDemoGoals = 5

// DemoService fills the tournament with generated data for rehearsals.
type DemoService interface {
	GenerateTeams(ctx context.Context) ([]models.Team, error)
	GenerateGroupResults(ctx context.Context) ([]models.Match, error)
}

type demoService struct {
	tournament TournamentService
	teams      TeamService
	matches    MatchService
	goals      func() int
	logger     *slog.Logger
}

func NewDemoService(tournament TournamentService, teams TeamService, matches MatchService, logger *slog.Logger) DemoService {
	return &demoService{
		tournament: tournament,
		teams:      teams,
		matches:    matches,
		goals:      func() int { return rand.IntN(maxDemoGoals + 1) },
		logger:     loggerOrDefault(logger),
	}
}

// GenerateTeams wipes all data and fills every zone to capacity.
func (s *demoService) GenerateTeams(ctx context.Context) ([]models.Team, error) {
	rules := s.tournament.Rules()
	if !rules.DemoTools() {
		return nil, ErrDemoToolsDisabled
	}
	if err := s.tournament.ResetAll(ctx); err != nil {
		return nil, err
	}

	created := make([]models.Team, 0, len(rules.Zones)*rules.MaxTeamsPerZone)
	n := 0
	for _, zone := range rules.Zones {
		for i := 0; i < rules.MaxTeamsPerZone; i++ {
			n++
			team, err := s.teams.AddTeam(ctx, TeamInput{Name: fmt.Sprintf("Team-%02d", n), Zone: zone})
			if err != nil {
				return nil, err
			}
			created = append(created, *team)
		}
	}

	s.logger.WarnContext(ctx, "Demo teams generated", slog.Int("teams", len(created)))
	return created, nil
}

// GenerateGroupResults records a random score for every pending group fixture.
func (s *demoService) GenerateGroupResults(ctx context.Context) ([]models.Match, error) {
	if !s.tournament.Rules().DemoTools() {
		return nil, ErrDemoToolsDisabled
	}

	recorded := make([]models.Match, 0)
	for _, zone := range s.tournament.Zones() {
		pending, err := s.tournament.PendingFixtures(ctx, zone)
		if err != nil {
			return nil, err
		}
		for _, p := range pending {
			m, err := s.matches.RecordGroupResult(ctx, ResultInput{
				HomeTeamID: p.HomeTeamID,
				AwayTeamID: p.AwayTeamID,
				HomeGoals:  s.goals(),
				AwayGoals:  s.goals(),
			})
			if err != nil {
				return nil, err
			}
			recorded = append(recorded, *m)
		}
	}

	s.logger.WarnContext(ctx, "Demo group results generated", slog.Int("matches", len(recorded)))
	return recorded, nil
}
