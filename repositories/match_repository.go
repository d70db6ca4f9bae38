package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/zone-cup/models"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	// Create stores the result; the winner is always derived from the score.
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByPhase(ctx context.Context, phase string) ([]models.Match, error)
	ListAll(ctx context.Context) ([]models.Match, error)
	// FindByTeams looks the fixture up in either home/away orientation.
	FindByTeams(ctx context.Context, phase string, teamA, teamB int) (*models.Match, error)
	UpdateScore(ctx context.Context, match *models.Match) error
	DeleteByPhase(ctx context.Context, exec SQLExecutor, phase string) error
	DeleteKnockout(ctx context.Context, exec SQLExecutor) error
	CountByPhase(ctx context.Context) (map[string]int, error)
}

type sqlMatchRepository struct {
	sqlStore
}

func NewMatchRepository(db *sql.DB, driver string) MatchRepository {
	return &sqlMatchRepository{sqlStore{db: db, driver: driver}}
}

const matchSelect = `
	SELECT m.id, m.phase, m.home_team_id, m.away_team_id, m.home_goals, m.away_goals, m.winner_team_id,
	       h.name, a.name, w.name
	FROM matches m
	JOIN teams h ON h.id = m.home_team_id
	JOIN teams a ON a.id = m.away_team_id
	LEFT JOIN teams w ON w.id = m.winner_team_id`

func (r *sqlMatchRepository) Create(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	match.WinnerTeamID = models.DecideWinner(match.HomeTeamID, match.AwayTeamID, match.HomeGoals, match.AwayGoals)

	query := r.rebind(`
		INSERT INTO matches (phase, home_team_id, away_team_id, home_goals, away_goals, winner_team_id)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`)

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		match.Phase,
		match.HomeTeamID,
		match.AwayTeamID,
		match.HomeGoals,
		match.AwayGoals,
		match.WinnerTeamID,
	).Scan(&match.ID)
	if err != nil {
		return fmt.Errorf("failed to create %s match %d-%d: %w", match.Phase, match.HomeTeamID, match.AwayTeamID, err)
	}
	return nil
}

func (r *sqlMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	m, err := scanMatch(r.db.QueryRowContext(ctx, r.rebind(matchSelect+` WHERE m.id = ?`), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", id, err)
	}
	return m, nil
}

func (r *sqlMatchRepository) ListByPhase(ctx context.Context, phase string) ([]models.Match, error) {
	return r.list(ctx, r.rebind(matchSelect+` WHERE m.phase = ? ORDER BY m.id`), phase)
}

func (r *sqlMatchRepository) ListAll(ctx context.Context) ([]models.Match, error) {
	return r.list(ctx, matchSelect+` ORDER BY m.id`)
}

func (r *sqlMatchRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Match, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating matches: %w", err)
	}
	return matches, nil
}

func (r *sqlMatchRepository) FindByTeams(ctx context.Context, phase string, teamA, teamB int) (*models.Match, error) {
	query := r.rebind(matchSelect + `
		WHERE m.phase = ?
		  AND ((m.home_team_id = ? AND m.away_team_id = ?) OR (m.home_team_id = ? AND m.away_team_id = ?))
		ORDER BY m.id
		LIMIT 1`)

	m, err := scanMatch(r.db.QueryRowContext(ctx, query, phase, teamA, teamB, teamB, teamA))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to find %s match %d-%d: %w", phase, teamA, teamB, err)
	}
	return m, nil
}

func (r *sqlMatchRepository) UpdateScore(ctx context.Context, match *models.Match) error {
	match.WinnerTeamID = models.DecideWinner(match.HomeTeamID, match.AwayTeamID, match.HomeGoals, match.AwayGoals)

	query := r.rebind(`UPDATE matches SET home_goals = ?, away_goals = ?, winner_team_id = ? WHERE id = ?`)
	result, err := r.db.ExecContext(ctx, query, match.HomeGoals, match.AwayGoals, match.WinnerTeamID, match.ID)
	if err != nil {
		return fmt.Errorf("failed to update match %d: %w", match.ID, err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *sqlMatchRepository) DeleteByPhase(ctx context.Context, exec SQLExecutor, phase string) error {
	if _, err := r.getExecutor(exec).ExecContext(ctx, r.rebind(`DELETE FROM matches WHERE phase = ?`), phase); err != nil {
		return fmt.Errorf("failed to delete %s matches: %w", phase, err)
	}
	return nil
}

func (r *sqlMatchRepository) DeleteKnockout(ctx context.Context, exec SQLExecutor) error {
	query := r.rebind(`DELETE FROM matches WHERE phase <> ?`)
	if _, err := r.getExecutor(exec).ExecContext(ctx, query, models.PhaseGroup); err != nil {
		return fmt.Errorf("failed to delete knockout matches: %w", err)
	}
	return nil
}

func (r *sqlMatchRepository) CountByPhase(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT phase, COUNT(*) FROM matches GROUP BY phase`)
	if err != nil {
		return nil, fmt.Errorf("failed to count matches: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var phase string
		var n int
		if err := rows.Scan(&phase, &n); err != nil {
			return nil, fmt.Errorf("failed to scan match count: %w", err)
		}
		counts[phase] = n
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMatch(row rowScanner) (*models.Match, error) {
	var m models.Match
	var winnerID sql.NullInt64
	var winnerName sql.NullString

	err := row.Scan(
		&m.ID,
		&m.Phase,
		&m.HomeTeamID,
		&m.AwayTeamID,
		&m.HomeGoals,
		&m.AwayGoals,
		&winnerID,
		&m.HomeTeam,
		&m.AwayTeam,
		&winnerName,
	)
	if err != nil {
		return nil, err
	}

	if winnerID.Valid {
		id := int(winnerID.Int64)
		m.WinnerTeamID = &id
		m.Winner = winnerName.String
	}
	return &m, nil
}
