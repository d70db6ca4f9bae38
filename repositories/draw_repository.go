package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/zone-cup/models"
)

var ErrDrawConflict = errors.New("knockout draw already exists for this round")

type DrawRepository interface {
	ListByPhase(ctx context.Context, phase string) ([]models.Draw, error)
	CreateBatch(ctx context.Context, exec SQLExecutor, phase string, pairings []models.Pairing) ([]models.Draw, error)
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type sqlDrawRepository struct {
	sqlStore
}

func NewDrawRepository(db *sql.DB, driver string) DrawRepository {
	return &sqlDrawRepository{sqlStore{db: db, driver: driver}}
}

func (r *sqlDrawRepository) ListByPhase(ctx context.Context, phase string) ([]models.Draw, error) {
	query := r.rebind(`
		SELECT d.id, d.phase, d.position, d.home_team_id, h.name, d.away_team_id, a.name
		FROM knockout_draws d
		JOIN teams h ON h.id = d.home_team_id
		JOIN teams a ON a.id = d.away_team_id
		WHERE d.phase = ?
		ORDER BY d.position`)

	rows, err := r.db.QueryContext(ctx, query, phase)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s draw: %w", phase, err)
	}
	defer rows.Close()

	draws := make([]models.Draw, 0)
	for rows.Next() {
		var d models.Draw
		if err := rows.Scan(&d.ID, &d.Phase, &d.Position, &d.HomeTeamID, &d.HomeTeam, &d.AwayTeamID, &d.AwayTeam); err != nil {
			return nil, fmt.Errorf("failed to scan draw: %w", err)
		}
		draws = append(draws, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating draws: %w", err)
	}
	return draws, nil
}

// CreateBatch stores pairings at positions 1..n. Pass a transaction to make the batch atomic.
func (r *sqlDrawRepository) CreateBatch(ctx context.Context, exec SQLExecutor, phase string, pairings []models.Pairing) ([]models.Draw, error) {
	executor := r.getExecutor(exec)
	query := r.rebind(`
		INSERT INTO knockout_draws (phase, position, home_team_id, away_team_id)
		VALUES (?, ?, ?, ?)
		RETURNING id`)

	draws := make([]models.Draw, 0, len(pairings))
	for i, p := range pairings {
		d := models.Draw{Phase: phase, Position: i + 1, Pairing: p}
		if err := executor.QueryRowContext(ctx, query, phase, d.Position, p.HomeTeamID, p.AwayTeamID).Scan(&d.ID); err != nil {
			if constraint, ok := uniqueViolation(err); ok && constraint == "knockout_draws_phase_position_key" {
				return nil, ErrDrawConflict
			}
			return nil, fmt.Errorf("failed to store %s draw position %d: %w", phase, d.Position, err)
		}
		draws = append(draws, d)
	}
	return draws, nil
}

func (r *sqlDrawRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	if _, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM knockout_draws`); err != nil {
		return fmt.Errorf("failed to delete knockout draws: %w", err)
	}
	return nil
}
