package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/zone-cup/models"
)

var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamNameConflict  = errors.New("team name conflict")
	ErrTeamColorConflict = errors.New("team color conflict")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context) ([]models.Team, error)
	ListByZone(ctx context.Context, zone string) ([]models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context, exec SQLExecutor) error
	CountByZone(ctx context.Context) (map[string]int, error)
	ColorInUse(ctx context.Context, color string) (bool, error)
}

type sqlTeamRepository struct {
	sqlStore
}

func NewTeamRepository(db *sql.DB, driver string) TeamRepository {
	return &sqlTeamRepository{sqlStore{db: db, driver: driver}}
}

func (r *sqlTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := r.rebind(`INSERT INTO teams (name, zone, color) VALUES (?, ?, ?) RETURNING id`)

	err := r.db.QueryRowContext(ctx, query, team.Name, team.Zone, team.Color).Scan(&team.ID)
	if err != nil {
		return r.handleTeamError(err)
	}
	return nil
}

func (r *sqlTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := r.rebind(`SELECT id, name, zone, color FROM teams WHERE id = ?`)

	var team models.Team
	err := r.db.QueryRowContext(ctx, query, id).Scan(&team.ID, &team.Name, &team.Zone, &team.Color)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}
	return &team, nil
}

func (r *sqlTeamRepository) List(ctx context.Context) ([]models.Team, error) {
	return r.list(ctx, `SELECT id, name, zone, color FROM teams ORDER BY zone, name`)
}

// ListByZone returns the zone's teams ordered by name; fixture enumeration follows this order.
func (r *sqlTeamRepository) ListByZone(ctx context.Context, zone string) ([]models.Team, error) {
	return r.list(ctx, r.rebind(`SELECT id, name, zone, color FROM teams WHERE zone = ? ORDER BY name`), zone)
}

func (r *sqlTeamRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var t models.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Zone, &t.Color); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teams: %w", err)
	}
	return teams, nil
}

func (r *sqlTeamRepository) Update(ctx context.Context, team *models.Team) error {
	query := r.rebind(`UPDATE teams SET name = ?, zone = ? WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query, team.Name, team.Zone, team.ID)
	if err != nil {
		return r.handleTeamError(err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *sqlTeamRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, r.rebind(`DELETE FROM teams WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete team %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *sqlTeamRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	if _, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM teams`); err != nil {
		return fmt.Errorf("failed to delete teams: %w", err)
	}
	return nil
}

func (r *sqlTeamRepository) CountByZone(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT zone, COUNT(*) FROM teams GROUP BY zone`)
	if err != nil {
		return nil, fmt.Errorf("failed to count teams: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var zone string
		var n int
		if err := rows.Scan(&zone, &n); err != nil {
			return nil, fmt.Errorf("failed to scan team count: %w", err)
		}
		counts[zone] = n
	}
	return counts, rows.Err()
}

func (r *sqlTeamRepository) ColorInUse(ctx context.Context, color string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, r.rebind(`SELECT COUNT(*) FROM teams WHERE color = ?`), color).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check team color: %w", err)
	}
	return n > 0, nil
}

func (r *sqlTeamRepository) handleTeamError(err error) error {
	if constraint, ok := uniqueViolation(err); ok {
		switch constraint {
		case "teams_name_key":
			return ErrTeamNameConflict
		case "teams_color_key":
			return ErrTeamColorConflict
		}
	}
	return fmt.Errorf("team repository error: %w", err)
}
