package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Flag names in tournament_settings.
const (
	FlagTeamsLocked  = "teams_locked"
	FlagGroupsLocked = "groups_locked"
)

type SettingsRepository interface {
	Get(ctx context.Context, name string) (string, bool, error)
	Set(ctx context.Context, exec SQLExecutor, name, value string) error
	Delete(ctx context.Context, exec SQLExecutor, name string) error
	DeleteAll(ctx context.Context, exec SQLExecutor) error

	TeamsLocked(ctx context.Context) (bool, error)
	GroupsLocked(ctx context.Context) (bool, error)
	SetFlag(ctx context.Context, exec SQLExecutor, name string) error
	ClearFlag(ctx context.Context, exec SQLExecutor, name string) error
}

type sqlSettingsRepository struct {
	sqlStore
}

func NewSettingsRepository(db *sql.DB, driver string) SettingsRepository {
	return &sqlSettingsRepository{sqlStore{db: db, driver: driver}}
}

func (r *sqlSettingsRepository) Get(ctx context.Context, name string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, r.rebind(`SELECT value FROM tournament_settings WHERE name = ?`), name).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read setting %s: %w", name, err)
	}
	return value, true, nil
}

func (r *sqlSettingsRepository) Set(ctx context.Context, exec SQLExecutor, name, value string) error {
	query := r.rebind(`
		INSERT INTO tournament_settings (name, value) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET value = excluded.value`)
	if _, err := r.getExecutor(exec).ExecContext(ctx, query, name, value); err != nil {
		return fmt.Errorf("failed to write setting %s: %w", name, err)
	}
	return nil
}

func (r *sqlSettingsRepository) Delete(ctx context.Context, exec SQLExecutor, name string) error {
	if _, err := r.getExecutor(exec).ExecContext(ctx, r.rebind(`DELETE FROM tournament_settings WHERE name = ?`), name); err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", name, err)
	}
	return nil
}

func (r *sqlSettingsRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	if _, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM tournament_settings`); err != nil {
		return fmt.Errorf("failed to delete settings: %w", err)
	}
	return nil
}

func (r *sqlSettingsRepository) TeamsLocked(ctx context.Context) (bool, error) {
	return r.flag(ctx, FlagTeamsLocked)
}

func (r *sqlSettingsRepository) GroupsLocked(ctx context.Context) (bool, error) {
	return r.flag(ctx, FlagGroupsLocked)
}

func (r *sqlSettingsRepository) SetFlag(ctx context.Context, exec SQLExecutor, name string) error {
	return r.Set(ctx, exec, name, "true")
}

func (r *sqlSettingsRepository) ClearFlag(ctx context.Context, exec SQLExecutor, name string) error {
	return r.Delete(ctx, exec, name)
}

func (r *sqlSettingsRepository) flag(ctx context.Context, name string) (bool, error) {
	value, ok, err := r.Get(ctx, name)
	if err != nil {
		return false, err
	}
	return ok && value == "true", nil
}
