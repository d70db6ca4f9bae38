package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	database "github.com/Dosada05/zone-cup/db"
)

// SQLExecutor is satisfied by both *sql.DB and *sql.Tx.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// sqlStore carries the handle and dialect shared by every repository.
type sqlStore struct {
	db     *sql.DB
	driver string
}

func (s sqlStore) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return s.db
}

func (s sqlStore) rebind(query string) string {
	return database.Rebind(s.driver, query)
}

func checkAffectedRows(result sql.Result, notFoundError error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundError
	}
	return nil
}

// uniqueViolation returns the name of the violated unique constraint when err is a
// unique violation from any of the supported drivers.
func uniqueViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return pqErr.Constraint, true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) && liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return sqliteConstraintName(liteErr.Error()), true
	}
	return "", false
}

// sqliteConstraintName turns "UNIQUE constraint failed: teams.name" into the
// postgres-style name "teams_name_key" used by the schema.
func sqliteConstraintName(msg string) string {
	const marker = "UNIQUE constraint failed: "
	i := strings.Index(msg, marker)
	if i < 0 {
		return ""
	}
	cols := msg[i+len(marker):]
	if j := strings.Index(cols, " ("); j >= 0 {
		cols = cols[:j]
	}

	var table string
	parts := []string{}
	for _, col := range strings.Split(cols, ", ") {
		tbl, name, ok := strings.Cut(strings.TrimSpace(col), ".")
		if !ok {
			return ""
		}
		table = tbl
		parts = append(parts, name)
	}
	return table + "_" + strings.Join(parts, "_") + "_key"
}
