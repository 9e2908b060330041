package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strings"
	"time"
)

//go:embed sqlite/*.sql
var sqliteFS embed.FS

const createHistoryTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	name       TEXT PRIMARY KEY,
	applied_at TEXT NOT NULL
)`

// SQLiteMigrations lists the embedded migration files in apply order.
func SQLiteMigrations() ([]string, error) {
	entries, err := sqliteFS.ReadDir("sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// RunSQLiteMigrations applies every embedded migration not yet recorded in
// schema_migrations and returns the names applied by this call. Each
// migration and its history row commit together.
func RunSQLiteMigrations(ctx context.Context, db *sql.DB) ([]string, error) {
	if _, err := db.ExecContext(ctx, createHistoryTable); err != nil {
		return nil, fmt.Errorf("failed to create migration history: %w", err)
	}

	names, err := SQLiteMigrations()
	if err != nil {
		return nil, err
	}
	done, err := appliedSQLiteMigrations(ctx, db)
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, name := range names {
		if done[name] {
			continue
		}
		if err := applySQLiteMigration(ctx, db, name); err != nil {
			return applied, err
		}
		applied = append(applied, name)
	}
	return applied, nil
}

func appliedSQLiteMigrations(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, `SELECT name FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration history: %w", err)
	}
	defer rows.Close()

	done := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to read migration history: %w", err)
		}
		done[name] = true
	}
	return done, rows.Err()
}

func applySQLiteMigration(ctx context.Context, db *sql.DB, name string) error {
	migration, err := sqliteFS.ReadFile("sqlite/" + name)
	if err != nil {
		return fmt.Errorf("failed to read migration %s: %w", name, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration %s: %w", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, string(migration)); err != nil {
		return fmt.Errorf("failed to execute migration %s: %w", name, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)`,
		name, time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", name, err)
	}
	return tx.Commit()
}
