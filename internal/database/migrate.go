package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordloop/schemas"
)

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version VARCHAR(255) NOT NULL PRIMARY KEY,
	applied_at TIMESTAMP NOT NULL
)`

// Migration is one versioned SQL file of a driver.
type Migration struct {
	Version string
	SQL     string
}

// LoadMigrations returns the embedded migrations for a driver sorted by version.
func LoadMigrations(migrations fs.FS, driver string) ([]Migration, error) {
	dir := path.Join("migrations", driver)
	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("fs.ReadDir(%s) > %w", dir, err)
	}

	var result []Migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		content, err := fs.ReadFile(migrations, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("fs.ReadFile(%s) > %w", entry.Name(), err)
		}
		result = append(result, Migration{
			Version: strings.TrimSuffix(entry.Name(), ".sql"),
			SQL:     string(content),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Version < result[j].Version
	})
	return result, nil
}

// Migrate applies every embedded migration for the connection's driver that is not
// recorded in schema_migrations yet, and returns the applied versions.
func Migrate(ctx context.Context, db *sqlx.DB) ([]string, error) {
	migrations, err := LoadMigrations(schemas.Migrations, db.DriverName())
	if err != nil {
		return nil, err
	}
	return apply(ctx, db, migrations)
}

func apply(ctx context.Context, db *sqlx.DB, migrations []Migration) ([]string, error) {
	if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil {
		return nil, fmt.Errorf("db.ExecContext(create schema_migrations) > %w", err)
	}

	var versions []string
	if err := db.SelectContext(ctx, &versions, "SELECT version FROM schema_migrations"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(schema_migrations) > %w", err)
	}
	done := make(map[string]bool, len(versions))
	for _, v := range versions {
		done[v] = true
	}

	var applied []string
	for _, m := range migrations {
		if done[m.Version] {
			continue
		}
		err := RunInTx(ctx, db, func(ctx context.Context, tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
				return fmt.Errorf("tx.ExecContext(%s) > %w", m.Version, err)
			}
			if _, err := tx.ExecContext(ctx,
				tx.Rebind("INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)"),
				m.Version, time.Now().UTC()); err != nil {
				return fmt.Errorf("tx.ExecContext(record %s) > %w", m.Version, err)
			}
			return nil
		})
		if err != nil {
			return applied, err
		}
		slog.Default().Info("applied migration", "version", m.Version, "driver", db.DriverName())
		applied = append(applied, m.Version)
	}
	return applied, nil
}
