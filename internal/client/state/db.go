package state

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/jcruzdev/ipnavigator/internal/client/state/migrations"
	"github.com/jcruzdev/ipnavigator/internal/filex"
)

const dbFileName = "ipnavigator.db"

// InitDatabase ensures the state directory exists, opens (or creates) the
// sqlite database inside it, and applies pending migrations.
func InitDatabase(ctx context.Context, stateDir string) (*sql.DB, error) {
	dir, err := filex.EnsureDir(stateDir)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("opening state database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}
