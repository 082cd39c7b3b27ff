package identity

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcruzdev/ipnavigator/internal/server/identity/migrations"
)

// OpenPostgres connects to the credential database and applies pending
// migrations.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// EnsureSeeds inserts the given accounts unless an identity with the same
// email already exists. Secrets are bcrypt-hashed here so plaintext never
// reaches the database.
func EnsureSeeds(ctx context.Context, db *sql.DB, seeds []Seed, bcryptCost int) error {
	query :=
		`INSERT INTO identities (email, secret_hash, display_name)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO NOTHING
		 `

	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Secret), bcryptCost)
		if err != nil {
			return fmt.Errorf("hashing seed secret: %w", err)
		}
		if _, err := db.ExecContext(ctx, query, s.Email, string(hash), s.DisplayName); err != nil {
			return fmt.Errorf("seeding identity %s: %w", s.Email, err)
		}
	}
	return nil
}
