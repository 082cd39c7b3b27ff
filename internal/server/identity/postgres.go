package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jcruzdev/ipnavigator/internal/common"
)

// DBTX is the subset of database/sql the repository needs. Both *sql.DB and
// *sql.Tx satisfy it.
type DBTX interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type PostgresRepository struct {
	db DBTX
}

func NewPostgresRepository(db DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*Identity, error) {
	query :=
		`SELECT id, email, secret_hash, display_name FROM identities
		 WHERE email = $1
		 `

	id := &Identity{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(&id.ID, &id.Email, &id.SecretHash, &id.DisplayName)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}
