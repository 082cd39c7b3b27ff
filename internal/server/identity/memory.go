package identity

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jcruzdev/ipnavigator/internal/common"
)

// Seed is a plaintext account definition used to populate the in-memory
// repository at startup. The secret is hashed during construction and the
// plaintext is not retained.
type Seed struct {
	ID          int64
	Email       string
	Secret      string
	DisplayName string
}

// DefaultSeeds returns the stock development account.
func DefaultSeeds() []Seed {
	return []Seed{
		{ID: 1, Email: "test@email.com", Secret: "password123", DisplayName: "Juan Cruz"},
	}
}

// MemoryRepository is a seeded, read-only credential store. Since nothing
// mutates it after construction, concurrent lookups need no locking.
type MemoryRepository struct {
	byEmail map[string]*Identity
}

// NewMemoryRepository hashes each seed secret with bcrypt at the given cost
// and builds the email index. Duplicate seed emails are rejected.
func NewMemoryRepository(seeds []Seed, bcryptCost int) (*MemoryRepository, error) {
	byEmail := make(map[string]*Identity, len(seeds))
	for _, s := range seeds {
		if _, ok := byEmail[s.Email]; ok {
			return nil, fmt.Errorf("duplicate seed email: %s", s.Email)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Secret), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hashing seed secret: %w", err)
		}
		byEmail[s.Email] = &Identity{
			ID:          s.ID,
			Email:       s.Email,
			SecretHash:  string(hash),
			DisplayName: s.DisplayName,
		}
	}
	return &MemoryRepository{byEmail: byEmail}, nil
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*Identity, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return id, nil
}
