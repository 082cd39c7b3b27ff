// Package identity implements the read-only credential store: a registry of
// known identities keyed by email, seeded at startup and never mutated at
// runtime.
package identity

import "context"

// Repository looks up identities by email. Lookup is exact-match and
// case-sensitive on the email string; this mirrors the original behavior and
// is a documented limitation, not a bug to fix here.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Identity, error)
}
