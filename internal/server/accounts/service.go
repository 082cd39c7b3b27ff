// Package accounts contains the authentication service: it verifies a
// credential pair against the identity repository and issues a session token
// together with the public account view.
package accounts

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jcruzdev/ipnavigator/internal/common"
	"github.com/jcruzdev/ipnavigator/internal/server/auth"
	"github.com/jcruzdev/ipnavigator/internal/server/identity"
)

// PublicUser is the account view returned to clients. It deliberately
// excludes the secret hash.
type PublicUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session bundles an issued token with the public view of its account.
type Session struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type Service struct {
	repo  identity.Repository
	codec auth.Codec
	now   func() time.Time
}

func NewService(repo identity.Repository, codec auth.Codec) *Service {
	return &Service{repo: repo, codec: codec, now: time.Now}
}

// Authenticate verifies the credential pair and, on success, returns a fresh
// session. An unknown email and a failed password check both map to
// common.ErrInvalidCredentials: callers must not be able to tell which one
// happened. The operation is pure given repository state; nothing is
// persisted server-side.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	id, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(id.SecretHash), []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(id.Email, s.now())
	if err != nil {
		return nil, common.ErrInternal
	}

	return &Session{
		Token: token,
		User:  PublicUser{ID: id.ID, Email: id.Email, Name: id.DisplayName},
	}, nil
}

// Lookup resolves the public view for an email, used by token-verified
// endpoints. The not-found case surfaces as ErrInvalidCredentials as well: a
// token naming an unknown account is no more trustworthy than a bad password.
func (s *Service) Lookup(ctx context.Context, email string) (*PublicUser, error) {
	id, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}
	return &PublicUser{ID: id.ID, Email: id.Email, Name: id.DisplayName}, nil
}
