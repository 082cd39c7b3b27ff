package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jcruzdev/ipnavigator/internal/common"
)

// Claims extends the registered JWT claims with the account email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// SignedCodec issues HS256-signed tokens and verifies them on decode. This is
// a deliberate departure from the legacy format: a decoded token is only
// accepted when its signature checks out against the server secret.
type SignedCodec struct {
	secretKey []byte
}

func NewSignedCodec(secretKey []byte) *SignedCodec {
	return &SignedCodec{secretKey: secretKey}
}

func (c *SignedCodec) Issue(email string, issuedAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
		Email: email,
	})

	return token.SignedString(c.secretKey)
}

func (c *SignedCodec) Decode(tokenString string) (string, time.Time, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secretKey, nil
	})
	if err != nil {
		return "", time.Time{}, common.ErrInvalidToken
	}

	if !token.Valid {
		return "", time.Time{}, common.ErrInvalidToken
	}

	return claims.Email, claims.IssuedAt.Time, nil
}
