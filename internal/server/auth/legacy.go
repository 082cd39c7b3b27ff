package auth

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jcruzdev/ipnavigator/internal/common"
)

// LegacyCodec reproduces the original token format: base64 of
// "email:unixMillis". The encoding is reversible and carries no signature,
// so possession alone stands in for a session. Nothing on the server decodes
// these tokens after issuance; SignedCodec exists for deployments that need
// actual verification.
type LegacyCodec struct{}

func NewLegacyCodec() *LegacyCodec {
	return &LegacyCodec{}
}

func (c *LegacyCodec) Issue(email string, issuedAt time.Time) (string, error) {
	payload := fmt.Sprintf("%s:%d", email, issuedAt.UnixMilli())
	return base64.StdEncoding.EncodeToString([]byte(payload)), nil
}

func (c *LegacyCodec) Decode(token string) (string, time.Time, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", time.Time{}, common.ErrInvalidToken
	}

	// The timestamp follows the last colon; the email itself never contains
	// one, but splitting from the right costs nothing.
	sep := strings.LastIndex(string(raw), ":")
	if sep < 0 {
		return "", time.Time{}, common.ErrInvalidToken
	}

	millis, err := strconv.ParseInt(string(raw[sep+1:]), 10, 64)
	if err != nil {
		return "", time.Time{}, common.ErrInvalidToken
	}

	return string(raw[:sep]), time.UnixMilli(millis), nil
}
