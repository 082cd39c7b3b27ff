// Package auth implements the session token codecs. Two encodings exist: the
// legacy reversible encoding carried over from the original service, and an
// HMAC-signed encoding for deployments that verify tokens on protected calls.
package auth

import "time"

// Codec issues and decodes session tokens. A token encodes the account email
// and the issue timestamp; the server keeps no session state, so each token
// is generated independently per login and is not revocable.
type Codec interface {
	Issue(email string, issuedAt time.Time) (string, error)
	Decode(token string) (email string, issuedAt time.Time, err error)
}
