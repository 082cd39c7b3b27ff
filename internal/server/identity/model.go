package identity

// Identity is a registered account in the credential store. SecretHash is a
// bcrypt hash and is never compared to plaintext by equality.
type Identity struct {
	ID          int64
	Email       string
	SecretHash  string
	DisplayName string
}
