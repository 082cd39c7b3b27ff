// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the IP Navigator auth server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP API.
//   - DatabaseDSN: PostgreSQL DSN for the credential store. When empty the
//     server runs on the seeded in-memory store.
//   - SecretKey: HMAC secret for the signed token codec (HS256).
//   - SignedTokens: when true, issued tokens are HMAC-signed and verified on
//     protected endpoints. When false (default) tokens use the legacy
//     unsigned encoding for compatibility with existing clients.
//   - BcryptCost: cost factor for hashing seeded secrets.
type Config struct {
	EndpointAddr string
	DatabaseDSN  string
	SecretKey    string
	SignedTokens bool
	BcryptCost   int
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key is insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8000"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.SignedTokens = false
	c.BcryptCost = 8
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
