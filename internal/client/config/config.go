// Package config handles configuration for the CLI client,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the IP Navigator CLI.
//
// Fields:
//   - ServerAddr: base URL of the auth server.
//   - GeoEndpoint: base URL of the geolocation provider.
//   - GeoDatabase: path to a local GeoLite2 City database. When set, lookups
//     resolve offline against it instead of calling the provider.
//   - StateDir: directory holding the durable client state database.
//   - LookupTimeout: per-request timeout for lookup and login calls.
type Config struct {
	ServerAddr    string
	GeoEndpoint   string
	GeoDatabase   string
	StateDir      string
	LookupTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://localhost:8000"
	c.GeoEndpoint = "https://ipinfo.io"
	c.GeoDatabase = ""
	c.StateDir = "state"
	c.LookupTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
