package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/jcruzdev/ipnavigator/internal/flagx"
	"github.com/jcruzdev/ipnavigator/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON configuration
// files. Interval fields use timex.Duration, which accepts both strings such
// as "10s" and integer nanoseconds.
type JsonConfig struct {
	ServerAddr    string         `json:"server_addr"`
	GeoEndpoint   string         `json:"geo_endpoint"`
	GeoDatabase   string         `json:"geo_database"`
	StateDir      string         `json:"state_dir"`
	LookupTimeout timex.Duration `json:"lookup_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; when
// neither is set, no JSON file is loaded.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.ServerAddr = c.ServerAddr
	config.GeoEndpoint = c.GeoEndpoint
	config.GeoDatabase = c.GeoDatabase
	config.StateDir = c.StateDir
	config.LookupTimeout = time.Duration(c.LookupTimeout.Duration)
}
