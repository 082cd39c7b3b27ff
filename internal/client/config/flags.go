package config

import (
	"flag"
	"os"
	"time"

	"github.com/jcruzdev/ipnavigator/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   auth server base URL
//	-g string   geolocation provider base URL
//	-m string   path to a local GeoLite2 City database (offline lookups)
//	-s string   state directory
//	-t int      lookup timeout, seconds
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-m", "-s", "-t"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&config.ServerAddr, "a", config.ServerAddr, "auth server base URL")
	fs.StringVar(&config.GeoEndpoint, "g", config.GeoEndpoint, "geolocation provider base URL")
	fs.StringVar(&config.GeoDatabase, "m", config.GeoDatabase, "local GeoLite2 City database path")
	fs.StringVar(&config.StateDir, "s", config.StateDir, "state directory")

	lookupTimeout := fs.Int("t", int(config.LookupTimeout.Seconds()), "lookup timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.LookupTimeout = time.Duration(*lookupTimeout) * time.Second
}
