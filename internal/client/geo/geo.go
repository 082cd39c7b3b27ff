// Package geo resolves IP addresses to locations. Two implementations exist:
// an HTTP client for an ipinfo-style provider and an offline reader over a
// local GeoLite2 City database.
package geo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoCurrentLocation is returned by clients that cannot determine the
// requester's own location (the offline database knows nothing about the
// caller's public IP).
var ErrNoCurrentLocation = errors.New("current location unavailable")

// Location is the provider's geo record. Loc holds "lat,lng" as a single
// string, matching the provider's wire format.
type Location struct {
	IP      string `json:"ip"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
	Loc     string `json:"loc"`
}

// LatLng parses the Loc field. Malformed input yields an error rather than a
// silent (0,0).
func (l *Location) LatLng() (float64, float64, error) {
	parts := strings.SplitN(l.Loc, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed loc %q", l.Loc)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed loc %q", l.Loc)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed loc %q", l.Loc)
	}
	return lat, lng, nil
}

// Client resolves locations. Lookup takes an explicit subject IP; Current
// resolves the requester's own address.
type Client interface {
	Current(ctx context.Context) (*Location, error)
	Lookup(ctx context.Context, ip string) (*Location, error)
}
