package geo

import (
	"context"
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// MMDBClient resolves locations from a local GeoLite2 City database, so
// lookups keep working without the online provider. It cannot resolve the
// requester's own location: the database has no notion of "the caller".
type MMDBClient struct {
	reader *geoip2.Reader
}

func NewMMDBClient(path string) (*MMDBClient, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening geo database: %w", err)
	}
	return &MMDBClient{reader: reader}, nil
}

func (c *MMDBClient) Close() error {
	return c.reader.Close()
}

func (c *MMDBClient) Current(ctx context.Context) (*Location, error) {
	return nil, ErrNoCurrentLocation
}

func (c *MMDBClient) Lookup(ctx context.Context, ipAddress string) (*Location, error) {
	ip := net.ParseIP(ipAddress)
	if ip == nil {
		return nil, fmt.Errorf("invalid ip address: %s", ipAddress)
	}

	record, err := c.reader.City(ip)
	if err != nil {
		return nil, err
	}

	loc := &Location{
		IP:      ipAddress,
		City:    record.City.Names["en"],
		Country: record.Country.IsoCode,
		Loc:     fmt.Sprintf("%v,%v", record.Location.Latitude, record.Location.Longitude),
	}
	if len(record.Subdivisions) > 0 {
		loc.Region = record.Subdivisions[0].Names["en"]
	}
	return loc, nil
}
