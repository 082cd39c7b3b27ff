package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/jcruzdev/ipnavigator/internal/client/geo"
	"github.com/jcruzdev/ipnavigator/internal/client/lookup"
	"github.com/jcruzdev/ipnavigator/internal/common"
)

// Lookup geolocates subject and records it in history. Validation failures
// and provider errors surface as transient notices; a superseded response is
// dropped without a word.
func (a *App) Lookup(ctx context.Context, subject string) error {
	ctx, cancel := context.WithTimeout(ctx, a.config.LookupTimeout)
	defer cancel()

	loc, err := a.lookups.Lookup(ctx, subject)
	if err != nil {
		return a.reportLookupError(err)
	}

	a.lastLocation = loc
	a.printLocation(loc)
	return nil
}

// Current geolocates this machine. The result is shown but never recorded in
// history.
func (a *App) Current(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.config.LookupTimeout)
	defer cancel()

	loc, err := a.lookups.Current(ctx)
	if err != nil {
		return a.reportLookupError(err)
	}

	a.lastLocation = loc
	a.printLocation(loc)
	return nil
}

func (a *App) reportLookupError(err error) error {
	switch {
	case errors.Is(err, lookup.ErrSuperseded):
		// A newer lookup owns the screen now.
		return nil
	case errors.Is(err, common.ErrValidation):
		a.notices.Show("Invalid IP address")
	case errors.Is(err, geo.ErrNoCurrentLocation):
		a.notices.Show("Current location unavailable")
	default:
		a.notices.Show("Error fetching IP info")
	}
	printlnFn(a.notices.Current())
	return err
}

func (a *App) printLocation(loc *geo.Location) {
	printlnFn("IP:      ", loc.IP)
	printlnFn("City:    ", loc.City)
	printlnFn("Region:  ", loc.Region)
	printlnFn("Country: ", loc.Country)
	if lat, lng, err := loc.LatLng(); err == nil {
		printlnFn(fmt.Sprintf("Coords:   %v, %v", lat, lng))
	}
}
