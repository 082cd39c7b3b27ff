// Package lookup orchestrates IP lookups: it validates the subject, calls the
// geolocation client, records successful lookups into history, and discards
// responses that a newer lookup has superseded.
package lookup

import (
	"context"
	"errors"
	"regexp"
	"sync"

	"github.com/google/uuid"

	"github.com/jcruzdev/ipnavigator/internal/client/geo"
	"github.com/jcruzdev/ipnavigator/internal/client/history"
	"github.com/jcruzdev/ipnavigator/internal/common"
	"github.com/jcruzdev/ipnavigator/internal/logging"
)

// ErrSuperseded marks a response that arrived after a newer lookup was
// issued. The caller should drop it silently; the newer lookup's outcome is
// the one that counts.
var ErrSuperseded = errors.New("lookup superseded")

// ipPattern checks the dotted-quad shape only: four dot-separated groups of
// 1–3 digits. Octet ranges are deliberately not validated, so 999.999.999.999
// passes. That looseness is inherited behavior and stays until product says
// otherwise.
var ipPattern = regexp.MustCompile(`^(?:\d{1,3}\.){3}\d{1,3}$`)

// ValidIP reports whether s has the dotted-quad shape.
func ValidIP(s string) bool {
	return ipPattern.MatchString(s)
}

// Orchestrator serializes the decision of which in-flight lookup is current.
// Requests themselves may overlap; each gets a generation ID and only the
// latest generation's response is applied.
type Orchestrator struct {
	geo     geo.Client
	history *history.Store
	logger  logging.Logger

	mu     sync.Mutex
	latest uuid.UUID
}

func NewOrchestrator(g geo.Client, h *history.Store, logger logging.Logger) *Orchestrator {
	return &Orchestrator{geo: g, history: h, logger: logger.With("module", "lookup")}
}

func (o *Orchestrator) beginGeneration() uuid.UUID {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.latest = uuid.New()
	return o.latest
}

func (o *Orchestrator) isLatest(gen uuid.UUID) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.latest == gen
}

// Lookup resolves subject. Pattern mismatch yields common.ErrValidation with
// no network call and no history mutation. On provider failure the error is
// surfaced once and history is left unchanged. On success the subject is
// recorded into history before the location is returned.
func (o *Orchestrator) Lookup(ctx context.Context, subject string) (*geo.Location, error) {
	if !ValidIP(subject) {
		return nil, common.ErrValidation
	}

	gen := o.beginGeneration()

	loc, err := o.geo.Lookup(ctx, subject)
	if !o.isLatest(gen) {
		o.logger.Debug(ctx, "dropping superseded lookup", "subject", subject)
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	if err := o.history.Add(ctx, subject); err != nil {
		// The location is still good; a persistence failure must not hide it.
		o.logger.Warn(ctx, "failed to record lookup in history", "subject", subject, "error", err.Error())
	}

	return loc, nil
}

// Current resolves the requester's own location. It participates in the same
// generation ordering as explicit lookups but never touches history.
func (o *Orchestrator) Current(ctx context.Context) (*geo.Location, error) {
	gen := o.beginGeneration()

	loc, err := o.geo.Current(ctx)
	if !o.isLatest(gen) {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	return loc, nil
}
