package lookup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jcruzdev/ipnavigator/internal/client/geo"
	"github.com/jcruzdev/ipnavigator/internal/client/history"
	"github.com/jcruzdev/ipnavigator/internal/common"
	"github.com/jcruzdev/ipnavigator/internal/logging"
)

type memRepo struct {
	data map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{data: map[string][]byte{}} }

func (r *memRepo) Get(ctx context.Context, key string) ([]byte, error) { return r.data[key], nil }
func (r *memRepo) Set(ctx context.Context, key string, value []byte) error {
	r.data[key] = value
	return nil
}
func (r *memRepo) Delete(ctx context.Context, key string) error {
	delete(r.data, key)
	return nil
}
func (r *memRepo) Clear(ctx context.Context) error {
	r.data = map[string][]byte{}
	return nil
}

type fakeGeo struct {
	calls    int
	err      error
	onLookup func()
}

func (f *fakeGeo) Current(ctx context.Context) (*geo.Location, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &geo.Location{IP: "203.0.113.7", Loc: "0,0"}, nil
}

func (f *fakeGeo) Lookup(ctx context.Context, ip string) (*geo.Location, error) {
	f.calls++
	if f.onLookup != nil {
		hook := f.onLookup
		f.onLookup = nil
		hook()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &geo.Location{IP: ip, City: "Mountain View", Country: "US", Loc: "37.4,-122.07"}, nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newOrchestrator(t *testing.T, g geo.Client) (*Orchestrator, *history.Store) {
	t.Helper()
	h := history.NewStore(context.Background(), newMemRepo(), testLogger())
	return NewOrchestrator(g, h, testLogger()), h
}

func TestValidIP(t *testing.T) {
	valid := []string{"8.8.8.8", "1.1.1.1", "192.168.0.1", "999.999.999.999", "0.0.0.0"}
	for _, s := range valid {
		require.True(t, ValidIP(s), "%s", s)
	}

	invalid := []string{"", "8.8.8", "8.8.8.8.8", "a.b.c.d", "1234.1.1.1", "8.8.8.8 ", "8..8.8", "8.8.8.-1"}
	for _, s := range invalid {
		require.False(t, ValidIP(s), "%s", s)
	}
}

func TestLookup_InvalidSubject_NoCallNoHistory(t *testing.T) {
	g := &fakeGeo{}
	o, h := newOrchestrator(t, g)

	_, err := o.Lookup(context.Background(), "999.999.999.999.1")
	require.True(t, errors.Is(err, common.ErrValidation))
	require.Zero(t, g.calls, "no network call on validation failure")
	require.Empty(t, h.List())
}

func TestLookup_LooseOctetsAreAccepted(t *testing.T) {
	g := &fakeGeo{}
	o, h := newOrchestrator(t, g)

	// Digit grouping only: out-of-range octets still go through.
	loc, err := o.Lookup(context.Background(), "999.999.999.999")
	require.NoError(t, err)
	require.Equal(t, "999.999.999.999", loc.IP)
	require.Equal(t, []string{"999.999.999.999"}, h.List())
}

func TestLookup_SuccessRecordsHistory(t *testing.T) {
	g := &fakeGeo{}
	o, h := newOrchestrator(t, g)

	loc, err := o.Lookup(context.Background(), "8.8.8.8")
	require.NoError(t, err)
	require.Equal(t, "8.8.8.8", loc.IP)
	require.Equal(t, []string{"8.8.8.8"}, h.List())
}

func TestLookup_RepeatLookupKeepsSingleEntry(t *testing.T) {
	g := &fakeGeo{}
	o, h := newOrchestrator(t, g)
	ctx := context.Background()

	_, err := o.Lookup(ctx, "8.8.8.8")
	require.NoError(t, err)
	_, err = o.Lookup(ctx, "8.8.8.8")
	require.NoError(t, err)

	require.Equal(t, []string{"8.8.8.8"}, h.List())
	require.Equal(t, 1, h.Len())
}

func TestLookup_ProviderFailureLeavesHistoryUnchanged(t *testing.T) {
	g := &fakeGeo{err: common.ErrUnavailable}
	o, h := newOrchestrator(t, g)

	_, err := o.Lookup(context.Background(), "8.8.8.8")
	require.True(t, errors.Is(err, common.ErrUnavailable))
	require.Empty(t, h.List())
}

func TestLookup_SupersededResponseIsDropped(t *testing.T) {
	g := &fakeGeo{}
	o, h := newOrchestrator(t, g)
	ctx := context.Background()

	// While the first lookup is in flight, a newer one completes.
	g.onLookup = func() {
		_, err := o.Lookup(ctx, "1.1.1.1")
		require.NoError(t, err)
	}

	_, err := o.Lookup(ctx, "8.8.8.8")
	require.True(t, errors.Is(err, ErrSuperseded))

	// Only the newer lookup reaches history; the superseded one is dropped
	// before its Add.
	require.Equal(t, []string{"1.1.1.1"}, h.List())
}

func TestCurrent(t *testing.T) {
	g := &fakeGeo{}
	o, h := newOrchestrator(t, g)

	loc, err := o.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, "203.0.113.7", loc.IP)
	require.Empty(t, h.List(), "current location is not history")
}

func TestNotices_AutoDismiss(t *testing.T) {
	n := NewNotices()
	base := time.Now()
	now := base
	n.now = func() time.Time { return now }

	n.Show("Invalid IP address")
	require.Equal(t, "Invalid IP address", n.Current())

	now = base.Add(NoticeTTL - time.Millisecond)
	require.Equal(t, "Invalid IP address", n.Current())

	now = base.Add(NoticeTTL + time.Millisecond)
	require.Empty(t, n.Current())
}

func TestNotices_Replace(t *testing.T) {
	n := NewNotices()
	n.Show("first")
	n.Show("second")
	require.Equal(t, "second", n.Current())
}
