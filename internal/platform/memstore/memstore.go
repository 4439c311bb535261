// Package memstore provides the shared substrate for the in-memory entity
// repositories: the error taxonomy, simulated network latency, and the
// injectable id/clock sources. Every repository in internal/domain is built
// on these so that tests can run with zero latency and deterministic ids.
package memstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when no record matches the given id.
var ErrNotFound = errors.New("record not found")

// ErrInvalidTransition is returned by repositories when a status change is
// not allowed by the entity's transition table.
var ErrInvalidTransition = errors.New("invalid status transition")

// IDFunc produces a new record identifier.
type IDFunc func() string

// Clock returns the current time.
type Clock func() time.Time

// Latency simulates a network round trip before each repository operation.
// The zero value waits for no time at all.
type Latency struct {
	D time.Duration
}

// Wait blocks for the configured duration or until ctx is cancelled,
// whichever comes first.
func (l Latency) Wait(ctx context.Context) error {
	if l.D <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(l.D)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Options configures an in-memory repository. Zero-value fields fall back to
// the production defaults via Defaults.
type Options struct {
	Latency time.Duration
	NewID   IDFunc
	Now     Clock
}

// Defaults fills unset fields: uuid identifiers and the wall clock.
func (o Options) Defaults() Options {
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// DateOnly formats t the way the API stamps appointment, bill and
// prescription dates.
func DateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}
