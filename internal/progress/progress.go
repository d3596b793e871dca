// Package progress implements the progress/cancel adapter shared by the
// NBT decoder and encoder: a throttled percent-complete callback plus a
// context.Context-based cooperative cancellation check.
//
// context.Context is the idiom this codebase uses for cooperative
// cancellation throughout long-running calls, and it composes with
// deadlines for free.
package progress

import (
	"context"
	"time"

	"github.com/anvilfile/nbtkit/nbterr"
)

// Func reports progress on the calling goroutine. klass is an opaque
// caller-defined label (e.g. "decode", "encode", "mca-write"); percent is
// in [0,100]; message is a short human-readable phase description.
type Func func(klass string, percent int, message string)

// Tracker gates calls to a Func so it fires only when the wall-clock time
// elapsed since the Tracker was created, in whole milliseconds, is an
// exact multiple of 500. Every call landing on such a millisecond fires
// (including all calls within the first millisecond); calls in between
// are dropped. A nil Tracker, or one built with a nil Func, is a valid
// no-op.
type Tracker struct {
	fn    Func
	klass string
	now   func() time.Time
	start time.Time
}

// NewTracker returns a Tracker that reports under klass via fn. fn may be
// nil, in which case Maybe is a no-op.
func NewTracker(fn Func, klass string) *Tracker {
	return newTracker(fn, klass, time.Now)
}

func newTracker(fn Func, klass string, now func() time.Time) *Tracker {
	return &Tracker{fn: fn, klass: klass, now: now, start: now()}
}

// Maybe reports percent/message through the underlying Func if the gate's
// wall-clock throttle currently admits an emission.
func (t *Tracker) Maybe(percent int, message string) {
	if t == nil || t.fn == nil {
		return
	}
	elapsed := t.now().Sub(t.start).Milliseconds()
	if elapsed%500 != 0 {
		return
	}
	t.fn(t.klass, percent, message)
}

// Percent maps done out of total onto the [min,max] range, clamped.
func Percent(min, max, done, total int) int {
	if total <= 0 {
		return min
	}
	p := min + done*(max-min)/total
	if p < min {
		p = min
	}
	if p > max {
		p = max
	}
	return p
}

// CheckContext reports nbterr.ErrCancelled (wrapping ctx.Err()) if ctx has
// been cancelled or its deadline has passed. A nil context is treated as
// never cancelled, since cancellation support is optional for callers
// that don't need it.
func CheckContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return nbterr.New(nbterr.KindCancelled, "nbt: operation cancelled", err)
	}
	return nil
}
