// Package debounce schedules work after a quiet period. Every new trigger
// cancels the previous one, including a task that has already started, so a
// caller that checks its context before publishing never exposes a stale
// result.
package debounce

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrStopped is returned by Trigger after Stop.
var ErrStopped = errors.New("debouncer stopped")

// Task is the unit of debounced work. ctx is cancelled as soon as a newer
// trigger arrives or the debouncer is stopped.
type Task func(ctx context.Context)

// Debouncer runs only the most recently triggered task, delay after the
// trigger. Safe for concurrent use.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending Task
	cancel  context.CancelFunc
	gen     uint64
	stopped bool
}

// New creates a debouncer with the given quiet period. A non-positive delay
// runs each task on its own goroutine right away, still cancelling the
// previous one.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Delay returns the configured quiet period.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger cancels any pending or running task and schedules fn.
func (d *Debouncer) Trigger(fn Task) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return ErrStopped
	}
	d.cancelLocked()

	d.gen++
	gen := d.gen
	d.pending = fn
	d.timer = time.AfterFunc(max(d.delay, 0), func() { d.fire(gen) })
	return nil
}

// Flush runs the pending task immediately on the calling goroutine. It
// returns false when nothing was pending.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	if d.pending == nil || d.timer == nil {
		d.mu.Unlock()
		return false
	}
	d.timer.Stop()
	d.timer = nil
	fn, ctx := d.startLocked()
	d.mu.Unlock()

	fn(ctx)
	return true
}

// Stop cancels everything and makes later triggers fail with ErrStopped.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
	d.stopped = true
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	// A newer trigger or a flush got here first.
	if gen != d.gen || d.pending == nil || d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	fn, ctx := d.startLocked()
	d.mu.Unlock()

	fn(ctx)
}

// startLocked hands out the pending task with a fresh cancellable context.
func (d *Debouncer) startLocked() (Task, context.Context) {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	fn := d.pending
	d.pending = nil
	return fn, ctx
}

func (d *Debouncer) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.pending = nil
}
