// Package debounce collapses bursts of calls into a single trailing
// invocation. Only the most recent call within a quiet window executes,
// exactly once, with that call's value. No leading-edge invocation, no
// queueing of superseded calls.
package debounce

import (
	"sync"
	"time"
)

// Debouncer wraps a callback with last-write-wins deferral.
type Debouncer[T any] struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(T)
	timer   *time.Timer
	pending T
	armed   bool
	gen     uint64 // invalidates timers superseded by a newer Call
}

// New creates a Debouncer that invokes fn with the latest value once
// delay has elapsed without another Call.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Call schedules fn(v) after the quiet window, cancelling any pending
// invocation. A timer that already fired but has not yet run its
// callback is invalidated by the generation bump.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = v
	d.armed = true
	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if !d.armed || gen != d.gen {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.armed = false
	d.timer = nil
	d.mu.Unlock()

	d.fn(v)
}

// Stop cancels any pending invocation without firing it.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.armed = false
	d.gen++
}

// Flush runs a pending invocation immediately instead of waiting out
// the quiet window. No-op when nothing is pending.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if !d.armed {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	v := d.pending
	d.armed = false
	d.gen++
	d.mu.Unlock()

	d.fn(v)
}
