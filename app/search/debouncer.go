// Package search runs project filtering as a cancelable deferred computation:
// every input change marks the search pending, and only the result for the
// most recent input is ever published.
package search

import (
	"context"
	"sync"
	"time"
)

// State is the lifecycle of a deferred computation.
type State int

const (
	StateSettled State = iota
	StatePending
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	default:
		return "settled"
	}
}

// Debouncer delays compute by a fixed interval after each Submit. A Submit
// cancels whatever computation is still outstanding, so results are applied
// last-writer-wins and never out of order.
type Debouncer[In, Out any] struct {
	delay   time.Duration
	compute func(context.Context, In) Out

	mu        sync.Mutex
	gen       uint64
	timer     *time.Timer
	cancel    context.CancelFunc
	state     State
	latest    Out
	hasLatest bool
	closed    bool
	results   chan Out
}

// NewDebouncer returns a Debouncer that runs compute delay after the latest
// Submit.
func NewDebouncer[In, Out any](delay time.Duration, compute func(context.Context, In) Out) *Debouncer[In, Out] {
	return &Debouncer[In, Out]{
		delay:   delay,
		compute: compute,
		results: make(chan Out, 1),
	}
}

// Submit marks the debouncer pending and schedules compute(in), abandoning
// any earlier input that has not been published yet.
func (d *Debouncer[In, Out]) Submit(in In) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.abandonLocked()

	d.gen++
	gen := d.gen
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.state = StatePending
	d.timer = time.AfterFunc(d.delay, func() { d.run(ctx, gen, in) })
}

func (d *Debouncer[In, Out]) run(ctx context.Context, gen uint64, in In) {
	if ctx.Err() != nil {
		return
	}
	out := d.compute(ctx, in)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || gen != d.gen || ctx.Err() != nil {
		return
	}
	d.cancel()
	d.cancel = nil
	d.timer = nil
	d.state = StateSettled
	d.latest = out
	d.hasLatest = true

	// Sends only happen under mu, so after draining there is room.
	select {
	case <-d.results:
	default:
	}
	d.results <- out
}

func (d *Debouncer[In, Out]) abandonLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// Results delivers settled outputs. An unread output is replaced by a newer
// one. The channel is closed by Close.
func (d *Debouncer[In, Out]) Results() <-chan Out {
	return d.results
}

// State reports whether a computation is outstanding.
func (d *Debouncer[In, Out]) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Latest returns the most recently published output.
func (d *Debouncer[In, Out]) Latest() (Out, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.latest, d.hasLatest
}

// Close abandons any outstanding computation and closes Results.
func (d *Debouncer[In, Out]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true
	d.abandonLocked()
	d.state = StateSettled
	close(d.results)
}
