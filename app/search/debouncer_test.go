package search

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDelay = 20 * time.Millisecond

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "results channel closed")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for result")
	}
	var zero T
	return zero
}

func assertNoResult[T any](t *testing.T, ch <-chan T, wait time.Duration) {
	t.Helper()
	select {
	case v, ok := <-ch:
		if ok {
			t.Fatalf("unexpected result %v", v)
		}
	case <-time.After(wait):
	}
}

func TestDebouncerSettlesAfterDelay(t *testing.T) {
	d := NewDebouncer(testDelay, func(_ context.Context, in string) int { return len(in) })
	defer d.Close()

	assert.Equal(t, StateSettled, d.State())
	_, ok := d.Latest()
	assert.False(t, ok)

	d.Submit("hello")
	assert.Equal(t, StatePending, d.State())

	assert.Equal(t, 5, receive(t, d.Results()))
	assert.Equal(t, StateSettled, d.State())

	latest, ok := d.Latest()
	assert.True(t, ok)
	assert.Equal(t, 5, latest)
}

func TestDebouncerLastWriterWins(t *testing.T) {
	var calls atomic.Int32
	var mu sync.Mutex
	var seen []string

	d := NewDebouncer(50*time.Millisecond, func(_ context.Context, in string) string {
		calls.Add(1)
		mu.Lock()
		seen = append(seen, in)
		mu.Unlock()
		return in
	})
	defer d.Close()

	for _, in := range []string{"r", "re", "rea", "reac", "react"} {
		d.Submit(in)
	}

	assert.Equal(t, "react", receive(t, d.Results()))
	assertNoResult(t, d.Results(), 100*time.Millisecond)

	assert.Equal(t, int32(1), calls.Load())
	mu.Lock()
	assert.Equal(t, []string{"react"}, seen)
	mu.Unlock()
}

func TestDebouncerDiscardsSupersededComputation(t *testing.T) {
	started := make(chan struct{})

	d := NewDebouncer(testDelay, func(ctx context.Context, in string) string {
		if in == "slow" {
			close(started)
			<-ctx.Done()
		}
		return in
	})
	defer d.Close()

	d.Submit("slow")
	<-started

	// "slow" is mid-computation; the newer input must win.
	d.Submit("fast")
	assert.Equal(t, StatePending, d.State())

	assert.Equal(t, "fast", receive(t, d.Results()))
	assertNoResult(t, d.Results(), 50*time.Millisecond)
}

func TestDebouncerKeepsOnlyNewestUnreadResult(t *testing.T) {
	d := NewDebouncer(time.Millisecond, func(_ context.Context, in int) int { return in })
	defer d.Close()

	d.Submit(1)
	require.Eventually(t, func() bool {
		v, ok := d.Latest()
		return ok && v == 1
	}, time.Second, time.Millisecond)

	d.Submit(2)
	require.Eventually(t, func() bool {
		v, ok := d.Latest()
		return ok && v == 2
	}, time.Second, time.Millisecond)

	assert.Equal(t, 2, receive(t, d.Results()))
	assertNoResult(t, d.Results(), 20*time.Millisecond)
}

func TestDebouncerClose(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(testDelay, func(_ context.Context, in string) string {
		calls.Add(1)
		return in
	})

	d.Submit("pending")
	d.Close()
	d.Close()

	assert.Equal(t, StateSettled, d.State())
	_, ok := <-d.Results()
	assert.False(t, ok)

	d.Submit("after close")
	time.Sleep(3 * testDelay)
	assert.Equal(t, int32(0), calls.Load())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "settled", StateSettled.String())
}
