// Package backend watches the page store for version changes, standing in
// for the content-management layer that supplies last-modified markers.
// The dashboard consumes its events to invalidate previews.
package backend

import (
	"context"
	"sync"
	"time"

	"github.com/flapboard/flapboard/internal/state"
)

// Event carries a fresh id → version marker snapshot. Only snapshots that
// differ from the previous one are emitted.
type Event struct {
	Versions map[string]string
	Err      error
}

// Watcher polls the page store at a fixed interval and publishes version
// snapshots.
type Watcher struct {
	pages    state.PageStore
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that polls pages every interval.
func NewWatcher(pages state.PageStore, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		pages:    pages,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	throttle := newThrottle(interval / 4)
	w.wg.Add(1)
	go w.poll(func(context.Context) map[string]string {
		throttle.wait()
		return w.pages.Versions()
	})

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of version snapshot events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current fetch
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll(fetch func(context.Context) map[string]string) {
	defer w.wg.Done()

	var last map[string]string
	emit := func() bool {
		versions := fetch(w.ctx)
		if versionsEqual(last, versions) {
			return true
		}
		last = versions
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- Event{Versions: versions}:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}

func versionsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for id, version := range a {
		if b[id] != version {
			return false
		}
	}
	return true
}
