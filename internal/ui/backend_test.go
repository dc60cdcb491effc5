package ui

import (
	"errors"
	"testing"

	"github.com/flapboard/flapboard/internal/backend"
)

func TestApplyBackendEventEvictsStalePreviews(t *testing.T) {
	m, store := newTestModel(t, [2]string{"Arrivals", "HELLO"})
	item, _ := m.list.Selected()
	page, _ := store.Get(item.ID)
	m.preview[item.ID] = &previewData{target: item.ID, version: "old", result: "FRAME"}

	m.applyBackendEvent(backend.Event{Versions: map[string]string{item.ID: page.Version()}})

	if _, ok := m.preview[item.ID]; ok {
		t.Fatalf("expected stale preview evicted")
	}
	if m.versions[item.ID] != page.Version() {
		t.Fatalf("expected version snapshot replaced")
	}
}

func TestApplyBackendEventKeepsCurrentPreviews(t *testing.T) {
	m, store := newTestModel(t, [2]string{"Arrivals", "HELLO"})
	item, _ := m.list.Selected()
	page, _ := store.Get(item.ID)
	m.preview[item.ID] = &previewData{target: item.ID, version: page.Version(), result: "FRAME"}

	m.applyBackendEvent(backend.Event{Versions: map[string]string{item.ID: page.Version()}})

	if _, ok := m.preview[item.ID]; !ok {
		t.Fatalf("expected current preview kept")
	}
}

func TestApplyBackendEventSurfacesWatcherError(t *testing.T) {
	m, _ := newTestModel(t, [2]string{"Arrivals", "HELLO"})

	m.applyBackendEvent(backend.Event{Err: errors.New("poll failed")})

	if m.errMsg != "poll failed" {
		t.Fatalf("expected watcher error surfaced, got %q", m.errMsg)
	}
}
