package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandlerRegistryDispatchesWindowSize(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 120 || m.height != 40 {
		t.Fatalf("expected window size applied, got %dx%d", m.width, m.height)
	}
}

func TestFixedDimensionsIgnoreWindowSize(t *testing.T) {
	m, _ := newTestModel(t)
	m.width = 80
	m.fixedWidth = true

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 80 {
		t.Fatalf("expected fixed width to win, got %d", m.width)
	}
	if m.height != 40 {
		t.Fatalf("expected height applied, got %d", m.height)
	}
}

type unknownMsg struct{}

func TestHandlerForUnknownMessage(t *testing.T) {
	m, _ := newTestModel(t)
	if handler := m.handlerFor(unknownMsg{}); handler != nil {
		t.Fatalf("expected no handler for unknown message type")
	}
}

func TestSelectedVersionPrefersWatcherSnapshot(t *testing.T) {
	m, store := newTestModel(t, [2]string{"Arrivals", "HELLO"})
	item, _ := m.list.Selected()
	page, _ := store.Get(item.ID)

	delete(m.versions, item.ID)
	if got := m.selectedVersion(item.ID); got != page.Version() {
		t.Fatalf("expected store version fallback, got %q", got)
	}

	m.versions[item.ID] = "snapshot"
	if got := m.selectedVersion(item.ID); got != "snapshot" {
		t.Fatalf("expected watcher snapshot to win, got %q", got)
	}
}
