package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flapboard/flapboard/internal/backend"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent folds a fresh version snapshot into the model: the
// page list is refreshed and any preview rendered against an outdated
// version is dropped so the next look re-renders it.
func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	if evt.Err != nil {
		m.errMsg = evt.Err.Error()
		return nil
	}
	m.versions = evt.Versions
	m.list.UpdateItems(pageItems(m.pages.Entries()))
	for id, data := range m.preview {
		current, known := m.versions[id]
		if !known || data.version != current {
			delete(m.preview, id)
		}
	}
	return tea.Batch(m.warmPreviews(), m.ensurePreviewForSelection())
}
