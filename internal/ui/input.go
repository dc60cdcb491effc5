package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flapboard/flapboard/internal/editor"
	"github.com/flapboard/flapboard/internal/logging/events"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.mode {
	case ModeEdit:
		return m.handleEditKey(key)
	case ModeTitle:
		return m.handleTitleKey(key)
	default:
		return m.handlePagesKey(key)
	}
}

func (m *Model) handlePagesKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "ctrl+c", "q":
		if key.String() == "q" && m.list.Filter != "" {
			break
		}
		return tea.Quit
	case "esc":
		if m.list.Filter != "" {
			m.list.SetFilter("", 0)
			events.Filter.Cleared()
			return m.ensurePreviewForSelection()
		}
		return tea.Quit
	case "up", "ctrl+p":
		if m.list.MoveCursorUp() {
			return m.ensurePreviewForSelection()
		}
		return nil
	case "down", "ctrl+n":
		if m.list.MoveCursorDown() {
			return m.ensurePreviewForSelection()
		}
		return nil
	case "home":
		if m.list.MoveCursorHome() {
			return m.ensurePreviewForSelection()
		}
		return nil
	case "end":
		if m.list.MoveCursorEnd() {
			return m.ensurePreviewForSelection()
		}
		return nil
	case "enter":
		return m.openSelectedPage()
	case "ctrl+t":
		m.mode = ModeTitle
		m.titleInput.SetValue("")
		return m.titleInput.Focus()
	case "ctrl+d":
		return m.deleteSelectedPage()
	case "ctrl+u":
		if m.list.Filter == "" {
			return nil
		}
		m.list.SetFilter("", 0)
		events.Filter.Cleared()
		return m.ensurePreviewForSelection()
	case "backspace":
		if m.list.DeleteFilterRuneBackward() {
			events.Filter.Changed(m.list.Filter)
			return m.ensurePreviewForSelection()
		}
		return nil
	}
	if key.Type == tea.KeyRunes && !key.Alt {
		if m.list.InsertFilterText(string(key.Runes)) {
			events.Filter.Changed(m.list.Filter)
			return m.ensurePreviewForSelection()
		}
	}
	return nil
}

func (m *Model) handleTitleKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		m.mode = ModePages
		m.titleInput.Blur()
		return nil
	case "enter":
		title := m.titleInput.Value()
		m.titleInput.Blur()
		page := m.pages.Create(title, "")
		events.UI.PageCreate(page.ID, page.Title)
		m.versions[page.ID] = page.Version()
		m.list.UpdateItems(pageItems(m.pages.Entries()))
		if idx := m.list.IndexOf(page.ID); idx >= 0 {
			m.list.Cursor = idx
		}
		return m.openSelectedPage()
	}
	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(key)
	return cmd
}

func (m *Model) handleEditKey(key tea.KeyMsg) tea.Cmd {
	if key.Paste && key.Type == tea.KeyRunes {
		if m.doc.Paste(string(key.Runes)) {
			m.dirty = true
			events.Editor.Normalized(m.doc.LineCount())
		}
		return nil
	}
	switch key.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.closeEditor()
	case "ctrl+s":
		return m.saveEditedPage()
	case "enter":
		caret := m.doc.Caret()
		accepted := m.doc.BreakLine()
		events.Editor.Break(caret.Line, caret.Col, accepted)
		if accepted {
			m.dirty = true
		}
		return nil
	case "alt+enter":
		caret := m.doc.Caret()
		m.doc.SoftBreak()
		events.Editor.SoftBreakRejected(caret.Line, caret.Col)
		return nil
	case "backspace":
		if m.doc.DeleteBackward() {
			m.dirty = true
		}
		return nil
	case "left":
		m.doc.MoveLeft()
		return nil
	case "right":
		m.doc.MoveRight()
		return nil
	case "up":
		m.doc.MoveUp()
		return nil
	case "down":
		m.doc.MoveDown()
		return nil
	case "home", "ctrl+a":
		m.doc.MoveHome()
		return nil
	case "end", "ctrl+e":
		m.doc.MoveEnd()
		return nil
	case "alt+a":
		m.cycleAlignment()
		return nil
	case "alt+w":
		if m.doc.ToggleWrap() {
			m.dirty = true
		}
		return nil
	}
	if key.Type == tea.KeyRunes && !key.Alt {
		if m.doc.InsertText(string(key.Runes)) {
			m.dirty = true
		}
	}
	return nil
}

func (m *Model) cycleAlignment() {
	current := m.doc.LineAt(m.doc.Caret().Line).Align
	next := editor.AlignLeft
	switch current {
	case editor.AlignLeft:
		next = editor.AlignCenter
	case editor.AlignCenter:
		next = editor.AlignRight
	}
	if m.doc.SetAlign(next) {
		m.dirty = true
	}
}

func (m *Model) openSelectedPage() tea.Cmd {
	item, ok := m.list.Selected()
	if !ok {
		return nil
	}
	page, ok := m.pages.Get(item.ID)
	if !ok {
		m.errMsg = "page vanished"
		return nil
	}
	events.UI.PageSelect(page.ID, page.Title)
	m.doc = editor.FromMarkup(page.Markup)
	m.editingID = page.ID
	m.dirty = false
	m.mode = ModeEdit
	return nil
}

func (m *Model) closeEditor() tea.Cmd {
	if m.dirty {
		m.setInfo("discarded unsaved changes")
	}
	m.mode = ModePages
	m.doc = nil
	m.editingID = ""
	m.dirty = false
	return m.ensurePreviewForSelection()
}

func (m *Model) saveEditedPage() tea.Cmd {
	if m.doc == nil || m.editingID == "" {
		return nil
	}
	page, ok := m.pages.Get(m.editingID)
	if !ok {
		m.errMsg = "page vanished"
		return nil
	}
	updated, ok := m.pages.Update(page.ID, page.Title, m.doc.Markup())
	if !ok {
		m.errMsg = "save failed"
		return nil
	}
	events.UI.PageSave(updated.ID, updated.Version())
	m.versions[updated.ID] = updated.Version()
	m.dirty = false
	if m.verbose {
		m.setInfo("saved " + displayTitle(updated.Title))
	}
	return m.warmPreviews()
}

func displayTitle(title string) string {
	if title == "" {
		return "(untitled)"
	}
	return title
}

func (m *Model) deleteSelectedPage() tea.Cmd {
	item, ok := m.list.Selected()
	if !ok {
		return nil
	}
	if !m.pages.Delete(item.ID) {
		return nil
	}
	events.UI.PageDelete(item.ID)
	delete(m.versions, item.ID)
	delete(m.preview, item.ID)
	if err := m.cache.Delete(item.ID); err != nil {
		m.errMsg = err.Error()
	}
	m.list.UpdateItems(pageItems(m.pages.Entries()))
	return m.ensurePreviewForSelection()
}
