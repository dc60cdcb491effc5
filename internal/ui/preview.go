package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flapboard/flapboard/internal/board"
	"github.com/flapboard/flapboard/internal/preview"
)

// previewData is the per-page preview slot shown in the right-hand panel.
type previewData struct {
	target  string
	version string
	result  string
	err     string
	loading bool
	seq     int
}

type previewLoadedMsg struct {
	target  string
	version string
	seq     int
	item    preview.Item
}

type previewsWarmedMsg struct {
	seq    int
	result preview.BatchResult
}

// renderPage is the render boundary: it composes the page's markup into
// the fixed grid and returns the serialized frame. It stands in for the
// remote renderer the physical board would use.
func (m *Model) renderPage(ctx context.Context, id, version string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	page, ok := m.pages.Get(id)
	if !ok {
		return "", fmt.Errorf("page %s not found", id)
	}
	return board.Compose(page.Markup).Markup(), nil
}

// ensurePreviewForSelection kicks off an async render for the selected
// page unless a fresh preview is already present or loading. Responses
// are matched by sequence number so a stale load can never clobber a
// newer request.
func (m *Model) ensurePreviewForSelection() tea.Cmd {
	if m.mode != ModePages {
		return nil
	}
	item, ok := m.list.Selected()
	if !ok {
		return nil
	}
	version := m.selectedVersion(item.ID)
	if existing, ok := m.preview[item.ID]; ok && existing.version == version && !existing.loading {
		return nil
	}
	m.previewSeq++
	seq := m.previewSeq
	m.preview[item.ID] = &previewData{
		target:  item.ID,
		version: version,
		loading: true,
		seq:     seq,
	}
	cache := m.cache
	render := m.renderFn
	target := item.ID
	return func() tea.Msg {
		result := preview.Fill(context.Background(), cache, []preview.Request{{ID: target, Version: version}}, render)
		return previewLoadedMsg{
			target:  target,
			version: version,
			seq:     seq,
			item:    result.Items[target],
		}
	}
}

func (m *Model) handlePreviewLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(previewLoadedMsg)
	if !ok {
		return nil
	}
	data, ok := m.preview[update.target]
	if !ok {
		return nil
	}
	if data.seq != update.seq || data.version != update.version {
		return nil
	}
	data.loading = false
	if update.item.Available {
		data.result = update.item.Result
		data.err = ""
	} else {
		data.result = ""
		data.err = update.item.Reason
	}
	return nil
}

// warmPreviews fills the cache for every page in one batch so switching
// pages is instant. Partial failures are tolerated; the footer reports
// successful/total.
func (m *Model) warmPreviews() tea.Cmd {
	entries := m.pages.Entries()
	if len(entries) == 0 {
		return nil
	}
	requests := make([]preview.Request, len(entries))
	for i, page := range entries {
		requests[i] = preview.Request{ID: page.ID, Version: m.selectedVersion(page.ID)}
	}
	m.warmSeq++
	seq := m.warmSeq
	cache := m.cache
	render := m.renderFn
	return func() tea.Msg {
		result := preview.Fill(context.Background(), cache, requests, render)
		return previewsWarmedMsg{seq: seq, result: result}
	}
}

func (m *Model) handlePreviewsWarmedMsg(msg tea.Msg) tea.Cmd {
	warmed, ok := msg.(previewsWarmedMsg)
	if !ok {
		return nil
	}
	if warmed.seq != m.warmSeq {
		return nil
	}
	m.warmTotal = warmed.result.Total
	m.warmOK = warmed.result.Successful
	return nil
}
