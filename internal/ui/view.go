package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/flapboard/flapboard/internal/board"
	"github.com/flapboard/flapboard/internal/markup"
	"github.com/flapboard/flapboard/internal/theme"
)

const (
	pageColumnWidth = 28
	listMaxVisible  = 12
)

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case ModeTitle:
		return m.viewTitlePrompt()
	case ModeEdit:
		return m.viewEditor()
	default:
		return m.viewPages()
	}
}

func (m *Model) viewPages() string {
	left := m.renderPageColumn()
	right := m.renderPreviewPanel()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	sections := []string{m.renderHeader(), body}
	if status := m.renderStatusLine(); status != "" {
		sections = append(sections, status)
	}
	if m.showFooter {
		sections = append(sections, styles.Footer.Render("enter edit · ctrl+t new · ctrl+d delete · esc quit"))
	}
	return m.clampFrame(strings.Join(sections, "\n"))
}

// clampFrame trims the rendered frame to the viewport when dimensions are
// known, so a fixed --width/--height never overflows the terminal.
func (m *Model) clampFrame(frame string) string {
	if m.width <= 0 && m.height <= 0 {
		return frame
	}
	lines := strings.Split(frame, "\n")
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	if m.width > 0 {
		for i, line := range lines {
			lines[i] = truncate.String(line, uint(m.width))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewTitlePrompt() string {
	lines := []string{
		m.renderHeader(),
		"",
		styles.FilterPrompt.Render("new page title:"),
		m.titleInput.View(),
		"",
		styles.Footer.Render("enter create · esc cancel"),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewEditor() string {
	title := "(untitled)"
	if page, ok := m.pages.Get(m.editingID); ok && page.Title != "" {
		title = page.Title
	}
	header := styles.Header.Render("editing " + title)
	grid := composeDocument(m.doc, m.dirty)
	caretRow, caretCol := caretCell(m.doc)
	boardLines := renderBoard(grid, caretRow, caretCol)

	caret := m.doc.Caret()
	line := m.doc.LineAt(caret.Line)
	status := fmt.Sprintf("line %d/%d  col %d  align %s", caret.Line+1, m.doc.LineCount(), caret.Col+1, line.Align)
	if line.Wrap {
		status += "  wrap"
	}
	if caret.Col >= board.Columns {
		status += styles.Error.Render("  beyond display width")
	}
	if m.dirty {
		status += styles.StatusWord.Render("  unsaved")
	}

	sections := []string{header, ""}
	sections = append(sections, boardLines...)
	sections = append(sections, "", styles.Info.Render(status))
	if msg := m.renderStatusLine(); msg != "" {
		sections = append(sections, msg)
	}
	if m.showFooter {
		sections = append(sections, styles.Footer.Render("enter break · alt+a align · alt+w wrap · ctrl+s save · esc back"))
	}
	return m.clampFrame(strings.Join(sections, "\n"))
}

func (m *Model) renderHeader() string {
	count := len(m.pages.Entries())
	label := fmt.Sprintf("flapboard · %d page", count)
	if count != 1 {
		label += "s"
	}
	return styles.Header.Render(label)
}

func (m *Model) renderPageColumn() string {
	lines := []string{m.renderFilterLine()}
	m.list.EnsureCursorVisible(listMaxVisible)
	items := m.list.Items
	from := m.list.ViewportOffset
	to := from + listMaxVisible
	if to > len(items) {
		to = len(items)
	}
	if len(items) == 0 {
		lines = append(lines, styles.Info.Render("(no pages)"))
	}
	for i := from; i < to; i++ {
		label := truncate.StringWithTail(items[i].Label, pageColumnWidth-2, "…")
		if i == m.list.Cursor {
			lines = append(lines, styles.SelectedItem.Render("> "+label))
		} else {
			lines = append(lines, styles.Item.Render("  "+label))
		}
	}
	return lipgloss.NewStyle().Width(pageColumnWidth).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFilterLine() string {
	prompt := styles.FilterPrompt.Render("filter ")
	if m.list.Filter == "" {
		return prompt + m.filterCursor.View()
	}
	runes := []rune(m.list.Filter)
	pos := m.list.FilterCursorPos()
	before := styles.Filter.Render(string(runes[:pos]))
	after := styles.Filter.Render(string(runes[pos:]))
	return prompt + before + m.filterCursor.View() + after
}

func (m *Model) renderPreviewPanel() string {
	item, ok := m.list.Selected()
	if !ok {
		return styles.Info.Render("select a page to preview")
	}
	data := m.preview[item.ID]
	title := styles.PreviewTitle.Render("preview · " + item.Label)
	switch {
	case data == nil || data.loading:
		return title + "\n" + styles.Loading.Render("rendering…")
	case data.err != "":
		return title + "\n" + styles.PreviewError.Render("unavailable: "+data.err)
	default:
		lines := renderBoard(board.Compose(data.result), -1, -1)
		return title + "\n" + strings.Join(lines, "\n")
	}
}

func (m *Model) renderStatusLine() string {
	parts := []string{}
	if m.errMsg != "" {
		parts = append(parts, styles.Error.Render(m.errMsg))
	}
	if info := m.currentInfo(); info != "" {
		parts = append(parts, styles.Info.Render(info))
	}
	if m.warmTotal > 0 {
		parts = append(parts, styles.Info.Render(fmt.Sprintf("previews %d/%d", m.warmOK, m.warmTotal)))
	}
	return strings.Join(parts, "  ")
}

// renderBoard paints a grid as framed terminal rows. caretRow/caretCol of
// -1 disables caret highlighting.
func renderBoard(g board.Grid, caretRow, caretCol int) []string {
	frame := styles.BoardFrame
	top := frame.Render("┌" + strings.Repeat("─", board.Columns) + "┐")
	bottom := frame.Render("└" + strings.Repeat("─", board.Columns) + "┘")
	lines := make([]string, 0, board.Rows+2)
	lines = append(lines, top)
	for r := 0; r < board.Rows; r++ {
		var b strings.Builder
		b.WriteString(frame.Render("│"))
		for c := 0; c < board.Columns; c++ {
			b.WriteString(renderCell(g[r][c], r == caretRow && c == caretCol))
		}
		b.WriteString(frame.Render("│"))
		lines = append(lines, b.String())
	}
	lines = append(lines, bottom)
	return lines
}

func renderCell(tok markup.Token, caret bool) string {
	if caret {
		if tok.Kind == markup.KindCharacter {
			return styles.BoardCaret.Render(string(tok.Rune))
		}
		return styles.BoardCaret.Render("▒")
	}
	if tok.Kind == markup.KindColor {
		return theme.Tile(tok.Color).Render(" ")
	}
	return styles.BoardCell.Render(string(tok.Rune))
}
