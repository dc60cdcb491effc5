package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flapboard/flapboard/internal/board"
	"github.com/flapboard/flapboard/internal/testutil"
)

func TestViewShowsBoardPreview(t *testing.T) {
	m, _ := newTestModel(t, [2]string{"Arrivals", "HELLO"})
	cmd := m.ensurePreviewForSelection()
	m.handlePreviewLoadedMsg(cmd().(previewLoadedMsg))

	view := testutil.StripANSI(m.View())
	if !strings.Contains(view, "preview · Arrivals") {
		t.Fatalf("expected preview title in view, got:\n%s", view)
	}
	if !strings.Contains(view, "HELLO") {
		t.Fatalf("expected board content in view, got:\n%s", view)
	}
}

func TestViewShowsLoadingState(t *testing.T) {
	m, _ := newTestModel(t, [2]string{"Arrivals", "HELLO"})
	m.ensurePreviewForSelection()

	view := testutil.StripANSI(m.View())
	if !strings.Contains(view, "rendering…") {
		t.Fatalf("expected loading indicator, got:\n%s", view)
	}
}

func TestEditorViewMarksDraft(t *testing.T) {
	m, _ := newTestModel(t, [2]string{"Arrivals", "HELLO"})
	m.handlePagesKey(tea.KeyMsg{Type: tea.KeyEnter})
	m.handleEditKey(keyRunes("X"))

	view := testutil.StripANSI(m.View())
	if !strings.Contains(view, "DRAFT") {
		t.Fatalf("expected draft overlay in dirty editor view, got:\n%s", view)
	}
	if !strings.Contains(view, "unsaved") {
		t.Fatalf("expected unsaved marker in status, got:\n%s", view)
	}
}

func TestRenderBoardFrameGolden(t *testing.T) {
	lines := renderBoard(board.Compose("HELLO"), -1, -1)
	output := testutil.StripANSI(strings.Join(lines, "\n"))
	testutil.AssertGolden(t, "board_hello.golden", output)
}
