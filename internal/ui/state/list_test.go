package state

import "testing"

func newTestList(labels ...string) *List {
	items := make([]Item, len(labels))
	for i, label := range labels {
		items[i] = Item{ID: label, Label: label}
	}
	return NewList(items)
}

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	list := newTestList("one", "two", "three")
	list.Cursor = 2
	list.SetFilter("two", len("two"))

	if list.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", list.Filter)
	}
	if list.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", list.Cursor)
	}
	if len(list.Items) != 1 || list.Items[0].ID != "two" {
		t.Fatalf("expected filtered items to contain only 'two', got %#v", list.Items)
	}

	list.SetFilter("", 0)
	if list.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", list.Cursor)
	}
	if list.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", list.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	list := newTestList("alpha")

	if !list.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if list.Filter != "ab" || list.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", list.Filter, list.FilterCursor)
	}

	list.FilterCursor = 1
	if !list.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if list.Filter != "azb" {
		t.Fatalf("expected insert into middle, got %q", list.Filter)
	}

	if !list.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if list.Filter != "ab" || list.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", list.Filter, list.FilterCursor)
	}

	list.SetFilter("abc", 0)
	if list.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
}

func TestUpdateItemsPreservesSelection(t *testing.T) {
	list := newTestList("one", "two", "three")
	list.Cursor = 1
	list.UpdateItems([]Item{{ID: "zero", Label: "zero"}, {ID: "two", Label: "two"}})
	if item, ok := list.Selected(); !ok || item.ID != "two" {
		t.Fatalf("expected selection preserved, got %#v/%v", item, ok)
	}
}

func TestCursorMovementClamps(t *testing.T) {
	list := newTestList("a", "b", "c")
	list.Cursor = 0
	if list.MoveCursorUp() {
		t.Fatal("expected no movement above the first item")
	}
	if !list.MoveCursorDown() || list.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", list.Cursor)
	}
	if !list.MoveCursorEnd() || list.Cursor != 2 {
		t.Fatalf("expected cursor at end, got %d", list.Cursor)
	}
	if list.MoveCursorDown() {
		t.Fatal("expected no movement past the last item")
	}
	if !list.MoveCursorHome() || list.Cursor != 0 {
		t.Fatalf("expected cursor home, got %d", list.Cursor)
	}
}

func TestEnsureCursorVisible(t *testing.T) {
	list := newTestList("a", "b", "c", "d", "e")
	list.Cursor = 4
	list.EnsureCursorVisible(2)
	if list.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", list.ViewportOffset)
	}
	list.Cursor = 0
	list.EnsureCursorVisible(2)
	if list.ViewportOffset != 0 {
		t.Fatalf("expected offset 0, got %d", list.ViewportOffset)
	}
}

func TestFilterFallsBackToSubstringMatch(t *testing.T) {
	list := newTestList("Main Departures", "Lobby Welcome", "Dock Status")
	list.SetFilter("lobby", len("lobby"))
	if len(list.Items) != 1 || list.Items[0].Label != "Lobby Welcome" {
		t.Fatalf("unexpected filtered items %#v", list.Items)
	}
	list.SetFilter("zzz", 3)
	if len(list.Items) != 0 {
		t.Fatalf("expected no matches, got %#v", list.Items)
	}
}
