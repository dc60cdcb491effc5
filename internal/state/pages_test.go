package state

import (
	"path/filepath"
	"testing"
	"time"
)

func TestCreateAssignsIDAndVersion(t *testing.T) {
	store := NewPageStore()
	page := store.Create("Arrivals", "TRACK 9  ON TIME")
	if page.ID == "" {
		t.Fatal("expected generated id")
	}
	if page.Version() == "" {
		t.Fatal("expected version marker")
	}
	got, ok := store.Get(page.ID)
	if !ok || got.Title != "Arrivals" {
		t.Fatalf("expected stored page, got %#v/%v", got, ok)
	}
}

func TestUpdateBumpsVersionOnChange(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	store := &pageStore{now: func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}}
	page := store.Create("Departures", "GATE 4")
	v1 := page.Version()

	same, ok := store.Update(page.ID, "Departures", "GATE 4")
	if !ok || same.Version() != v1 {
		t.Fatalf("no-change update must not bump version: %q vs %q", same.Version(), v1)
	}

	changed, ok := store.Update(page.ID, "Departures", "GATE 5")
	if !ok || changed.Version() == v1 {
		t.Fatal("content change must bump version")
	}
}

func TestUpdateUnknownPage(t *testing.T) {
	store := NewPageStore()
	if _, ok := store.Update("nope", "t", "m"); ok {
		t.Fatal("expected update of unknown id to fail")
	}
}

func TestDelete(t *testing.T) {
	store := NewPageStore()
	page := store.Create("Temp", "")
	if !store.Delete(page.ID) {
		t.Fatal("expected delete to succeed")
	}
	if store.Delete(page.ID) {
		t.Fatal("expected second delete to fail")
	}
	if len(store.Entries()) != 0 {
		t.Fatal("expected empty store")
	}
}

func TestVersionsSnapshot(t *testing.T) {
	store := NewPageStore()
	a := store.Create("A", "1")
	b := store.Create("B", "2")
	versions := store.Versions()
	if len(versions) != 2 || versions[a.ID] != a.Version() || versions[b.ID] != b.Version() {
		t.Fatalf("unexpected snapshot %#v", versions)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.json")
	store := NewPageStore()
	store.Create("One", "FIRST")
	store.Create("Two", "{red}SECOND")
	if err := store.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reloaded := NewPageStore()
	if err := reloaded.Load(path); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(reloaded.Entries()) != 2 {
		t.Fatalf("expected two pages, got %d", len(reloaded.Entries()))
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	store := NewPageStore()
	if err := store.Load(filepath.Join(t.TempDir(), "absent.json")); err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if len(store.Entries()) != 0 {
		t.Fatal("expected empty store")
	}
}
