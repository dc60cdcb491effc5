// Package state holds the dashboard's content records: the pages whose
// markup the board composes. The store is the system of record for the
// version markers the preview cache keys staleness on.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Page is one piece of display content.
type Page struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Markup    string    `json:"markup"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Version returns the page's opaque version marker, derived from its
// last-modified time. Consumers compare markers for equality only.
func (p Page) Version() string {
	return p.UpdatedAt.UTC().Format(time.RFC3339Nano)
}

// PageStore provides CRUD over pages plus snapshot access for pollers.
type PageStore interface {
	Entries() []Page
	Get(id string) (Page, bool)
	Create(title, markup string) Page
	Update(id, title, markup string) (Page, bool)
	Delete(id string) bool
	Versions() map[string]string
	Load(path string) error
	Save(path string) error
}

type pageStore struct {
	mu    sync.Mutex
	pages []Page
	now   func() time.Time
}

// NewPageStore returns an empty page store.
func NewPageStore() PageStore {
	return &pageStore{now: time.Now}
}

func (s *pageStore) Entries() []Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePages(s.pages)
}

func (s *pageStore) Get(id string) (Page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, page := range s.pages {
		if page.ID == id {
			return page, true
		}
	}
	return Page{}, false
}

func (s *pageStore) Create(title, markup string) Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	page := Page{
		ID:        uuid.NewString(),
		Title:     title,
		Markup:    markup,
		UpdatedAt: s.now().UTC(),
	}
	s.pages = append(s.pages, page)
	return page
}

func (s *pageStore) Update(id, title, markup string) (Page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pages {
		if s.pages[i].ID != id {
			continue
		}
		if s.pages[i].Title == title && s.pages[i].Markup == markup {
			return s.pages[i], true
		}
		s.pages[i].Title = title
		s.pages[i].Markup = markup
		s.pages[i].UpdatedAt = s.now().UTC()
		return s.pages[i], true
	}
	return Page{}, false
}

func (s *pageStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pages {
		if s.pages[i].ID == id {
			s.pages = append(s.pages[:i], s.pages[i+1:]...)
			return true
		}
	}
	return false
}

// Versions snapshots the id → version marker mapping for every page.
func (s *pageStore) Versions() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	versions := make(map[string]string, len(s.pages))
	for _, page := range s.pages {
		versions[page.ID] = page.Version()
	}
	return versions
}

// Load replaces the store contents from a JSON file. A missing file is not
// an error; the store simply starts empty.
func (s *pageStore) Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read pages file: %w", err)
	}
	var pages []Page
	if err := json.Unmarshal(data, &pages); err != nil {
		return fmt.Errorf("decode pages file: %w", err)
	}
	s.mu.Lock()
	s.pages = pages
	s.mu.Unlock()
	return nil
}

// Save writes the store contents to a JSON file, sorted by title for
// stable output.
func (s *pageStore) Save(path string) error {
	s.mu.Lock()
	pages := clonePages(s.pages)
	s.mu.Unlock()
	sort.Slice(pages, func(i, j int) bool { return pages[i].Title < pages[j].Title })
	data, err := json.MarshalIndent(pages, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write pages file: %w", err)
	}
	return nil
}

func clonePages(pages []Page) []Page {
	if len(pages) == 0 {
		return nil
	}
	dup := make([]Page, len(pages))
	copy(dup, pages)
	return dup
}
