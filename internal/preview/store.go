package preview

import (
	"encoding/json"

	"github.com/flapboard/flapboard/internal/logging/events"
)

// Store wraps a KV with the cache semantics the dashboard relies on:
// JSON-encoded entries, misses for anything corrupt or absent, and
// staleness by version marker comparison.
type Store struct {
	kv KV
}

// NewStore builds a Store over the given backing KV.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Get returns the cached entry for id regardless of version. Storage
// errors and undecodable values are reported as misses, never as errors;
// a corrupt cache must only ever cost a re-render.
func (s *Store) Get(id string) (Entry, bool) {
	raw, ok, err := s.kv.Get(id)
	if err != nil || !ok {
		return Entry{}, false
	}
	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Entry{}, false
	}
	return entry, true
}

// Lookup returns the cached entry for id only when its version marker
// exactly matches version. A version change invalidates the entry
// immediately, regardless of how recently it was captured.
func (s *Store) Lookup(id, version string) (Entry, bool) {
	entry, ok := s.Get(id)
	if !ok {
		return Entry{}, false
	}
	if entry.Version != version {
		events.Cache.Stale(id, entry.Version, version)
		return Entry{}, false
	}
	events.Cache.Hit(id)
	return entry, true
}

// Put stores entry under id, unconditionally replacing any prior entry.
func (s *Store) Put(id string, entry Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.kv.Put(id, raw)
}

// Delete removes any cached entry for id.
func (s *Store) Delete(id string) error {
	return s.kv.Delete(id)
}

// GetMany returns the cached entries present for the given ids. Missing
// and corrupt entries are simply absent from the result.
func (s *Store) GetMany(ids []string) map[string]Entry {
	found := make(map[string]Entry, len(ids))
	for _, id := range ids {
		if entry, ok := s.Get(id); ok {
			found[id] = entry
		}
	}
	return found
}

// PutMany stores every given entry, replacing prior entries wholesale.
// The first storage error stops the walk and is returned.
func (s *Store) PutMany(entries map[string]Entry) error {
	for id, entry := range entries {
		if err := s.Put(id, entry); err != nil {
			return err
		}
	}
	return nil
}
