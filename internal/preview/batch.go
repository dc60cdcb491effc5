package preview

import (
	"context"
	"time"

	"github.com/flapboard/flapboard/internal/logging/events"
)

// RenderFunc produces the render result for one content id at the given
// version. It stands in for the remote renderer; failures are per-id and
// must never corrupt the cache.
type RenderFunc func(ctx context.Context, id, version string) (string, error)

// Request names one content id and the version marker its source
// currently carries.
type Request struct {
	ID      string
	Version string
}

// Item is the per-id outcome of a batch fill.
type Item struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
	Result    string `json:"result,omitempty"`
}

// BatchResult aggregates a batch fill: Successful counts the ids whose
// result is available (cached or freshly rendered) out of Total requested.
type BatchResult struct {
	Total      int             `json:"total"`
	Successful int             `json:"successful"`
	Items      map[string]Item `json:"items"`
}

// Fill resolves previews for every request, serving version-matched cache
// entries and rendering the rest. Only successful renders are written back
// to the store; a failed id keeps its previous cache state (if any) and is
// reported with available=false, without blocking the rest of the batch.
func Fill(ctx context.Context, store *Store, requests []Request, render RenderFunc) BatchResult {
	result := BatchResult{
		Total: len(requests),
		Items: make(map[string]Item, len(requests)),
	}
	for _, req := range requests {
		if entry, ok := store.Lookup(req.ID, req.Version); ok {
			result.Items[req.ID] = Item{Available: true, Result: entry.Result}
			result.Successful++
			continue
		}
		if err := ctx.Err(); err != nil {
			result.Items[req.ID] = Item{Available: false, Reason: err.Error()}
			continue
		}
		rendered, err := render(ctx, req.ID, req.Version)
		if err != nil {
			events.Render.Failure(req.ID, err)
			result.Items[req.ID] = Item{Available: false, Reason: err.Error()}
			continue
		}
		entry := Entry{Result: rendered, Version: req.Version, CapturedAt: time.Now().UTC()}
		if err := store.Put(req.ID, entry); err != nil {
			// The render itself succeeded; report it available even
			// when the persistent store rejects the write.
			events.Render.CacheWriteFailure(req.ID, err)
		}
		events.Render.Success(req.ID, req.Version)
		result.Items[req.ID] = Item{Available: true, Result: rendered}
		result.Successful++
	}
	return result
}
