// Package preview caches rendered display frames keyed by content id, so
// the dashboard never repeats an expensive render for content that has not
// changed. Staleness is decided purely by version marker equality; entries
// are replaced wholesale, never patched.
package preview

import "time"

// Entry is one cached render. Version carries the source content's
// last-modified marker verbatim; the cache never interprets it beyond
// equality.
type Entry struct {
	Result     string    `json:"result"`
	Version    string    `json:"versionMarker"`
	CapturedAt time.Time `json:"capturedAt"`
}
