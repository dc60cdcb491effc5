package events

import "github.com/flapboard/flapboard/internal/logging"

type RenderTracer struct{}

type CacheTracer struct{}

var (
	Render = RenderTracer{}
	Cache  = CacheTracer{}
)

func (RenderTracer) Success(pageID, version string) {
	logging.Trace("render.success", map[string]interface{}{"page": pageID, "version": version})
}

func (RenderTracer) Failure(pageID string, err error) {
	if err == nil {
		return
	}
	logging.Trace("render.failure", map[string]interface{}{"page": pageID, "error": err.Error()})
}

func (RenderTracer) CacheWriteFailure(pageID string, err error) {
	if err == nil {
		return
	}
	logging.Trace("render.cache-write-failure", map[string]interface{}{"page": pageID, "error": err.Error()})
}

func (CacheTracer) Hit(pageID string) {
	logging.Trace("cache.hit", map[string]interface{}{"page": pageID})
}

func (CacheTracer) Stale(pageID, cached, current string) {
	logging.Trace("cache.stale", map[string]interface{}{
		"page":    pageID,
		"cached":  cached,
		"current": current,
	})
}
