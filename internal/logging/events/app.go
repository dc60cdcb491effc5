package events

import "github.com/flapboard/flapboard/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) PagesLoaded(path string, count int) {
	logging.Trace("app.pages-loaded", map[string]interface{}{"path": path, "count": count})
}

func (AppTracer) PagesSaved(path string, count int) {
	logging.Trace("app.pages-saved", map[string]interface{}{"path": path, "count": count})
}
