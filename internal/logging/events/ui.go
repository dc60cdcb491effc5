package events

import "github.com/flapboard/flapboard/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type EditorTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Editor = EditorTracer{}
)

func (UITracer) PageSelect(pageID, title string) {
	logging.Trace("page.select", map[string]interface{}{"page": pageID, "title": title})
}

func (UITracer) PageCreate(pageID, title string) {
	logging.Trace("page.create", map[string]interface{}{"page": pageID, "title": title})
}

func (UITracer) PageDelete(pageID string) {
	logging.Trace("page.delete", map[string]interface{}{"page": pageID})
}

func (UITracer) PageSave(pageID, version string) {
	logging.Trace("page.save", map[string]interface{}{"page": pageID, "version": version})
}

func (FilterTracer) Changed(filter string) {
	logging.Trace("filter.change", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (EditorTracer) Break(line, col int, accepted bool) {
	logging.Trace("editor.break", map[string]interface{}{"line": line, "col": col, "accepted": accepted})
}

func (EditorTracer) SoftBreakRejected(line, col int) {
	logging.Trace("editor.soft-break-rejected", map[string]interface{}{"line": line, "col": col})
}

func (EditorTracer) Normalized(lines int) {
	logging.Trace("editor.normalized", map[string]interface{}{"lines": lines})
}
