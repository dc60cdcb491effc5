// Package ui contains the Bubble Tea program that powers the flapboard
// dashboard. The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own input handling, board rendering,
// and preview lifecycle.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each tea.Msg through a typed handler registry so every
//     message kind is handled by a focused function (key presses, preview
//     completions, watcher events, window resizes).
//   - Key handling (internal/ui/input.go) is split per mode: the page list,
//     the title prompt, and the line editor each own their bindings.
//
// State ownership:
//   - Page list state lives in internal/ui/state.List, which tracks items,
//     filtering, selection, and viewport calculations.
//   - Pages themselves are provided by internal/state.PageStore; edits happen
//     on an internal/editor.Document and are written back on save.
//   - Rendered previews are cached in internal/preview.Store keyed by page
//     version markers, so unchanged pages never re-render.
//
// Backend interactions:
//   - A backend.Watcher polls the page store for version changes; Update
//     waits for those events and hands them to applyBackendEvent, which
//     refreshes the list and invalidates previews whose versions moved.
//   - Preview renders run via tea.Cmd values; each carries a sequence number
//     so late completions from superseded requests are dropped.
package ui
