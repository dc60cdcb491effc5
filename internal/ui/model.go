package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flapboard/flapboard/internal/backend"
	"github.com/flapboard/flapboard/internal/editor"
	"github.com/flapboard/flapboard/internal/preview"
	"github.com/flapboard/flapboard/internal/state"
	"github.com/flapboard/flapboard/internal/theme"
	uistate "github.com/flapboard/flapboard/internal/ui/state"
)

// Mode selects which surface owns keyboard input.
type Mode int

const (
	ModePages Mode = iota
	ModeEdit
	ModeTitle
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries user-facing presentation settings into the model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Model implements the Bubble Tea model for the flapboard dashboard.
type Model struct {
	pages   state.PageStore
	cache   *preview.Store
	backend *backend.Watcher

	list     *uistate.List
	versions map[string]string

	doc       *editor.Document
	editingID string
	dirty     bool

	preview    map[string]*previewData
	previewSeq int
	warmSeq    int
	warmTotal  int
	warmOK     int

	titleInput   textinput.Model
	filterCursor cursor.Model

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	mode        Mode

	handlers map[reflect.Type]msgHandler
	renderFn preview.RenderFunc
}

// NewModel initialises the UI state over the page store, preview cache,
// and version watcher.
func NewModel(pages state.PageStore, cache *preview.Store, watcher *backend.Watcher, opts Options) *Model {
	m := &Model{
		pages:      pages,
		cache:      cache,
		backend:    watcher,
		versions:   pages.Versions(),
		preview:    make(map[string]*previewData),
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		mode:       ModePages,
	}
	m.renderFn = m.renderPage
	m.list = uistate.NewList(pageItems(pages.Entries()))

	input := textinput.New()
	input.Placeholder = "page title"
	input.CharLimit = 60
	m.titleInput = input

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c

	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.warmPreviews(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := m.ensurePreviewForSelection(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(previewLoadedMsg{}):  m.handlePreviewLoadedMsg,
		reflect.TypeOf(previewsWarmedMsg{}): m.handlePreviewsWarmedMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) setInfo(text string) {
	if text == "" {
		m.infoMsg = ""
		return
	}
	m.infoMsg = text
	m.infoExpire = time.Now().Add(4 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg == "" || time.Now().After(m.infoExpire) {
		return ""
	}
	return m.infoMsg
}

// selectedVersion returns the freshest version marker known for id: the
// watcher snapshot when present, the store otherwise.
func (m *Model) selectedVersion(id string) string {
	if version, ok := m.versions[id]; ok {
		return version
	}
	if page, ok := m.pages.Get(id); ok {
		return page.Version()
	}
	return ""
}

func pageItems(pages []state.Page) []uistate.Item {
	items := make([]uistate.Item, len(pages))
	for i, page := range pages {
		label := page.Title
		if label == "" {
			label = "(untitled)"
		}
		items[i] = uistate.Item{ID: page.ID, Label: label}
	}
	return items
}
