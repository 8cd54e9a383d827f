package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	width          int
	height         int
	config         *Config
	editor         *Editor
	screen         *screen
	help           bool
	errorMessage   string
	successMessage string
}

// screen is the editor's Host inside the terminal: it owns the rendered
// frame, the cursor, the toolbar highlight and the context menu.
type screen struct {
	config   *Config
	renderer *Renderer
	doc      *Document

	cols  int
	rows  int
	sized bool

	frame         *rasterSurface
	pointer       Point
	pointerInside bool

	cursor     CursorKind
	wantCursor CursorKind
	cursors    map[CursorKind]*cursorIcon
	loading    map[CursorKind]bool
	failed     map[CursorKind]bool

	tool       Tool
	menu       *contextMenu
	restoreSeq int
	pending    []tea.Cmd
}

type cursorRestoreMsg struct {
	seq int
}

type toolbarButton struct {
	label string
	tool  Tool
}

var toolbarButtons = []toolbarButton{
	{label: " ➤ Pointer (p) ", tool: ToolPointer},
	{label: " ✎ Pen (b) ", tool: ToolPen},
}

func newScreen(config *Config, renderer *Renderer, doc *Document) *screen {
	return &screen{
		config:   config,
		renderer: renderer,
		doc:      doc,
		cursors:  make(map[CursorKind]*cursorIcon),
		loading:  make(map[CursorKind]bool),
		failed:   make(map[CursorKind]bool),
	}
}

func initialModel(config *Config) (model, error) {
	renderer, err := NewRenderer(config)
	if err != nil {
		return model{}, err
	}
	doc := NewDocument()
	scr := newScreen(config, renderer, doc)
	return model{
		config: config,
		editor: NewEditor(config, doc, scr),
		screen: scr,
	}, nil
}

func cursorRestoreAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return cursorRestoreMsg{seq: seq}
	})
}
