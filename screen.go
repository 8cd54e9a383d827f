package main

import (
	"image"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (s *screen) resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.cols, s.rows = cols, rows
	if s.menu != nil {
		s.menu.clamp(cols, rows)
	}
}

func (s *screen) pixelSize() (int, int) {
	return s.cols * s.config.Terminal.CellWidth, s.rows * s.config.Terminal.CellHeight
}

func (s *screen) Redraw() {
	w, h := s.pixelSize()
	if s.frame == nil || s.frame.dc.Width() != w || s.frame.dc.Height() != h {
		s.frame = s.renderer.NewFrame(w, h)
	}
	s.renderer.Draw(s.frame, s.doc)
}

// SetCursor switches to kind once its icon is available. Until then the
// current cursor stays on screen.
func (s *screen) SetCursor(kind CursorKind) {
	s.wantCursor = kind
	if _, ok := s.cursors[kind]; ok {
		s.cursor = kind
		return
	}
	if s.loading[kind] || s.failed[kind] {
		return
	}
	s.loading[kind] = true
	s.pending = append(s.pending, loadCursorCmd(kind, s.config.CursorSize, s.config.CursorDir))
}

func (s *screen) cursorLoaded(msg cursorLoadedMsg) {
	s.loading[msg.kind] = false
	if msg.err != nil {
		s.failed[msg.kind] = true
		slog.Warn("cursor icon unavailable, keeping current cursor", "cursor", msg.kind, "err", msg.err)
		return
	}
	s.cursors[msg.kind] = msg.icon
	if s.wantCursor == msg.kind {
		s.cursor = msg.kind
	}
}

func (s *screen) ShowContextMenu(at Point, id PointID) {
	cx, cy := cellPos(at, s.config.Terminal)
	s.menu = newContextMenu(cx, cy, id)
	s.menu.clamp(s.cols, s.rows)
}

// ScheduleCursorRestore bumps the restore sequence so that ticks from
// earlier schedules are ignored when they arrive.
func (s *screen) ScheduleCursorRestore(d time.Duration) {
	s.restoreSeq++
	s.pending = append(s.pending, cursorRestoreAfter(d, s.restoreSeq))
}

func (s *screen) SetToolHighlight(tool Tool) {
	s.tool = tool
}

func (s *screen) takeCmds() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// canvasLines turns the current frame into terminal rows: half-block pixels
// with the cursor composited in, labels printed as text and the context
// menu on top.
func (s *screen) canvasLines() []string {
	if s.frame == nil {
		s.Redraw()
	}
	var img image.Image = s.frame.Image()
	if icon := s.cursors[s.cursor]; icon != nil && s.pointerInside {
		img = overlayCursor(img, icon, s.pointer)
	}

	grid := rasterToCells(img, s.cols, s.rows)
	for _, t := range s.frame.Texts() {
		cx, cy := cellPos(Pt(t.X, t.Y-1), s.config.Terminal)
		grid.putText(cx, cy, t.Text, t.Color)
	}
	if s.menu != nil {
		s.menu.draw(grid)
	}
	return grid.lines()
}
