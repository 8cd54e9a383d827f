package main

import (
	"log/slog"
	"time"

	"honnef.co/go/curve"
)

// Selection tracks which points the user is working with. Points are
// referenced by handle and the handles are cleared when their point is
// deleted.
type Selection struct {
	Selected       PointID
	Dragging       PointID
	DraggingCanvas bool
	Tool           Tool
}

// Document is one editing session: the spline, how it is viewed and what
// is selected.
type Document struct {
	Spline    *Spline
	View      *Viewport
	Selection Selection
}

func NewDocument() *Document {
	return &Document{
		Spline: NewDefaultSpline(),
		View:   NewViewport(),
	}
}

// Host is everything the editor needs from its surroundings. All calls are
// made synchronously from the event handler that caused them.
type Host interface {
	Redraw()
	SetCursor(kind CursorKind)
	ShowContextMenu(at Point, id PointID)
	// ScheduleCursorRestore asks for RestoreCursor to be called after d,
	// replacing any restore scheduled earlier.
	ScheduleCursorRestore(d time.Duration)
	SetToolHighlight(tool Tool)
}

// Editor turns pointer, wheel and key events into document changes.
type Editor struct {
	config  *Config
	doc     *Document
	picker  Picker
	host    Host
	pointer Point
}

func NewEditor(config *Config, doc *Document, host Host) *Editor {
	return &Editor{
		config: config,
		doc:    doc,
		picker: NewPicker(doc.Spline, doc.View, config.ControlPoints.SnapDistance),
		host:   host,
	}
}

func (e *Editor) Document() *Document {
	return e.doc
}

func (e *Editor) State() EditorState {
	switch {
	case e.doc.Selection.Dragging != NoPoint:
		return StateDraggingPoint
	case e.doc.Selection.DraggingCanvas:
		return StateDraggingCanvas
	default:
		return StateIdle
	}
}

// Pointer returns the last device position seen by the editor.
func (e *Editor) Pointer() Point {
	return e.pointer
}

func (e *Editor) PrimaryPress(pos Point) {
	e.pointer = pos
	sel := &e.doc.Selection
	hit, ok := e.picker.Pick(pos)

	switch {
	case sel.Tool == ToolPen:
		id := e.doc.Spline.Append(e.doc.View.ToModel(pos), e.config.ControlPoints.HandleOffset)
		slog.Debug("point appended", "id", id, "len", e.doc.Spline.Len())
	case ok:
		sel.Dragging = hit
		sel.Selected = hit
	default:
		sel.Selected = NoPoint
		sel.DraggingCanvas = true
		e.doc.View.BeginDrag(pos)
		e.host.SetCursor(CursorGrabbing)
	}
	e.host.Redraw()
}

func (e *Editor) SecondaryPress(pos Point) {
	e.pointer = pos
	if hit, ok := e.picker.Pick(pos); ok {
		e.host.ShowContextMenu(pos, hit)
	}
	e.host.Redraw()
}

func (e *Editor) PointerMove(pos Point) {
	e.pointer = pos
	sel := &e.doc.Selection
	switch {
	case sel.Dragging != NoPoint:
		e.doc.Spline.Move(sel.Dragging, e.doc.View.ToModel(pos))
		e.host.Redraw()
	case sel.DraggingCanvas:
		e.doc.View.DragTo(pos)
		e.host.Redraw()
	default:
		e.updateCursor()
	}
}

// Release ends any drag. Outside of pen mode it also re-activates the
// pointer tool, which refreshes the toolbar and cursor.
func (e *Editor) Release() {
	sel := &e.doc.Selection
	sel.Dragging = NoPoint
	sel.DraggingCanvas = false
	if sel.Tool != ToolPen {
		e.ActivateTool(ToolPointer)
	}
}

func (e *Editor) Wheel(pos Point, deltaY float64) {
	e.pointer = pos
	e.doc.View.ZoomAt(pos, WheelFactor(deltaY, e.config.ZoomFactor))
	e.host.SetCursor(CursorZoomIn)
	e.host.ScheduleCursorRestore(e.config.CursorRestoreDelay)
	e.host.Redraw()
}

// RestoreCursor shows the hover cursor for the last known pointer position.
func (e *Editor) RestoreCursor() {
	e.updateCursor()
}

func (e *Editor) DeleteSelected() {
	id := e.doc.Selection.Selected
	if id == NoPoint {
		return
	}
	e.DeletePoint(id)
}

// DeletePoint removes a point and drops every selection reference to it.
func (e *Editor) DeletePoint(id PointID) {
	if !e.doc.Spline.Remove(id) {
		return
	}
	sel := &e.doc.Selection
	if sel.Selected == id {
		sel.Selected = NoPoint
	}
	if sel.Dragging == id {
		sel.Dragging = NoPoint
	}
	slog.Debug("point deleted", "id", id, "len", e.doc.Spline.Len())
	e.host.Redraw()
}

func (e *Editor) ActivateTool(tool Tool) {
	e.doc.Selection.Tool = tool
	e.host.SetToolHighlight(tool)
	e.updateCursor()
}

func (e *Editor) PanBy(delta curve.Vec2) {
	e.doc.View.Pan(delta)
	e.host.Redraw()
}

func (e *Editor) ZoomAround(anchor Point, factor float64) {
	e.doc.View.ZoomAt(anchor, factor)
	e.host.Redraw()
}

func (e *Editor) ResetView() {
	e.doc.View.Reset()
	e.host.Redraw()
}

// FitView zooms and pans so that every control point is on a width×height
// screen.
func (e *Editor) FitView(width, height float64) {
	if b, ok := e.doc.Spline.Bounds(); ok {
		e.doc.View.Fit(b, width, height, fitMargin)
	}
	e.host.Redraw()
}

// Visible reports whether every control point is on a width×height screen.
func (e *Editor) Visible(width, height float64) bool {
	b, ok := e.doc.Spline.Bounds()
	if !ok {
		return true
	}
	lo := e.doc.View.ToScreen(Pt(b.X0, b.Y0))
	hi := e.doc.View.ToScreen(Pt(b.X1, b.Y1))
	return lo.X >= 0 && lo.Y >= 0 && hi.X <= width && hi.Y <= height
}

func (e *Editor) updateCursor() {
	switch {
	case e.hovering():
		e.host.SetCursor(CursorHover)
	case e.doc.Selection.Tool == ToolPen:
		e.host.SetCursor(CursorPen)
	default:
		e.host.SetCursor(CursorPointer)
	}
}

func (e *Editor) hovering() bool {
	_, ok := e.picker.Pick(e.pointer)
	return ok
}
