package main

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const tolerance = 1e-9

var approx = cmpopts.EquateApprox(0, tolerance)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// op is one recorded Surface call.
type op struct {
	Name  string
	Args  []float64
	Text  string
	Color string
}

// recordingSurface implements Surface by logging every call.
type recordingSurface struct {
	width, height float64
	ops           []op
	stroke        string
	fill          string
}

func newRecordingSurface(width, height float64) *recordingSurface {
	return &recordingSurface{width: width, height: height}
}

func (s *recordingSurface) add(o op) { s.ops = append(s.ops, o) }

func (s *recordingSurface) Size() (float64, float64) { return s.width, s.height }
func (s *recordingSurface) Clear(c color.Color) {
	s.add(op{Name: "Clear", Color: hexColor(c)})
}
func (s *recordingSurface) BeginPath()          { s.add(op{Name: "BeginPath"}) }
func (s *recordingSurface) MoveTo(x, y float64) { s.add(op{Name: "MoveTo", Args: []float64{x, y}}) }
func (s *recordingSurface) LineTo(x, y float64) { s.add(op{Name: "LineTo", Args: []float64{x, y}}) }
func (s *recordingSurface) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	s.add(op{Name: "CubicTo", Args: []float64{x1, y1, x2, y2, x3, y3}})
}
func (s *recordingSurface) Arc(x, y, r float64) { s.add(op{Name: "Arc", Args: []float64{x, y, r}}) }
func (s *recordingSurface) SetStrokeColor(c color.Color) {
	s.stroke = hexColor(c)
}
func (s *recordingSurface) SetFillColor(c color.Color) {
	s.fill = hexColor(c)
}
func (s *recordingSurface) SetLineWidth(w float64) {
	s.add(op{Name: "SetLineWidth", Args: []float64{w}})
}
func (s *recordingSurface) SetShadow(c color.Color, blur float64) {
	s.add(op{Name: "SetShadow", Args: []float64{blur}, Color: hexColor(c)})
}
func (s *recordingSurface) SetGlobalAlpha(a float64) {
	s.add(op{Name: "SetGlobalAlpha", Args: []float64{a}})
}
func (s *recordingSurface) Stroke() { s.add(op{Name: "Stroke", Color: s.stroke}) }
func (s *recordingSurface) Fill()   { s.add(op{Name: "Fill", Color: s.fill}) }
func (s *recordingSurface) FillText(text string, x, y float64) {
	s.add(op{Name: "FillText", Args: []float64{x, y}, Text: text, Color: s.fill})
}
func (s *recordingSurface) DrawImage(img image.Image, x, y int) {
	s.add(op{Name: "DrawImage", Args: []float64{float64(x), float64(y)}})
}

func (s *recordingSurface) named(name string) []op {
	var out []op
	for _, o := range s.ops {
		if o.Name == name {
			out = append(out, o)
		}
	}
	return out
}

// fakeHost records what the editor asked of its surroundings.
type fakeHost struct {
	redraws  int
	cursors  []CursorKind
	menus    []PointID
	menuAt   []Point
	restores []time.Duration
	tools    []Tool
}

func (h *fakeHost) Redraw()                  { h.redraws++ }
func (h *fakeHost) SetCursor(kind CursorKind) { h.cursors = append(h.cursors, kind) }
func (h *fakeHost) ShowContextMenu(at Point, id PointID) {
	h.menuAt = append(h.menuAt, at)
	h.menus = append(h.menus, id)
}
func (h *fakeHost) ScheduleCursorRestore(d time.Duration) { h.restores = append(h.restores, d) }
func (h *fakeHost) SetToolHighlight(tool Tool)            { h.tools = append(h.tools, tool) }

func (h *fakeHost) lastCursor() CursorKind {
	if len(h.cursors) == 0 {
		return -1
	}
	return h.cursors[len(h.cursors)-1]
}

func newTestEditor() (*Editor, *fakeHost) {
	host := &fakeHost{}
	return NewEditor(DefaultConfig(), NewDocument(), host), host
}
