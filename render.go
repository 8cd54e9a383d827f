package main

import (
	"image/color"
	"strconv"

	"golang.org/x/image/font"
)

// Renderer paints a document frame: grid, control polygon, point markers,
// labels and finally the curve itself.
type Renderer struct {
	config  *Config
	palette palette
	face    font.Face
}

func NewRenderer(config *Config) (*Renderer, error) {
	pal, err := newPalette(config)
	if err != nil {
		return nil, err
	}
	face, err := newLabelFace(config.Labels.Font)
	if err != nil {
		return nil, err
	}
	return &Renderer{config: config, palette: pal, face: face}, nil
}

// NewFrame allocates a raster surface with the renderer's label font.
func (r *Renderer) NewFrame(width, height int) *rasterSurface {
	return newRasterSurface(width, height, r.face)
}

func (r *Renderer) Draw(s Surface, doc *Document) {
	s.SetGlobalAlpha(1)
	s.SetShadow(color.Transparent, 0)
	s.Clear(r.palette.background)
	drawGrid(s, doc.View, r.config.Grid, r.palette.grid)
	r.drawControlLines(s, doc)
	r.drawControlPoints(s, doc)
	r.drawLabels(s, doc)
	r.drawBezierCurve(s, doc)
}

func (r *Renderer) drawControlLines(s Surface, doc *Document) {
	points := doc.Spline.Points()
	if len(points) == 0 {
		return
	}
	s.BeginPath()
	first := doc.View.ToScreen(points[0].Pos)
	s.MoveTo(first.X, first.Y)
	for _, cp := range points[1:] {
		p := doc.View.ToScreen(cp.Pos)
		s.LineTo(p.X, p.Y)
	}
	s.SetStrokeColor(r.palette.controlLine)
	s.SetLineWidth(r.config.Lines.ControlLineWidth)
	s.Stroke()
}

func (r *Renderer) drawControlPoints(s Surface, doc *Document) {
	cfg := r.config.ControlPoints
	for _, cp := range doc.Spline.Points() {
		selected := cp.ID == doc.Selection.Selected
		if selected {
			s.SetShadow(r.palette.selectedHalo, cfg.SelectedHaloBlur)
			s.SetStrokeColor(r.palette.selected)
		} else {
			s.SetShadow(color.Transparent, 0)
		}
		if cp.Kind == OnCurve {
			s.SetFillColor(r.palette.onCurve)
		} else {
			s.SetFillColor(r.palette.offCurve)
		}

		p := doc.View.ToScreen(cp.Pos)
		s.BeginPath()
		s.Arc(p.X, p.Y, cfg.Radius)
		s.Fill()
		if selected {
			s.Stroke()
		}
	}
	s.SetShadow(color.Transparent, 0)
}

func (r *Renderer) drawLabels(s Surface, doc *Document) {
	s.SetFillColor(r.palette.label)
	for _, cp := range doc.Spline.Points() {
		if cp.Kind != OnCurve {
			continue
		}
		p := doc.View.ToScreen(cp.Pos)
		s.FillText(strconv.Itoa(cp.Seq), p.X+labelOffsetX, p.Y+labelOffsetY)
	}
}

// drawBezierCurve strokes one cubic per complete [off, off, on] group after
// the leading anchor. A trailing partial group is left out.
func (r *Renderer) drawBezierCurve(s Surface, doc *Document) {
	points := doc.Spline.Points()
	if len(points) == 0 {
		return
	}
	v := doc.View
	s.BeginPath()
	start := v.ToScreen(points[0].Pos)
	s.MoveTo(start.X, start.Y)
	for i := 1; i < len(points)-2; i += 3 {
		c1 := v.ToScreen(points[i].Pos)
		c2 := v.ToScreen(points[i+1].Pos)
		end := v.ToScreen(points[i+2].Pos)
		s.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	}
	s.SetStrokeColor(r.palette.bezierCurve)
	s.SetLineWidth(r.config.Lines.BezierLineWidth)
	s.Stroke()
}
