package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Surface is the immediate-mode drawing context frames are painted on.
// Path calls accumulate until BeginPath; Stroke and Fill do not consume the
// path.
type Surface interface {
	Size() (width, height float64)
	Clear(c color.Color)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(x1, y1, x2, y2, x3, y3 float64)
	Arc(x, y, radius float64)

	SetStrokeColor(c color.Color)
	SetFillColor(c color.Color)
	SetLineWidth(width float64)
	SetShadow(c color.Color, blur float64)
	SetGlobalAlpha(alpha float64)

	Stroke()
	Fill()
	FillText(text string, x, y float64)
	DrawImage(img image.Image, x, y int)
}

type pathOpKind int

const (
	opMoveTo pathOpKind = iota
	opLineTo
	opCubicTo
	opArc
)

type pathOp struct {
	kind   pathOpKind
	pts    [3]Point
	radius float64
}

// textRun is a piece of text drawn on a rasterSurface, kept so the terminal
// view can print labels as characters instead of downsampled pixels.
type textRun struct {
	Text  string
	X, Y  float64
	Color color.Color
}

// rasterSurface implements Surface on a gg context.
type rasterSurface struct {
	dc         *gg.Context
	path       []pathOp
	stroke     color.Color
	fill       color.Color
	lineWidth  float64
	alpha      float64
	shadow     color.Color
	shadowBlur float64
	texts      []textRun
}

func newRasterSurface(width, height int, face font.Face) *rasterSurface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	dc := gg.NewContext(width, height)
	if face != nil {
		dc.SetFontFace(face)
	}
	return &rasterSurface{
		dc:        dc,
		stroke:    color.Black,
		fill:      color.Black,
		lineWidth: 1,
		alpha:     1,
		shadow:    color.Transparent,
	}
}

func newLabelFace(fontSpec string) (font.Face, error) {
	size, err := parseFontSize(fontSpec)
	if err != nil {
		return nil, err
	}
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(ttfFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func (s *rasterSurface) Image() image.Image {
	return s.dc.Image()
}

func (s *rasterSurface) Texts() []textRun {
	return s.texts
}

func (s *rasterSurface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

func (s *rasterSurface) Size() (float64, float64) {
	return float64(s.dc.Width()), float64(s.dc.Height())
}

func (s *rasterSurface) Clear(c color.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
	s.texts = s.texts[:0]
}

func (s *rasterSurface) BeginPath() {
	s.path = s.path[:0]
}

func (s *rasterSurface) MoveTo(x, y float64) {
	s.path = append(s.path, pathOp{kind: opMoveTo, pts: [3]Point{Pt(x, y)}})
}

func (s *rasterSurface) LineTo(x, y float64) {
	s.path = append(s.path, pathOp{kind: opLineTo, pts: [3]Point{Pt(x, y)}})
}

func (s *rasterSurface) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	s.path = append(s.path, pathOp{kind: opCubicTo, pts: [3]Point{Pt(x1, y1), Pt(x2, y2), Pt(x3, y3)}})
}

func (s *rasterSurface) Arc(x, y, radius float64) {
	s.path = append(s.path, pathOp{kind: opArc, pts: [3]Point{Pt(x, y)}, radius: radius})
}

func (s *rasterSurface) SetStrokeColor(c color.Color) { s.stroke = c }
func (s *rasterSurface) SetFillColor(c color.Color)   { s.fill = c }
func (s *rasterSurface) SetLineWidth(width float64)   { s.lineWidth = width }

func (s *rasterSurface) SetShadow(c color.Color, blur float64) {
	s.shadow = c
	s.shadowBlur = blur
}

func (s *rasterSurface) SetGlobalAlpha(alpha float64) {
	s.alpha = math.Max(0, math.Min(1, alpha))
}

func (s *rasterSurface) replay(dc *gg.Context) {
	dc.ClearPath()
	for _, op := range s.path {
		switch op.kind {
		case opMoveTo:
			dc.MoveTo(op.pts[0].X, op.pts[0].Y)
		case opLineTo:
			dc.LineTo(op.pts[0].X, op.pts[0].Y)
		case opCubicTo:
			dc.CubicTo(op.pts[0].X, op.pts[0].Y, op.pts[1].X, op.pts[1].Y, op.pts[2].X, op.pts[2].Y)
		case opArc:
			dc.DrawCircle(op.pts[0].X, op.pts[0].Y, op.radius)
		}
	}
}

func (s *rasterSurface) withAlpha(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * s.alpha))
	return n
}

func (s *rasterSurface) Stroke() {
	if len(s.path) == 0 || s.alpha == 0 {
		return
	}
	s.replay(s.dc)
	s.dc.SetColor(s.withAlpha(s.stroke))
	s.dc.SetLineWidth(s.lineWidth)
	s.dc.Stroke()
}

func (s *rasterSurface) Fill() {
	if len(s.path) == 0 || s.alpha == 0 {
		return
	}
	if s.shadowBlur > 0 {
		s.fillShadow()
	}
	s.replay(s.dc)
	s.dc.SetColor(s.withAlpha(s.fill))
	s.dc.Fill()
}

// fillShadow paints the current path in the shadow color on a layer cropped
// to the path, blurs it and composites it underneath the fill.
func (s *rasterSurface) fillShadow() {
	if _, _, _, a := s.shadow.RGBA(); a == 0 {
		return
	}
	minX, minY, maxX, maxY := s.pathBounds()
	pad := math.Ceil(2*s.shadowBlur) + 1
	x0 := int(math.Floor(minX - pad))
	y0 := int(math.Floor(minY - pad))
	w := int(math.Ceil(maxX+pad)) - x0
	h := int(math.Ceil(maxY+pad)) - y0
	if w <= 0 || h <= 0 {
		return
	}

	layer := gg.NewContext(w, h)
	layer.Translate(float64(-x0), float64(-y0))
	s.replay(layer)
	layer.SetColor(s.withAlpha(s.shadow))
	layer.Fill()

	blurred := imaging.Blur(layer.Image(), s.shadowBlur/2)
	s.dc.DrawImage(blurred, x0, y0)
}

func (s *rasterSurface) pathBounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(p Point, r float64) {
		minX = math.Min(minX, p.X-r)
		minY = math.Min(minY, p.Y-r)
		maxX = math.Max(maxX, p.X+r)
		maxY = math.Max(maxY, p.Y+r)
	}
	for _, op := range s.path {
		switch op.kind {
		case opCubicTo:
			for _, p := range op.pts {
				grow(p, 0)
			}
		case opArc:
			grow(op.pts[0], op.radius)
		default:
			grow(op.pts[0], 0)
		}
	}
	return minX, minY, maxX, maxY
}

func (s *rasterSurface) FillText(text string, x, y float64) {
	c := s.withAlpha(s.fill)
	s.dc.SetColor(c)
	s.dc.DrawString(text, x, y)
	s.texts = append(s.texts, textRun{Text: text, X: x, Y: y, Color: c})
}

func (s *rasterSurface) DrawImage(img image.Image, x, y int) {
	s.dc.DrawImage(img, x, y)
}
