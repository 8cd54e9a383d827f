package main

import (
	"math"

	"honnef.co/go/curve"
)

// Viewport maps model space onto the screen with a uniform scale followed by
// a pan offset: screen = model*Scale + Offset. Offset is where the model
// origin lands on screen.
type Viewport struct {
	Offset Point
	Scale  float64
	// Last is the most recent pointer position recorded by a canvas drag.
	Last Point
}

func NewViewport() *Viewport {
	return &Viewport{Scale: 1}
}

// Transform returns the model-to-screen transform.
func (v *Viewport) Transform() curve.Affine {
	return curve.Scale(v.Scale, v.Scale).ThenTranslate(curve.Vec2(v.Offset))
}

func (v *Viewport) ToScreen(p Point) Point {
	return p.Transform(v.Transform())
}

func (v *Viewport) ToModel(p Point) Point {
	return p.Transform(v.Transform().Invert())
}

// ZoomAt multiplies the scale by factor while keeping the model point under
// anchor fixed on screen.
func (v *Viewport) ZoomAt(anchor Point, factor float64) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return
	}
	modelAnchor := v.ToModel(anchor)
	v.Scale *= factor
	v.Offset = anchor.Translate(curve.Vec2(modelAnchor).Mul(-v.Scale))
}

// Fit centres bounds on a width×height screen at the largest scale that
// leaves margin pixels free on every side. A screen too small for the margin
// leaves the viewport unchanged.
func (v *Viewport) Fit(bounds curve.Rect, width, height, margin float64) {
	w, h := width-2*margin, height-2*margin
	if w <= 0 || h <= 0 {
		return
	}
	v.Scale = math.Min(w/math.Max(bounds.Width(), 1), h/math.Max(bounds.Height(), 1))
	c := bounds.Center()
	v.Offset = Pt(width/2-c.X*v.Scale, height/2-c.Y*v.Scale)
}

func (v *Viewport) Pan(delta curve.Vec2) {
	v.Offset = v.Offset.Translate(delta)
}

func (v *Viewport) BeginDrag(pos Point) {
	v.Last = pos
}

// DragTo pans by the distance moved since the previous drag position.
func (v *Viewport) DragTo(pos Point) {
	v.Pan(pos.Sub(v.Last))
	v.Last = pos
}

func (v *Viewport) Reset() {
	v.Offset = Point{}
	v.Scale = 1
	v.Last = Point{}
}

// WheelFactor turns a wheel delta into a zoom factor. Only the sign of
// deltaY matters: scrolling up (negative) zooms in.
func WheelFactor(deltaY, zoomFactor float64) float64 {
	if deltaY < 0 {
		return zoomFactor
	}
	return 1 / zoomFactor
}
