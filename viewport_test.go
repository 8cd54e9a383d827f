package main

import (
	"math"
	"testing"

	"honnef.co/go/curve"
)

func TestViewportInverse(t *testing.T) {
	views := []Viewport{
		{Scale: 1},
		{Scale: 2, Offset: Pt(50, 50)},
		{Scale: 0.013, Offset: Pt(-1234.5, 987.25)},
		{Scale: 731.2, Offset: Pt(3, -7)},
	}
	points := []Point{Pt(0, 0), Pt(100, 500), Pt(-3.25, 1e4), Pt(1e-3, -42)}
	for _, v := range views {
		for _, p := range points {
			got := v.ToModel(v.ToScreen(p))
			if got.Distance(p) > 1e-9*math.Max(1, math.Hypot(p.X, p.Y)) {
				t.Errorf("scale %g offset %v: ToModel(ToScreen(%v)) = %v", v.Scale, v.Offset, p, got)
			}
		}
	}
}

func TestViewportToModel(t *testing.T) {
	v := &Viewport{Scale: 2, Offset: Pt(50, 50)}
	diff(t, Pt(100, 50), v.ToModel(Pt(250, 150)), approx)
	diff(t, Pt(250, 150), v.ToScreen(Pt(100, 50)), approx)
}

func TestViewportZoomAtKeepsAnchor(t *testing.T) {
	anchors := []Point{Pt(400, 300), Pt(0, 0), Pt(-20, 913.5)}
	factors := []float64{1.1, 1 / 1.1, 3, 0.25}
	for _, a := range anchors {
		for _, f := range factors {
			v := &Viewport{Scale: 1.7, Offset: Pt(-31, 12)}
			before := v.ToModel(a)
			for i := 0; i < 20; i++ {
				v.ZoomAt(a, f)
				// Rounding grows with the screen coordinates of the model
				// origin, which scale with the zoom.
				tol := 1e-12 * math.Max(1, v.Scale*math.Hypot(before.X, before.Y)+math.Hypot(v.Offset.X, v.Offset.Y))
				if got := v.ToScreen(before); got.Distance(a) > tol {
					t.Fatalf("anchor %v factor %g step %d: anchor drifted to %v", a, f, i, got)
				}
			}
		}
	}
}

func TestViewportWheelZoomIn(t *testing.T) {
	v := NewViewport()
	anchor := Pt(400, 300)
	before := v.ToModel(anchor)
	v.ZoomAt(anchor, WheelFactor(-1, 1.1))

	diff(t, 1.1, v.Scale, approx)
	diff(t, before, v.ToModel(anchor), approx)
}

func TestViewportZoomAtIgnoresBadFactor(t *testing.T) {
	for _, f := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		v := NewViewport()
		v.ZoomAt(Pt(10, 10), f)
		if v.Scale != 1 || v.Offset != (Point{}) {
			t.Errorf("factor %g changed the viewport: %+v", f, v)
		}
	}
}

func TestWheelFactor(t *testing.T) {
	tests := []struct {
		delta float64
		want  float64
	}{
		{-120, 1.25},
		{-0.5, 1.25},
		{3, 0.8},
		{0, 0.8},
	}
	for _, tt := range tests {
		if got := WheelFactor(tt.delta, 1.25); got != tt.want {
			t.Errorf("WheelFactor(%g) = %g, want %g", tt.delta, got, tt.want)
		}
	}
}

func TestViewportDrag(t *testing.T) {
	v := NewViewport()
	v.BeginDrag(Pt(10, 10))
	v.DragTo(Pt(15, 8))
	v.DragTo(Pt(30, 20))
	diff(t, Pt(20, 10), v.Offset)
	diff(t, Pt(30, 20), v.Last)

	v.Reset()
	diff(t, Viewport{Scale: 1}, *v)
}

func TestViewportTransform(t *testing.T) {
	v := &Viewport{Scale: 3, Offset: Pt(-5, 8)}
	want := curve.Affine{N0: 3, N3: 3, N4: -5, N5: 8}
	diff(t, want, v.Transform())
	diff(t, Pt(1, 23), v.ToScreen(Pt(2, 5)), approx)
}

func TestViewportFit(t *testing.T) {
	bounds := curve.NewRectFromPoints(Pt(100, 100), Pt(700, 500))
	v := NewViewport()
	v.Fit(bounds, 320, 176, 20)

	diff(t, 136.0/400, v.Scale, approx)
	diff(t, Pt(160, 88), v.ToScreen(bounds.Center()), approx)
	lo, hi := v.ToScreen(Pt(100, 100)), v.ToScreen(Pt(700, 500))
	if lo.X < 20-tolerance || lo.Y < 20-tolerance || hi.X > 300+tolerance || hi.Y > 156+tolerance {
		t.Errorf("fitted bounds span %v to %v", lo, hi)
	}
}

func TestViewportFitDegenerate(t *testing.T) {
	v := NewViewport()
	v.Fit(curve.NewRectFromPoints(Pt(0, 0), Pt(10, 10)), 30, 30, 20)
	diff(t, Viewport{Scale: 1}, *v)

	// A single point still gets a finite scale.
	v.Fit(curve.NewRectFromPoints(Pt(5, 5), Pt(5, 5)), 100, 100, 10)
	diff(t, 80.0, v.Scale)
	diff(t, Pt(50, 50), v.ToScreen(Pt(5, 5)), approx)
}
