package main

// Picker hit-tests screen positions against the control points of a
// document. The snap radius is in screen pixels, so it does not change with
// the zoom level.
type Picker struct {
	spline *Spline
	view   *Viewport
	snap   float64
}

func NewPicker(spline *Spline, view *Viewport, snap float64) Picker {
	return Picker{spline: spline, view: view, snap: snap}
}

func (p Picker) Pick(screenPos Point) (PointID, bool) {
	return p.spline.FindNear(screenPos, p.view, p.snap)
}
