package main

import "honnef.co/go/curve"

// PointID is a stable handle to a control point. Handles are never reused
// within a Spline, so a stale handle simply stops resolving once its point
// has been removed.
type PointID uint64

type ControlPoint struct {
	ID   PointID
	Pos  Point
	Kind PointKind
	// Seq is the label drawn next to on-curve points. It is fixed when the
	// point is created and is -1 for off-curve points.
	Seq int
}

// Spline is the ordered control-point sequence of a composite cubic Bézier
// curve: one on-curve anchor followed by [off, off, on] groups.
type Spline struct {
	points []ControlPoint
	nextID PointID
	// nextSeq is the sequence position the next point gets. It only grows,
	// so labels stay unique after deletions.
	nextSeq int
}

func NewSpline() *Spline {
	return &Spline{
		points: make([]ControlPoint, 0),
		nextID: 1,
	}
}

// NewDefaultSpline returns the single-segment spline the editor starts with.
func NewDefaultSpline() *Spline {
	s := NewSpline()
	s.add(Pt(100, 500), OnCurve)
	s.add(Pt(200, 100), OffCurve)
	s.add(Pt(600, 100), OffCurve)
	s.add(Pt(700, 500), OnCurve)
	return s
}

func (s *Spline) add(pos Point, kind PointKind) PointID {
	cp := ControlPoint{
		ID:   s.nextID,
		Pos:  pos,
		Kind: kind,
		Seq:  -1,
	}
	if kind == OnCurve {
		cp.Seq = s.nextSeq
	}
	s.nextSeq++
	s.nextID++
	s.points = append(s.points, cp)
	return cp.ID
}

// Append adds a new on-curve point at pos together with its two handles,
// mirrored diagonally at ±offset. The handles come first so that the
// sequence keeps its [off, off, on] grouping. On an empty spline only the
// anchor is added. It returns the anchor's ID.
func (s *Spline) Append(pos Point, offset float64) PointID {
	if len(s.points) == 0 {
		return s.add(pos, OnCurve)
	}
	s.add(Pt(pos.X-offset, pos.Y-offset), OffCurve)
	s.add(Pt(pos.X+offset, pos.Y+offset), OffCurve)
	return s.add(pos, OnCurve)
}

// FindNear returns the first point, in sequence order, whose screen
// projection lies closer than snap to screenPos.
func (s *Spline) FindNear(screenPos Point, v *Viewport, snap float64) (PointID, bool) {
	for _, cp := range s.points {
		if v.ToScreen(cp.Pos).Distance(screenPos) < snap {
			return cp.ID, true
		}
	}
	return NoPoint, false
}

func (s *Spline) indexOf(id PointID) int {
	if id == NoPoint {
		return -1
	}
	for i, cp := range s.points {
		if cp.ID == id {
			return i
		}
	}
	return -1
}

// Move sets the position of a point. Neighbouring handles are left alone.
func (s *Spline) Move(id PointID, pos Point) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.points[i].Pos = pos
	return true
}

// Remove deletes a single point. Removing from the middle of the sequence
// breaks the triple grouping; rendering tolerates that by skipping the
// trailing partial group.
func (s *Spline) Remove(id PointID) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.points = append(s.points[:i], s.points[i+1:]...)
	return true
}

// Bounds returns the model-space box enclosing every control point.
func (s *Spline) Bounds() (curve.Rect, bool) {
	if len(s.points) == 0 {
		return curve.Rect{}, false
	}
	r := curve.NewRectFromPoints(s.points[0].Pos, s.points[0].Pos)
	for _, cp := range s.points[1:] {
		r = r.UnionPoint(cp.Pos)
	}
	return r, true
}

func (s *Spline) Get(id PointID) (ControlPoint, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return ControlPoint{}, false
	}
	return s.points[i], true
}

func (s *Spline) At(i int) ControlPoint {
	return s.points[i]
}

func (s *Spline) Len() int {
	return len(s.points)
}

// Points returns the backing sequence. Callers must not modify it.
func (s *Spline) Points() []ControlPoint {
	return s.points
}

// WellFormed reports whether the sequence still has the shape Append
// produces: a leading anchor and complete [off, off, on] groups.
func (s *Spline) WellFormed() bool {
	n := len(s.points)
	if n == 0 {
		return true
	}
	if n%3 != 1 || s.points[0].Kind != OnCurve {
		return false
	}
	for i := 1; i < n; i += 3 {
		if s.points[i].Kind != OffCurve || s.points[i+1].Kind != OffCurve || s.points[i+2].Kind != OnCurve {
			return false
		}
	}
	return true
}
