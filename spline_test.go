package main

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"honnef.co/go/curve"
)

var ignoreIDs = cmpopts.IgnoreFields(ControlPoint{}, "ID")

func TestSplineDefault(t *testing.T) {
	s := NewDefaultSpline()
	want := []ControlPoint{
		{Pos: Pt(100, 500), Kind: OnCurve, Seq: 0},
		{Pos: Pt(200, 100), Kind: OffCurve, Seq: -1},
		{Pos: Pt(600, 100), Kind: OffCurve, Seq: -1},
		{Pos: Pt(700, 500), Kind: OnCurve, Seq: 3},
	}
	diff(t, want, s.Points(), ignoreIDs)
}

func TestSplineAppendInvariant(t *testing.T) {
	s := NewDefaultSpline()
	for i := 0; i < 10; i++ {
		s.Append(Pt(float64(i)*37, float64(i)*-11), 50)
		if s.Len()%3 != 1 {
			t.Fatalf("after %d appends len = %d", i+1, s.Len())
		}
		if s.At(0).Kind != OnCurve {
			t.Fatalf("first point is %v", s.At(0).Kind)
		}
		if !s.WellFormed() {
			t.Fatalf("spline not well formed after %d appends", i+1)
		}
	}
}

func TestSplineAppendOrder(t *testing.T) {
	s := NewDefaultSpline()
	anchor := s.Append(Pt(300, 300), 50)

	want := []ControlPoint{
		{Pos: Pt(250, 250), Kind: OffCurve, Seq: -1},
		{Pos: Pt(350, 350), Kind: OffCurve, Seq: -1},
		{Pos: Pt(300, 300), Kind: OnCurve, Seq: 6},
	}
	diff(t, want, s.Points()[4:], ignoreIDs)
	if got := s.At(6).ID; got != anchor {
		t.Errorf("Append returned %d, anchor has ID %d", anchor, got)
	}
}

func TestSplineFindNear(t *testing.T) {
	s := NewDefaultSpline()
	v := NewViewport()

	id, ok := s.FindNear(Pt(100, 500), v, 10)
	if !ok || id != s.At(0).ID {
		t.Fatalf("FindNear at first anchor = %d, %v", id, ok)
	}
	if _, ok := s.FindNear(Pt(110, 500), v, 10); ok {
		t.Error("point exactly at the snap distance should not be hit")
	}
	if _, ok := s.FindNear(Pt(400, 300), v, 10); ok {
		t.Error("empty area reported a hit")
	}

	// The snap radius is measured on screen, so at scale 2 the model-space
	// reach halves.
	v = &Viewport{Scale: 2}
	if id, ok := s.FindNear(Pt(206, 1000), v, 10); !ok || id != s.At(0).ID {
		t.Errorf("scaled pick = %d, %v", id, ok)
	}
	if _, ok := s.FindNear(Pt(212, 1000), v, 10); ok {
		t.Error("scaled pick outside the screen radius reported a hit")
	}
}

func TestSplineFindNearFirstMatchWins(t *testing.T) {
	s := NewSpline()
	first := s.Append(Pt(0, 0), 50)
	s.Append(Pt(2, 0), 50)
	v := NewViewport()

	// Closer to the second anchor, but the first one in sequence order is
	// still within range.
	for i := 0; i < 3; i++ {
		id, ok := s.FindNear(Pt(2, 0), v, 10)
		if !ok || id != first {
			t.Fatalf("call %d: FindNear = %d, %v; want %d", i, id, ok, first)
		}
	}
}

func TestSplineMove(t *testing.T) {
	s := NewDefaultSpline()
	id := s.At(0).ID
	if !s.Move(id, Pt(150, 480)) {
		t.Fatal("Move reported a missing point")
	}
	diff(t, Pt(150, 480), s.At(0).Pos)
	diff(t, Pt(200, 100), s.At(1).Pos)
}

func TestSplineRemove(t *testing.T) {
	s := NewDefaultSpline()
	id := s.At(1).ID
	if !s.Remove(id) {
		t.Fatal("Remove reported a missing point")
	}
	if s.Len() != 3 {
		t.Fatalf("len = %d", s.Len())
	}
	if _, ok := s.Get(id); ok {
		t.Error("removed handle still resolves")
	}
	if s.Remove(id) || s.Move(id, Pt(1, 1)) {
		t.Error("stale handle was accepted")
	}
	if s.WellFormed() {
		t.Error("spline with a missing handle reported well formed")
	}
	// Labels keep the value they were created with.
	if got := s.At(2).Seq; got != 3 {
		t.Errorf("last anchor label = %d, want 3", got)
	}
}

func TestSplineIDsNotReused(t *testing.T) {
	s := NewDefaultSpline()
	last := s.At(3).ID
	s.Remove(last)
	id := s.Append(Pt(1, 1), 50)
	if id <= last {
		t.Errorf("new ID %d reuses or precedes removed ID %d", id, last)
	}
}

func TestSplineAppendToEmpty(t *testing.T) {
	s := NewSpline()
	s.Append(Pt(10, 20), 50)
	s.Append(Pt(30, 40), 50)

	want := []ControlPoint{
		{Pos: Pt(10, 20), Kind: OnCurve, Seq: 0},
		{Pos: Pt(-20, -10), Kind: OffCurve, Seq: -1},
		{Pos: Pt(80, 90), Kind: OffCurve, Seq: -1},
		{Pos: Pt(30, 40), Kind: OnCurve, Seq: 3},
	}
	diff(t, want, s.Points(), ignoreIDs)
	if !s.WellFormed() {
		t.Error("spline built from empty is not well formed")
	}
}

func TestSplineLabelsStayUnique(t *testing.T) {
	s := NewDefaultSpline()
	for i := 0; i < 3; i++ {
		s.Remove(s.At(0).ID)
	}
	s.Append(Pt(800, 500), 50)

	var labels []int
	for _, cp := range s.Points() {
		if cp.Kind == OnCurve {
			labels = append(labels, cp.Seq)
		}
	}
	diff(t, []int{3, 6}, labels)
}

func TestSplineBounds(t *testing.T) {
	if _, ok := NewSpline().Bounds(); ok {
		t.Error("empty spline reported bounds")
	}
	b, ok := NewDefaultSpline().Bounds()
	if !ok {
		t.Fatal("no bounds")
	}
	diff(t, curve.Rect{X0: 100, Y0: 100, X1: 700, Y1: 500}, b)
}
