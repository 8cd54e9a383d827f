package main

import "honnef.co/go/curve"

// Point is a 2D position. The same type is used for model space and screen
// space; which one a value lives in is decided by where it came from.
type Point = curve.Point

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return curve.Pt(x, y)
}
