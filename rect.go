package garland

import (
	"math"
)

type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate expands the rectangle by width on both sides horizontally and by
// height vertically.
func (r Rect) Inflate(width, height float64) Rect {
	r = r.Abs()
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// Expand returns the smallest rectangle with integer coordinates that
// contains r.
func (r Rect) Expand() Rect {
	r = r.Abs()
	return Rect{
		X0: math.Floor(r.X0),
		Y0: math.Floor(r.Y0),
		X1: math.Ceil(r.X1),
		Y1: math.Ceil(r.Y1),
	}
}

// ControlBox returns the bounding box of the segment's control polygon, which
// contains the segment.
func (cb CubicBez) ControlBox() Rect {
	return NewRectFromPoints(cb.P0, cb.P0).
		UnionPoint(cb.P1).
		UnionPoint(cb.P2).
		UnionPoint(cb.P3)
}

// BoundingBox returns a rectangle containing the whole curve. It is computed
// from the control points and may be larger than the tightest box. An empty
// curve has a zero bounding box.
func (c Curve) BoundingBox() Rect {
	if len(c) == 0 {
		return Rect{}
	}
	r := c[0].ControlBox()
	for _, seg := range c[1:] {
		r = r.Union(seg.ControlBox())
	}
	return r
}
