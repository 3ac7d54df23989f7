package garland

import (
	"iter"
	"math"
)

// Circle is used to mark anchors in previews.
type Circle struct {
	Center Point
	Radius float64
}

// Solution from http://spencermortensen.com/articles/bezier-circle/
const circleArmLength = 0.551915024494

// Elements returns the outline of the circle as four cubic arcs, starting at
// the rightmost point.
func (c Circle) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		x, y := c.Center.X, c.Center.Y
		r := c.Radius
		if !yield(MoveTo(Pt(x+r, y))) {
			return
		}
		const n = 4
		const deltaTh = 2.0 * math.Pi / n
		a := circleArmLength
		for ix := 1; ix <= n; ix++ {
			th1 := deltaTh * float64(ix)
			th0 := th1 - deltaTh
			s0, c0 := math.Sincos(th0)
			var s1, c1 float64
			if ix == n {
				s1 = 0.0
				c1 = 1.0
			} else {
				s1, c1 = math.Sincos(th1)
			}
			if !yield(CubicTo(
				Pt(x+r*(c0-a*s0), y+r*(s0+a*c0)),
				Pt(x+r*(c1+a*s1), y+r*(s1-a*c1)),
				Pt(x+r*c1, y+r*s1),
			)) {
				return
			}
		}
		yield(ClosePath())
	}
}

// BoundingBox returns the square enclosing the circle.
func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}
