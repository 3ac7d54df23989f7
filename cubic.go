package garland

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Line returns a cubic Bézier that traces the straight line from p0 to p1,
// with control points at the thirds so that the parametrization is uniform.
func Line(p0, p1 Point) CubicBez {
	return CubicBez{p0, p0.Lerp(p1, 1.0/3.0), p0.Lerp(p1, 2.0/3.0), p1}
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv evaluates the first derivative of the curve at t.
func (cb CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d01 := cb.P1.Sub(cb.P0).Mul(3 * mt * mt)
	d12 := cb.P2.Sub(cb.P1).Mul(6 * mt * t)
	d23 := cb.P3.Sub(cb.P2).Mul(3 * t * t)
	return d01.Add(d12).Add(d23)
}

func (cb CubicBez) Start() Point {
	return cb.P0
}

func (cb CubicBez) End() Point {
	return cb.P3
}

// Tangents returns the start and end tangents of the curve.
//
// This version is robust to control points coinciding with end points, as
// happens for segments built with zero tension.
func (cb CubicBez) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	d01 := cb.P1.Sub(cb.P0)
	var d0, d1 Vec2
	if d01.Hypot2() > epsilon {
		d0 = d01
	} else {
		d02 := cb.P2.Sub(cb.P0)
		if d02.Hypot2() > epsilon {
			d0 = d02
		} else {
			d0 = cb.P3.Sub(cb.P0)
		}
	}
	d23 := cb.P3.Sub(cb.P2)
	if d23.Hypot2() > epsilon {
		d1 = d23
	} else {
		d13 := cb.P3.Sub(cb.P1)
		if d13.Hypot2() > epsilon {
			d1 = d13
		} else {
			d1 = cb.P3.Sub(cb.P0)
		}
	}
	return d0, d1
}

func (cb CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: cb.P0.Transform(aff),
		P1: cb.P1.Transform(aff),
		P2: cb.P2.Transform(aff),
		P3: cb.P3.Transform(aff),
	}
}
