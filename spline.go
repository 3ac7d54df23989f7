package garland

// DefaultTension is the tension used by [CatmullRom] callers that have no
// preference of their own.
const DefaultTension = 0.5

// CatmullRom fits a Catmull-Rom spline through pts and returns it as a curve of
// cubic Béziers, one segment per pair of consecutive points.
//
// Tension controls how tight the curve is. At 0 every segment is a straight
// line; at 1 the curve uses the full Catmull-Rom tangents. The neighbours of the
// first and last point are clamped to the points themselves.
//
// The curve passes through every point and is C¹ continuous at the interior
// points. Fewer than two points produce an empty curve.
func CatmullRom(pts []Point, tension float64) Curve {
	if len(pts) < 2 {
		return nil
	}
	k := tension / 3
	out := make(Curve, 0, len(pts)-1)
	for i := range len(pts) - 1 {
		p0 := pts[max(0, i-1)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(len(pts)-1, i+2)]

		cp1 := p1.Translate(p2.Sub(p0).Mul(k))
		cp2 := p2.Translate(p3.Sub(p1).Mul(-k))
		out = append(out, CubicBez{p1, cp1, cp2, p2})
	}
	return out
}
