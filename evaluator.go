package garland

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// FlattenSteps is the number of uniform parameter steps each segment is
// flattened into when measuring arc length.
const FlattenSteps = 64

// Evaluator answers arc-length queries on a curve.
//
// Cubic Béziers have no closed form for their arc length, so the evaluator
// flattens every segment into [FlattenSteps] straight steps and accumulates
// their lengths into a table. Positions are still evaluated on the cubic
// itself, so every returned point lies exactly on the curve.
//
// An Evaluator is immutable and meant to be built once per layout pass.
type Evaluator struct {
	curve Curve
	// ends[i] is the arc length at the end of segment i.
	ends []float64
	// steps[i][j] is the arc length from the start of segment i to parameter
	// j/FlattenSteps.
	steps [][FlattenSteps + 1]float64
}

// NewEvaluator builds the arc-length table for c.
func NewEvaluator(c Curve) *Evaluator {
	ev := &Evaluator{
		curve: c,
		ends:  make([]float64, len(c)),
		steps: make([][FlattenSteps + 1]float64, len(c)),
	}
	var d [FlattenSteps + 1]float64
	for i, seg := range c {
		prev := seg.P0
		for j := 1; j <= FlattenSteps; j++ {
			p := seg.Eval(float64(j) / FlattenSteps)
			d[j] = p.Distance(prev)
			prev = p
		}
		floats.CumSum(ev.steps[i][:], d[:])
		ev.ends[i] = ev.steps[i][FlattenSteps]
	}
	floats.CumSum(ev.ends, ev.ends)
	return ev
}

// Curve returns the curve being evaluated.
func (ev *Evaluator) Curve() Curve {
	return ev.curve
}

// Length returns the total arc length of the curve.
func (ev *Evaluator) Length() float64 {
	if len(ev.ends) == 0 {
		return 0
	}
	return ev.ends[len(ev.ends)-1]
}

// SegmentEnd returns the arc length at the end of segment i. Indices are
// clamped to the valid range; for an empty curve it returns 0.
func (ev *Evaluator) SegmentEnd(i int) float64 {
	if len(ev.ends) == 0 || i < 0 {
		return 0
	}
	return ev.ends[min(i, len(ev.ends)-1)]
}

// ParamAt returns the segment index and the parameter within that segment at
// arc length d. d is clamped to [0, Length].
func (ev *Evaluator) ParamAt(d float64) (int, float64) {
	n := len(ev.curve)
	if n == 0 {
		return 0, 0
	}
	if !(d > 0) {
		return 0, 0
	}
	if d >= ev.Length() {
		return n - 1, 1
	}
	// The first segment whose end lies at or beyond d owns it.
	i := sort.SearchFloat64s(ev.ends, d)
	local := d
	if i > 0 {
		local -= ev.ends[i-1]
	}

	table := &ev.steps[i]
	j := sort.SearchFloat64s(table[1:], local)
	// table[j] ≤ local ≤ table[j+1]
	lo, hi := table[j], table[min(j+1, FlattenSteps)]
	frac := 0.0
	if hi > lo {
		frac = (local - lo) / (hi - lo)
	}
	return i, (float64(j) + min(max(frac, 0), 1)) / FlattenSteps
}

// PointAt returns the point at arc length d from the start of the curve. d is
// clamped to [0, Length]. An empty curve yields the zero point.
func (ev *Evaluator) PointAt(d float64) Point {
	if len(ev.curve) == 0 {
		return Point{}
	}
	i, t := ev.ParamAt(d)
	if t == 1 && i == len(ev.curve)-1 {
		return ev.curve.End()
	}
	return ev.curve[i].Eval(t)
}

// TangentAt returns the first derivative of the curve at arc length d. The
// magnitude depends on the parametrization; only the direction is
// meaningful.
func (ev *Evaluator) TangentAt(d float64) Vec2 {
	if len(ev.curve) == 0 {
		return Vec2{}
	}
	i, t := ev.ParamAt(d)
	v := ev.curve[i].Deriv(t)
	if v.Hypot2() == 0 {
		t0, t1 := ev.curve[i].Tangents()
		if t < 0.5 {
			return t0
		}
		return t1
	}
	return v
}

// Sample is a point on the curve together with its arc-length position.
type Sample struct {
	Point
	Distance float64
}

// Scan returns n+1 evenly spaced samples covering [0, min(maxDist, Length)].
// A non-positive maxDist scans the whole curve.
func (ev *Evaluator) Scan(n int, maxDist float64) []Sample {
	if n < 1 {
		n = 1
	}
	end := ev.Length()
	if maxDist > 0 && maxDist < end {
		end = maxDist
	}
	out := make([]Sample, n+1)
	for i := range out {
		d := end * float64(i) / float64(n)
		out[i] = Sample{ev.PointAt(d), d}
	}
	return out
}
