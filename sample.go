package garland

import (
	"slices"
)

// AnchorFlags records which orientation fields of an [Anchor] are set.
type AnchorFlags uint8

const (
	// HasTangent is set when Anchor.Tangent holds the curve direction.
	HasTangent AnchorFlags = 1 << iota
	// HasFan is set when Anchor.Fan holds a fan angle.
	HasFan
)

// Anchor is a location on the curve where a decorative element is placed.
type Anchor struct {
	Point
	// Distance is the arc-length position of the anchor.
	Distance float64
	// Tangent is the direction of the curve at the anchor, in degrees.
	Tangent float64
	// Fan is the rotation assigned by [FanSampler], in degrees.
	Fan   float64
	Flags AnchorFlags
}

// Sampler extracts up to n anchors from a curve.
//
// All samplers follow the same rules. A non-positive n or a curve of zero
// length produces no anchors. When a curve has fewer natural features than
// requested, the sampler returns fewer anchors; it never pads. Anchors are
// ordered by their arc-length position.
type Sampler interface {
	Sample(ev *Evaluator, n int) []Anchor
}

var (
	_ Sampler = EvenSampler{}
	_ Sampler = ValleySampler{}
	_ Sampler = RowScatterSampler{}
	_ Sampler = NobSampler{}
	_ Sampler = FanSampler{}
	_ Sampler = heroEven(0)
)

// degenerate reports whether a request can't produce any anchors.
func degenerate(ev *Evaluator, n int) bool {
	return n <= 0 || !(ev.Length() > 0)
}

func logShortfall(sampler string, want, got int) {
	if got < want {
		Logger().Debug("fewer features than requested", "sampler", sampler, "requested", want, "found", got)
	}
}

func sortAnchors(as []Anchor) {
	slices.SortStableFunc(as, func(a, b Anchor) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		default:
			return 0
		}
	})
}

// tangentDegrees estimates the curve direction at d by a central difference
// over ±span, clamped to the curve.
func tangentDegrees(ev *Evaluator, d, span float64) float64 {
	if !(span > 0) {
		return ev.TangentAt(d).Degrees()
	}
	a := ev.PointAt(max(d-span, 0))
	b := ev.PointAt(min(d+span, ev.Length()))
	v := b.Sub(a)
	if v.Hypot2() == 0 {
		return ev.TangentAt(d).Degrees()
	}
	return v.Degrees()
}

// EvenSampler places anchors at evenly spaced arc-length fractions of the
// sub-range [From, To] of the curve. The zero value samples the whole curve.
type EvenSampler struct {
	From float64
	To   float64
}

// Sample implements [Sampler]. Anchor i sits at fraction (i+0.5)/n of the
// sub-range. Anchors carry no orientation.
func (s EvenSampler) Sample(ev *Evaluator, n int) []Anchor {
	if degenerate(ev, n) {
		return nil
	}
	from, to := s.From, s.To
	if from == 0 && to == 0 {
		to = 1
	}
	from = min(max(from, 0), 1)
	to = min(max(to, from), 1)

	out := make([]Anchor, n)
	for i := range out {
		f := from + (float64(i)+0.5)/float64(n)*(to-from)
		d := f * ev.Length()
		out[i] = Anchor{Point: ev.PointAt(d), Distance: d}
	}
	return out
}
