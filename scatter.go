package garland

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// RowScatterSampler scatters anchors over a zigzagging hero curve, such as
// the one produced by [StyleSwitchback].
//
// The hero part of the curve is split into rows wherever its horizontal
// direction reverses. The observed x range is divided into n columns, and
// every anchor is assigned a row and a column; it lands on the point of its
// row closest to the column's centre. Columns are visited in stride-2 order
// so that consecutive anchors don't line up along a diagonal.
type RowScatterSampler struct {
	// HeroLength is the arc length of the hero region. Zero scans the whole
	// curve.
	HeroLength float64
	Samples    int
	// TangentSpan is the central difference step, as a fraction of the
	// scanned length.
	TangentSpan float64
}

// NewRowScatterSampler returns a RowScatterSampler with the default settings.
func NewRowScatterSampler(heroLength float64) RowScatterSampler {
	return RowScatterSampler{
		HeroLength:  heroLength,
		Samples:     400,
		TangentSpan: 0.002,
	}
}

// Sample implements [Sampler]. Anchors carry the tangent angle.
func (s RowScatterSampler) Sample(ev *Evaluator, n int) []Anchor {
	if degenerate(ev, n) {
		return nil
	}
	pts := ev.Scan(max(s.Samples, 2), s.HeroLength)
	length := pts[len(pts)-1].Distance

	rows := splitRows(pts)
	xs := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
	}
	edges := floats.Span(make([]float64, n+1), floats.Min(xs), floats.Max(xs))

	out := make([]Anchor, 0, n)
	for i, col := range strideOrder(n) {
		var row []Sample
		if n <= len(rows) {
			row = rows[i*len(rows)/n]
		} else {
			row = rows[i%len(rows)]
		}
		x := (edges[col] + edges[col+1]) / 2

		best := row[0]
		for _, p := range row[1:] {
			if math.Abs(p.X-x) < math.Abs(best.X-x) {
				best = p
			}
		}
		out = append(out, Anchor{
			Point:    best.Point,
			Distance: best.Distance,
			Tangent:  tangentDegrees(ev, best.Distance, s.TangentSpan*length),
			Flags:    HasTangent,
		})
	}
	sortAnchors(out)
	return out
}

// splitRows splits samples into runs of constant horizontal direction. A
// sample where the direction reverses starts a new row. Steps without
// horizontal movement keep the previous direction.
func splitRows(pts []Sample) [][]Sample {
	var rows [][]Sample
	start := 0
	dir := 0.0
	for i := 1; i < len(pts); i++ {
		dx := pts[i].X - pts[i-1].X
		if dx == 0 {
			continue
		}
		sign := math.Copysign(1, dx)
		if dir != 0 && sign != dir {
			rows = append(rows, pts[start:i])
			start = i - 1
		}
		dir = sign
	}
	return append(rows, pts[start:])
}

// strideOrder returns 0, 2, 4, … modulo n, moving on to the next unvisited
// column whenever a column repeats. Every column appears exactly once.
func strideOrder(n int) []int {
	order := make([]int, 0, n)
	seen := make([]bool, n)
	c := 0
	for len(order) < n {
		for seen[c] {
			c = (c + 1) % n
		}
		order = append(order, c)
		seen[c] = true
		c = (c + 2) % n
	}
	return order
}
