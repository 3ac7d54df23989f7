package garland

import (
	"gonum.org/v1/gonum/floats"
)

// NobSampler finds the bumps of the curve: significant local minima of y,
// where the curve rises up to a crest before falling again.
type NobSampler struct {
	// MaxLength limits the scan to the first MaxLength of arc length. Zero
	// scans the whole curve.
	MaxLength float64
	Samples   int
	// Window is the number of samples on each side a nob has to be the
	// lowest y of.
	Window int
	// A nob is significant if the highest y within SignificanceWindow
	// samples on each side lies more than MinDepth below it.
	SignificanceWindow int
	MinDepth           float64
	// Nobs closer than MergeFraction of the scanned length are merged,
	// keeping the one with the lower y.
	MergeFraction float64
}

// NewNobSampler returns a NobSampler with the default settings.
func NewNobSampler(maxLength float64) NobSampler {
	return NobSampler{
		MaxLength:          maxLength,
		Samples:            2000,
		Window:             20,
		SignificanceWindow: 60,
		MinDepth:           15,
		MergeFraction:      0.015,
	}
}

// Sample implements [Sampler]. It returns one anchor per nob, with tangent,
// keeping the first n.
func (s NobSampler) Sample(ev *Evaluator, n int) []Anchor {
	if degenerate(ev, n) {
		return nil
	}
	pts := ev.Scan(max(s.Samples, 2), s.MaxLength)
	length := pts[len(pts)-1].Distance
	ys := make([]float64, len(pts))
	for i, p := range pts {
		ys[i] = p.Y
	}

	mergeDist := s.MergeFraction * length
	var nobs []Sample
	for i := 1; i < len(pts)-1; i++ {
		if !isCrest(ys, i, max(s.Window, 1)) {
			continue
		}
		lo, hi := window(len(ys), i, max(s.SignificanceWindow, 1))
		if floats.Max(ys[lo:hi])-ys[i] <= s.MinDepth {
			continue
		}
		if k := len(nobs) - 1; k >= 0 && pts[i].Distance-nobs[k].Distance < mergeDist {
			if pts[i].Y < nobs[k].Y {
				nobs[k] = pts[i]
			}
			continue
		}
		nobs = append(nobs, pts[i])
	}

	logShortfall("nob", n, len(nobs))
	out := make([]Anchor, 0, min(n, len(nobs)))
	for _, p := range nobs[:min(n, len(nobs))] {
		out = append(out, Anchor{
			Point:    p.Point,
			Distance: p.Distance,
			Tangent:  tangentDegrees(ev, p.Distance, length/float64(len(pts)-1)),
			Flags:    HasTangent,
		})
	}
	return out
}

// window returns the half-open index range [i-r, i+r] clamped to [0, n). A
// negative radius is treated as zero.
func window(n, i, r int) (int, int) {
	r = max(r, 0)
	return max(i-r, 0), min(i+r+1, n)
}

// isCrest reports whether ys[i] is strictly below every earlier value and no
// higher than every later value within ±w. The asymmetry picks exactly one
// sample on flat crests.
func isCrest(ys []float64, i, w int) bool {
	lo, hi := window(len(ys), i, w)
	for j := lo; j < i; j++ {
		if !(ys[i] < ys[j]) {
			return false
		}
	}
	for j := i + 1; j < hi; j++ {
		if ys[i] > ys[j] {
			return false
		}
	}
	return true
}
