package garland

import (
	"math"
)

// ValleySampler finds the low points of the swoops in the hero region, where
// y reaches a local maximum. This is where hanging decorations look natural.
type ValleySampler struct {
	HeroHeight float64
	// Samples is the number of steps of the dense scan over the whole curve.
	Samples int
	// Cutoff discards valleys below Cutoff·HeroHeight.
	Cutoff float64
	// Window is the number of neighbours on each side a valley has to be
	// strictly lower than.
	Window int
	// MinSpacing is the horizontal distance a valley must keep from the
	// previously accepted one.
	MinSpacing float64
}

// NewValleySampler returns a ValleySampler with the default settings.
func NewValleySampler(heroHeight float64) ValleySampler {
	return ValleySampler{
		HeroHeight: heroHeight,
		Samples:    300,
		Cutoff:     0.9,
		Window:     2,
		MinSpacing: 50,
	}
}

// Sample implements [Sampler]. If there are more valleys than n, it picks n of
// them at an even stride. Anchors carry no orientation.
func (s ValleySampler) Sample(ev *Evaluator, n int) []Anchor {
	if degenerate(ev, n) {
		return nil
	}
	limit := s.HeroHeight * s.Cutoff
	pts := ev.Scan(max(s.Samples, 1), 0)

	// Neighbours are taken from the unfiltered scan; dropping the samples
	// below the cutoff first would turn the edges of every gap into
	// spurious maxima.
	w := max(s.Window, 1)
	var dips []Anchor
	for i := w; i < len(pts)-w; i++ {
		if pts[i].Y > limit || !isValley(pts, i, w) {
			continue
		}
		if len(dips) > 0 && math.Abs(pts[i].X-dips[len(dips)-1].X) <= s.MinSpacing {
			continue
		}
		dips = append(dips, Anchor{Point: pts[i].Point, Distance: pts[i].Distance})
	}

	logShortfall("valley", n, len(dips))
	if len(dips) <= n {
		return dips
	}
	out := make([]Anchor, n)
	step := float64(len(dips)) / float64(n)
	for i := range out {
		out[i] = dips[min(int(math.Round(float64(i)*step)), len(dips)-1)]
	}
	return out
}

func isValley(pts []Sample, i, w int) bool {
	for k := 1; k <= w; k++ {
		if !(pts[i].Y > pts[i-k].Y) || !(pts[i].Y > pts[i+k].Y) {
			return false
		}
	}
	return true
}
