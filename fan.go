package garland

// FanSampler gathers anchors around the first valley of the hero region and
// spreads them out like a fan: the anchors are equally spaced along the curve,
// centred on the valley, and rotated by angles evenly distributed across
// Spread degrees.
type FanSampler struct {
	HeroHeight float64
	// Width is the viewport width, used to cap the spacing.
	Width   float64
	Samples int
	// Rise is the number of consecutive samples y has to increase for before
	// a decrease counts as a valley.
	Rise int
	// Spread is the total fan angle in degrees.
	Spread float64
	// Anchors are SpacingFraction of the curve length apart, but at most
	// MaxSpacing of the viewport width.
	SpacingFraction float64
	MaxSpacing      float64
}

// NewFanSampler returns a FanSampler with the default settings.
func NewFanSampler(vp Viewport) FanSampler {
	return FanSampler{
		HeroHeight:      vp.HeroHeight,
		Width:           vp.Width,
		Samples:         500,
		Rise:            20,
		Spread:          80,
		SpacingFraction: 0.015,
		MaxSpacing:      0.05,
	}
}

// Sample implements [Sampler]. The first anchor gets +Spread/2, the last
// −Spread/2. A curve without a valley in the hero region yields no anchors.
func (s FanSampler) Sample(ev *Evaluator, n int) []Anchor {
	if degenerate(ev, n) {
		return nil
	}
	valley, ok := s.valley(ev)
	if !ok {
		logShortfall("fan", n, 0)
		return nil
	}

	spacing := s.SpacingFraction * ev.Length()
	if s.Width > 0 && s.MaxSpacing > 0 {
		spacing = min(spacing, s.MaxSpacing*s.Width)
	}
	center := float64(n-1) / 2

	out := make([]Anchor, n)
	for i := range out {
		d := valley + (float64(i)-center)*spacing
		d = min(max(d, 0), ev.Length())
		fan := 0.0
		if n > 1 {
			fan = s.Spread/2 - float64(i)*s.Spread/float64(n-1)
		}
		out[i] = Anchor{Point: ev.PointAt(d), Distance: d, Fan: fan, Flags: HasFan}
	}
	return out
}

// valley scans forward until y leaves the hero region and returns the
// arc-length position of the first valley.
func (s FanSampler) valley(ev *Evaluator) (float64, bool) {
	pts := ev.Scan(max(s.Samples, 2), 0)
	rise := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].Y > s.HeroHeight {
			break
		}
		switch dy := pts[i].Y - pts[i-1].Y; {
		case dy > 0:
			rise++
		case dy < 0:
			if rise >= s.Rise {
				return pts[i-1].Distance, true
			}
			rise = 0
		}
	}
	return 0, false
}
