package garland

import (
	"fmt"
	"io"
)

// Strategy selects the [Sampler] used by [Generator.Layout].
type Strategy int

const (
	// StrategyEven spaces anchors evenly along the whole curve.
	StrategyEven Strategy = iota + 1
	// StrategyHeroEven spaces anchors evenly along the hero region.
	StrategyHeroEven
	// StrategyValley hangs anchors in the valleys of the hero region.
	StrategyValley
	// StrategyRowScatter scatters anchors over the rows of a zigzag.
	StrategyRowScatter
	// StrategyNob places anchors on the bumps of the hero region.
	StrategyNob
	// StrategyFan fans anchors out around the first valley.
	StrategyFan
)

var strategyNames = map[Strategy]string{
	StrategyEven:       "even",
	StrategyHeroEven:   "hero-even",
	StrategyValley:     "valley",
	StrategyRowScatter: "row-scatter",
	StrategyNob:        "nob",
	StrategyFan:        "fan",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Sampler returns the sampler for the strategy, configured for a viewport
// whose hero region spans the first heroLength of the curve.
func (s Strategy) Sampler(vp Viewport, heroLength float64) (Sampler, error) {
	switch s {
	case StrategyEven:
		return EvenSampler{}, nil
	case StrategyHeroEven:
		return heroEven(heroLength), nil
	case StrategyValley:
		return NewValleySampler(vp.HeroHeight), nil
	case StrategyRowScatter:
		return NewRowScatterSampler(heroLength), nil
	case StrategyNob:
		return NewNobSampler(heroLength), nil
	case StrategyFan:
		return NewFanSampler(vp), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
}

// heroEven is an [EvenSampler] over the first heroEven pixels of arc length.
// The fraction is resolved when sampling, once the total length is known.
type heroEven float64

func (h heroEven) Sample(ev *Evaluator, n int) []Anchor {
	if degenerate(ev, n) {
		return nil
	}
	to := 1.0
	if h > 0 {
		to = min(float64(h)/ev.Length(), 1)
	}
	return EvenSampler{From: 0, To: to}.Sample(ev, n)
}

// Layout is the result of one layout pass.
type Layout struct {
	Viewport Viewport
	Style    Style
	Strategy Strategy
	Path     Path
	// Length is the total arc length of the curve.
	Length float64
	// HeroLength is the arc length of the hero region.
	HeroLength float64
	Anchors    []Anchor
}

// Layout generates the curve for vp and samples n anchors from it.
func (g Generator) Layout(vp Viewport, style Style, strategy Strategy, n int) (Layout, error) {
	path, err := g.Generate(vp, style)
	if err != nil {
		return Layout{}, err
	}
	ev := NewEvaluator(path.Curve)
	heroLength := ev.SegmentEnd(path.HeroSegments - 1)
	sampler, err := strategy.Sampler(vp, heroLength)
	if err != nil {
		return Layout{}, err
	}
	return Layout{
		Viewport:   vp,
		Style:      style,
		Strategy:   strategy,
		Path:       path,
		Length:     ev.Length(),
		HeroLength: heroLength,
		Anchors:    sampler.Sample(ev, n),
	}, nil
}

// Bounds returns a rectangle containing both the viewport and the whole curve,
// which may extend past the left edge of the page.
func (l Layout) Bounds() Rect {
	return Rect{0, 0, l.Viewport.Width, l.Viewport.Height}.Union(l.Path.Curve.BoundingBox())
}

// SVG returns the curve as SVG path commands.
func (l Layout) SVG(opts SVGOptions) string {
	return l.Path.Curve.SVG(opts)
}

// WriteSVG writes the curve as SVG path commands to w.
func (l Layout) WriteSVG(w io.Writer, opts SVGOptions) error {
	return l.Path.Curve.WriteSVG(w, opts)
}
