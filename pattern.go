package garland

import (
	"fmt"
	"math"
)

// Viewport describes the page a curve is generated for, in pixels. The hero
// region is the top HeroHeight pixels of the page.
type Viewport struct {
	Width      float64
	Height     float64
	HeroHeight float64
}

// Validate reports whether the viewport can be laid out. All dimensions must
// be positive and the hero region must fit on the page.
func (vp Viewport) Validate() error {
	switch {
	case !(vp.Width > 0) || !(vp.Height > 0):
		return fmt.Errorf("%w: size %gx%g", ErrInvalidViewport, vp.Width, vp.Height)
	case !(vp.HeroHeight > 0):
		return fmt.Errorf("%w: hero height %g", ErrInvalidViewport, vp.HeroHeight)
	case vp.HeroHeight > vp.Height:
		return fmt.Errorf("%w: hero height %g exceeds height %g", ErrInvalidViewport, vp.HeroHeight, vp.Height)
	}
	return nil
}

// Style selects the shape of the hero region.
type Style int

const (
	// StyleSwoop drapes the curve between alternating high pins and low dips.
	StyleSwoop Style = iota + 1
	// StyleSwitchback runs the curve across the hero in full-width horizontal
	// passes, alternating direction.
	StyleSwitchback
	// StyleFixedShape rescales a designer-authored curve to the viewport.
	StyleFixedShape
)

var styleNames = map[Style]string{
	StyleSwoop:      "swoop",
	StyleSwitchback: "switchback",
	StyleFixedShape: "fixed-shape",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle returns the style with the given name.
func ParseStyle(name string) (Style, error) {
	for s, n := range styleNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// Breakpoint maps viewports up to and including MaxWidth to Count.
type Breakpoint struct {
	MaxWidth float64 `yaml:"max_width"`
	Count    int     `yaml:"count"`
}

// Breakpoints chooses a count based on the viewport width. Steps are checked
// in order; the first one whose MaxWidth is at least the width wins. Wider
// viewports get Otherwise.
type Breakpoints struct {
	Steps     []Breakpoint `yaml:"steps"`
	Otherwise int          `yaml:"otherwise"`
}

func (bp Breakpoints) Count(width float64) int {
	for _, step := range bp.Steps {
		if width <= step.MaxWidth {
			return step.Count
		}
	}
	return bp.Otherwise
}

// SwoopOptions configures [StyleSwoop]. Fractions are relative to the
// viewport width (Margin) or the hero height (PinY, DipY).
type SwoopOptions struct {
	Margin  float64     `yaml:"margin"`
	PinY    float64     `yaml:"pin_y"`
	DipY    float64     `yaml:"dip_y"`
	Pins    Breakpoints `yaml:"pins"`
	Tension float64     `yaml:"tension"`
}

func (o SwoopOptions) waypoints(vp Viewport) []Point {
	margin := vp.Width * o.Margin
	usable := vp.Width - 2*margin
	pins := max(o.Pins.Count(vp.Width), 2)
	gap := usable / float64(pins-1)
	pinY := vp.HeroHeight * o.PinY
	dipY := vp.HeroHeight * o.DipY

	pts := make([]Point, 0, 2*pins-1)
	for i := range pins {
		x := margin + float64(i)*gap
		pts = append(pts, Pt(x, pinY))
		if i < pins-1 {
			pts = append(pts, Pt(x+gap/2, dipY))
		}
	}
	return pts
}

// SwitchbackOptions configures [StyleSwitchback]. Top and Bottom are the
// heights of the first and last pass as fractions of the hero height.
type SwitchbackOptions struct {
	Margin  float64     `yaml:"margin"`
	Top     float64     `yaml:"top"`
	Bottom  float64     `yaml:"bottom"`
	Passes  Breakpoints `yaml:"passes"`
	Tension float64     `yaml:"tension"`
}

func (o SwitchbackOptions) waypoints(vp Viewport) []Point {
	left := vp.Width * o.Margin
	right := vp.Width - left
	passes := max(o.Passes.Count(vp.Width), 1)
	top := vp.HeroHeight * o.Top
	bottom := vp.HeroHeight * o.Bottom
	y := func(k int) float64 {
		if passes == 1 {
			return top
		}
		return top + float64(k)*(bottom-top)/float64(passes-1)
	}

	// The first pass gets an explicit midpoint; without it the clamped
	// spline start bulges on wide viewports.
	pts := []Point{Pt(left, top), Pt((left+right)/2, top), Pt(right, top)}
	side, other := right, left
	for k := 1; k < passes; k++ {
		pts = append(pts, Pt(side, y(k)), Pt(other, y(k)))
		side, other = other, side
	}
	return pts
}

// ShapeSegment is a cubic segment relative to its own start point, like the
// lowercase "c" command of SVG paths.
type ShapeSegment struct {
	C1  Vec2 `yaml:"c1"`
	C2  Vec2 `yaml:"c2"`
	End Vec2 `yaml:"end"`
}

// Shape is a designer-authored hero curve for [StyleFixedShape].
//
// The segments are authored for a viewport RefWidth pixels wide and are scaled
// proportionally to the actual width. Viewports narrower than NarrowWidth get
// an extra vertical stretch that grows linearly up to MaxStretch at NarrowMin.
// The curve is prefixed with a straight lead-in of LeadIn reference pixels
// that extends backwards along the initial tangent.
type Shape struct {
	RefWidth    float64        `yaml:"ref_width"`
	Start       Point          `yaml:"start"`
	Segments    []ShapeSegment `yaml:"segments"`
	ExitTangent Vec2           `yaml:"exit_tangent"`
	LeadIn      float64        `yaml:"lead_in"`
	MaxStretch  float64        `yaml:"max_stretch"`
	NarrowWidth float64        `yaml:"narrow_width"`
	NarrowMin   float64        `yaml:"narrow_min"`
}

// Stretch returns the additional vertical scale factor for the given width,
// in the range [0, MaxStretch].
func (s Shape) Stretch(width float64) float64 {
	switch {
	case s.MaxStretch <= 0 || width >= s.NarrowWidth:
		return 0
	case width <= s.NarrowMin || s.NarrowWidth <= s.NarrowMin:
		return s.MaxStretch
	default:
		return s.MaxStretch * (s.NarrowWidth - width) / (s.NarrowWidth - s.NarrowMin)
	}
}

// Transform returns the transform mapping reference coordinates to the
// viewport of the given width.
func (s Shape) Transform(width float64) Affine {
	sc := width / s.RefWidth
	return Scale(sc, sc*(1+s.Stretch(width)))
}

// Curve returns the shape laid out for the given width, including the lead-in.
func (s Shape) Curve(width float64) Curve {
	if !(s.RefWidth > 0) || len(s.Segments) == 0 {
		return nil
	}
	c := make(Curve, 0, len(s.Segments)+1)
	p := s.Start
	for _, seg := range s.Segments {
		c = append(c, CubicBez{p, p.Translate(seg.C1), p.Translate(seg.C2), p.Translate(seg.End)})
		p = p.Translate(seg.End)
	}
	c = c.Transform(s.Transform(width))

	if s.LeadIn > 0 {
		t0, _ := c[0].Tangents()
		if t0.Hypot2() > 0 {
			back := t0.Normalize().Mul(-s.LeadIn * width / s.RefWidth)
			c = append(Curve{Line(c[0].P0.Translate(back), c[0].P0)}, c...)
		}
	}
	return c
}

// exit returns the shape's exit direction in viewport space.
func (s Shape) exit(width float64) Vec2 {
	aff := s.Transform(width)
	return Vec(s.ExitTangent.X*aff.N0, s.ExitTangent.Y*aff.N3)
}

// TailOptions configures the extension that continues the curve down the
// page below the hero region. The tail is only generated when more than
// MinHeight pixels remain below the hero.
type TailOptions struct {
	MinHeight float64 `yaml:"min_height"`
	// Spacing is the approximate vertical distance between tail waypoints.
	Spacing   float64 `yaml:"spacing"`
	MinCurves int     `yaml:"min_curves"`
	Margin    float64 `yaml:"margin"`
	// Near and Far are the x positions the tail alternates between, as
	// fractions of the usable width.
	Near    float64 `yaml:"near"`
	Far     float64 `yaml:"far"`
	Tension float64 `yaml:"tension"`
}

// curve builds the tail starting at from. If exit is non-zero, the first
// control point is moved onto the exit ray so that the join is smooth.
func (o TailOptions) curve(vp Viewport, from Point, exit Vec2) Curve {
	below := vp.Height - vp.HeroHeight
	if below <= o.MinHeight {
		return nil
	}
	curves := max(o.MinCurves, int(math.Round(below/o.Spacing)), 1)
	segH := below / float64(curves)
	margin := vp.Width * o.Margin
	usable := vp.Width - 2*margin

	// Bend towards the side opposite to where the hero ended.
	sides := [2]float64{margin + usable*o.Near, margin + usable*o.Far}
	if from.X < vp.Width/2 {
		sides[0], sides[1] = sides[1], sides[0]
	}

	pts := make([]Point, 0, curves+1)
	pts = append(pts, from)
	for i := range curves {
		pts = append(pts, Pt(sides[i%2], vp.HeroHeight+float64(i+1)*segH))
	}
	c := CatmullRom(pts, o.Tension)

	if exit.Hypot2() > 0 {
		if d := c[0].P1.Distance(c[0].P0); d > 0 {
			c[0].P1 = c[0].P0.Translate(exit.Normalize().Mul(d))
		}
	}
	return c
}

// Path is the output of [Generator.Generate]. The first HeroSegments segments
// of Curve make up the hero region; the rest is the tail.
type Path struct {
	Curve        Curve
	HeroSegments int
}

// Hero returns the hero part of the curve.
func (p Path) Hero() Curve {
	return p.Curve[:p.HeroSegments]
}

// Tail returns the tail part of the curve, which may be empty.
func (p Path) Tail() Curve {
	return p.Curve[p.HeroSegments:]
}

// Generator turns viewports into curves. All style-specific constants are
// carried as data; the zero value is not useful, start from
// [DefaultGenerator].
//
// The options carry yaml tags, so a configuration file can be decoded over
// the defaults.
type Generator struct {
	Swoop      SwoopOptions      `yaml:"swoop"`
	Switchback SwitchbackOptions `yaml:"switchback"`
	Shape      Shape             `yaml:"shape"`
	Tail       TailOptions       `yaml:"tail"`
}

// DefaultGenerator returns the stock generator configuration.
func DefaultGenerator() Generator {
	return Generator{
		Swoop: SwoopOptions{
			Margin: 0.06,
			PinY:   0.2,
			DipY:   0.55,
			Pins: Breakpoints{
				Steps:     []Breakpoint{{640, 2}, {1024, 3}},
				Otherwise: 5,
			},
			Tension: 0.7,
		},
		Switchback: SwitchbackOptions{
			Margin: 0.08,
			Top:    0.12,
			Bottom: 0.85,
			Passes: Breakpoints{
				Steps:     []Breakpoint{{640, 3}, {1024, 4}},
				Otherwise: 5,
			},
			Tension: 0.75,
		},
		Shape: DefaultShape(),
		Tail: TailOptions{
			MinHeight: 200,
			Spacing:   800,
			MinCurves: 2,
			Margin:    0.06,
			Near:      0.2,
			Far:       0.8,
			Tension:   0.6,
		},
	}
}

// DefaultShape returns the stock fixed shape: a dip, a raised nob and a
// second dip, authored at 1440 pixels, leaving towards the bottom right.
func DefaultShape() Shape {
	return Shape{
		RefWidth: 1440,
		Start:    Pt(40, 220),
		Segments: []ShapeSegment{
			{C1: Vec(160, 0), C2: Vec(220, 200), End: Vec(380, 200)},
			{C1: Vec(160, 0), C2: Vec(180, -220), End: Vec(300, -220)},
			{C1: Vec(120, 0), C2: Vec(160, 260), End: Vec(320, 260)},
			{C1: Vec(160, 0), C2: Vec(260, -100), End: Vec(360, 100)},
		},
		ExitTangent: Vec(100, 200),
		LeadIn:      120,
		MaxStretch:  0.12,
		NarrowWidth: 768,
		NarrowMin:   375,
	}
}

// Generate builds the curve for a viewport in the given style.
func (g Generator) Generate(vp Viewport, style Style) (Path, error) {
	if err := vp.Validate(); err != nil {
		return Path{}, err
	}
	if !(g.Tail.Spacing > 0) {
		return Path{}, fmt.Errorf("%w: spacing %g", ErrInvalidTail, g.Tail.Spacing)
	}

	var hero Curve
	var exit Vec2
	switch style {
	case StyleSwoop:
		hero = CatmullRom(g.Swoop.waypoints(vp), g.Swoop.Tension)
	case StyleSwitchback:
		hero = CatmullRom(g.Switchback.waypoints(vp), g.Switchback.Tension)
	case StyleFixedShape:
		hero = g.Shape.Curve(vp.Width)
		if len(hero) == 0 {
			return Path{}, ErrInvalidShape
		}
		exit = g.Shape.exit(vp.Width)
	default:
		return Path{}, fmt.Errorf("%w: %s", ErrUnknownStyle, style)
	}

	tail := g.Tail.curve(vp, hero.End(), exit)
	c := make(Curve, 0, len(hero)+len(tail))
	c = append(c, hero...)
	c = append(c, tail...)

	Logger().Debug("generated curve",
		"style", style,
		"width", vp.Width,
		"height", vp.Height,
		"hero_height", vp.HeroHeight,
		"hero_segments", len(hero),
		"tail_segments", len(tail))
	return Path{Curve: c, HeroSegments: len(hero)}, nil
}
