package garland

import (
	"math"
	"testing"
)

func allSamplers(vp Viewport, heroLength float64) map[string]Sampler {
	return map[string]Sampler{
		"even":        EvenSampler{},
		"hero-even":   heroEven(heroLength),
		"valley":      NewValleySampler(vp.HeroHeight),
		"row-scatter": NewRowScatterSampler(heroLength),
		"nob":         NewNobSampler(heroLength),
		"fan":         NewFanSampler(vp),
	}
}

func TestEvenSampler(t *testing.T) {
	ev := NewEvaluator(Curve{Line(Pt(0, 0), Pt(100, 0))})

	got := EvenSampler{}.Sample(ev, 4)
	if len(got) != 4 {
		t.Fatalf("got %d anchors, want 4", len(got))
	}
	for i, want := range []float64{12.5, 37.5, 62.5, 87.5} {
		if math.Abs(got[i].Distance-want) > 1e-9 {
			t.Errorf("anchor %d at distance %g, want %g", i, got[i].Distance, want)
		}
		assertNear(t, got[i].Point, Pt(want, 0), 1e-9)
		if got[i].Flags != 0 {
			t.Errorf("anchor %d has flags %b, want none", i, got[i].Flags)
		}
	}

	got = EvenSampler{From: 0.5, To: 1}.Sample(ev, 2)
	if len(got) != 2 {
		t.Fatalf("got %d anchors, want 2", len(got))
	}
	assertNear(t, got[0].Point, Pt(62.5, 0), 1e-9)
	assertNear(t, got[1].Point, Pt(87.5, 0), 1e-9)

	// out of range fractions are clamped
	got = EvenSampler{From: -1, To: 0.5}.Sample(ev, 1)
	assertNear(t, got[0].Point, Pt(25, 0), 1e-9)
}

func TestHeroEven(t *testing.T) {
	ev := NewEvaluator(Curve{Line(Pt(0, 0), Pt(100, 0)), Line(Pt(100, 0), Pt(100, 300))})

	got := heroEven(100).Sample(ev, 2)
	if len(got) != 2 {
		t.Fatalf("got %d anchors, want 2", len(got))
	}
	assertNear(t, got[0].Point, Pt(25, 0), 1e-9)
	assertNear(t, got[1].Point, Pt(75, 0), 1e-9)

	// A hero longer than the curve covers the whole curve.
	got = heroEven(1000).Sample(ev, 1)
	assertNear(t, got[0].Point, Pt(100, 100), 1e-9)
}

func TestSamplersNonPositiveCount(t *testing.T) {
	vp := Viewport{Width: 1024, Height: 3000, HeroHeight: 800}
	p, err := DefaultGenerator().Generate(vp, StyleSwoop)
	if err != nil {
		t.Fatal(err)
	}
	ev := NewEvaluator(p.Curve)
	for name, s := range allSamplers(vp, ev.SegmentEnd(p.HeroSegments-1)) {
		for _, n := range []int{0, -3} {
			if got := s.Sample(ev, n); got != nil {
				t.Errorf("%s: got %d anchors for n=%d, want none", name, len(got), n)
			}
		}
	}
}

func TestSamplersZeroLength(t *testing.T) {
	vp := Viewport{Width: 1024, Height: 3000, HeroHeight: 800}
	curves := map[string]Curve{
		"empty": nil,
		"point": {{Pt(5, 5), Pt(5, 5), Pt(5, 5), Pt(5, 5)}},
	}
	for cname, c := range curves {
		ev := NewEvaluator(c)
		for name, s := range allSamplers(vp, 0) {
			if got := s.Sample(ev, 3); got != nil {
				t.Errorf("%s on %s curve: got %v, want no anchors", name, cname, got)
			}
		}
	}
}

func TestSamplersOnCurve(t *testing.T) {
	g := DefaultGenerator()
	for _, style := range []Style{StyleSwoop, StyleSwitchback, StyleFixedShape} {
		vp := Viewport{Width: 1024, Height: 3000, HeroHeight: 800}
		p, err := g.Generate(vp, style)
		if err != nil {
			t.Fatal(err)
		}
		ev := NewEvaluator(p.Curve)
		for name, s := range allSamplers(vp, ev.SegmentEnd(p.HeroSegments-1)) {
			anchors := s.Sample(ev, 5)
			if len(anchors) > 5 {
				t.Errorf("%s/%s: got %d anchors, want at most 5", style, name, len(anchors))
			}
			for i, a := range anchors {
				if a.Distance < 0 || a.Distance > ev.Length() {
					t.Errorf("%s/%s: anchor %d at distance %g outside [0, %g]", style, name, i, a.Distance, ev.Length())
				}
				assertNear(t, a.Point, ev.PointAt(a.Distance), 1e-9)
				if i > 0 && a.Distance < anchors[i-1].Distance {
					t.Errorf("%s/%s: anchor %d at %g comes before anchor %d at %g",
						style, name, i, a.Distance, i-1, anchors[i-1].Distance)
				}
			}
		}
	}
}

func TestSortAnchors(t *testing.T) {
	as := []Anchor{{Distance: 3}, {Distance: 1, Tangent: 1}, {Distance: 2}, {Distance: 1, Tangent: 2}}
	sortAnchors(as)
	want := []Anchor{{Distance: 1, Tangent: 1}, {Distance: 1, Tangent: 2}, {Distance: 2}, {Distance: 3}}
	diff(t, want, as)
}

func TestTangentDegrees(t *testing.T) {
	ev := NewEvaluator(Curve{Line(Pt(0, 0), Pt(100, 0)), Line(Pt(100, 0), Pt(100, 100))})
	tests := []struct {
		d, span, want float64
	}{
		{50, 1, 0},
		{50, 0, 0},
		{150, 1, 90},
		{0, 1, 0},
		{200, 1, 90},
		// straddling the corner
		{100, 10, 45},
	}
	for _, tt := range tests {
		if got := tangentDegrees(ev, tt.d, tt.span); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("tangentDegrees(%g, %g) = %g, want %g", tt.d, tt.span, got, tt.want)
		}
	}
}
