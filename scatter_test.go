package garland

import (
	"math"
	"testing"
)

func TestStrideOrder(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{1, []int{0}},
		{2, []int{0, 1}},
		{3, []int{0, 2, 1}},
		{4, []int{0, 2, 1, 3}},
		{5, []int{0, 2, 4, 1, 3}},
		{6, []int{0, 2, 4, 1, 3, 5}},
	}
	for _, tt := range tests {
		diff(t, tt.want, strideOrder(tt.n))
	}
}

func TestSplitRows(t *testing.T) {
	xs := []float64{0, 1, 2, 2, 3, 2, 1, 1, 0, 5}
	pts := make([]Sample, len(xs))
	for i, x := range xs {
		pts[i] = Sample{Point: Pt(x, 0), Distance: float64(i)}
	}
	rows := splitRows(pts)
	// reversals at indices 5 and 9 start rows at the turning samples
	want := [][]float64{{0, 1, 2, 2, 3}, {3, 2, 1, 1, 0}, {0, 5}}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, row := range rows {
		got := make([]float64, len(row))
		for j, p := range row {
			got[j] = p.X
		}
		diff(t, want[i], got)
	}
}

func TestRowScatterSampler(t *testing.T) {
	// a tight zigzag: right along y=100, back diagonally, right along y=200
	ev := NewEvaluator(CatmullRom([]Point{{0, 100}, {300, 100}, {0, 200}, {300, 200}}, 0))
	got := NewRowScatterSampler(0).Sample(ev, 3)

	want := []struct {
		p       Point
		tangent float64
	}{
		{Pt(50, 100), 0},
		{Pt(250, 100+100.0/6), 180 - math.Atan(1.0/3)*180/math.Pi},
		{Pt(150, 200), 0},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d anchors, want %d", len(got), len(want))
	}
	for i, a := range got {
		assertNear(t, a.Point, want[i].p, 3)
		if math.Abs(a.Tangent-want[i].tangent) > 0.5 {
			t.Errorf("anchor %d has tangent %g°, want %g°", i, a.Tangent, want[i].tangent)
		}
		if a.Flags != HasTangent {
			t.Errorf("anchor %d has flags %b, want %b", i, a.Flags, HasTangent)
		}
	}
}

func TestRowScatterSamplerMoreAnchorsThanRows(t *testing.T) {
	ev := NewEvaluator(CatmullRom([]Point{{0, 100}, {300, 100}, {0, 200}, {300, 200}}, 0))
	got := NewRowScatterSampler(0).Sample(ev, 7)

	// Rows are used round-robin, 0 1 2 0 1 2 0, and take the columns
	// 0 2 4 6 1 3 5 in that order.
	col := func(c int) float64 { return (float64(c) + 0.5) * 300 / 7 }
	diag := func(x float64) Point { return Pt(x, 100+(300-x)/3) }
	want := []Point{
		Pt(col(0), 100), Pt(col(5), 100), Pt(col(6), 100),
		diag(col(2)), diag(col(1)),
		Pt(col(3), 200), Pt(col(4), 200),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d anchors, want %d", len(got), len(want))
	}
	for i, a := range got {
		assertNear(t, a.Point, want[i], 3)
	}
}

func TestRowScatterSamplerHeroOnly(t *testing.T) {
	vp := Viewport{Width: 1440, Height: 3000, HeroHeight: 800}
	p, err := DefaultGenerator().Generate(vp, StyleSwitchback)
	if err != nil {
		t.Fatal(err)
	}
	ev := NewEvaluator(p.Curve)
	heroLength := ev.SegmentEnd(p.HeroSegments - 1)
	got := NewRowScatterSampler(heroLength).Sample(ev, 8)
	if len(got) != 8 {
		t.Fatalf("got %d anchors, want 8", len(got))
	}
	for i, a := range got {
		if a.Distance > heroLength {
			t.Errorf("anchor %d at %g lies beyond the hero region ending at %g", i, a.Distance, heroLength)
		}
	}
}
