package garland

import (
	"math"
	"testing"
)

func zigzag() *Evaluator {
	pts := []Point{
		{0, 100}, {100, 300}, {200, 100}, {300, 300}, {400, 100}, {500, 300}, {600, 100},
	}
	return NewEvaluator(CatmullRom(pts, 0.7))
}

func TestValleySampler(t *testing.T) {
	ev := zigzag()
	s := NewValleySampler(800)

	tests := []struct {
		n     int
		wantX []float64
	}{
		{1, []float64{100}},
		{2, []float64{100, 500}},
		{3, []float64{100, 300, 500}},
		// only three valleys exist
		{5, []float64{100, 300, 500}},
	}
	for _, tt := range tests {
		got := s.Sample(ev, tt.n)
		if len(got) != len(tt.wantX) {
			t.Fatalf("n=%d: got %d anchors, want %d", tt.n, len(got), len(tt.wantX))
		}
		for i, a := range got {
			if math.Abs(a.X-tt.wantX[i]) > 5 {
				t.Errorf("n=%d: anchor %d at x=%g, want ≈%g", tt.n, i, a.X, tt.wantX[i])
			}
			if math.Abs(a.Y-300) > 1 {
				t.Errorf("n=%d: anchor %d at y=%g, want ≈300", tt.n, i, a.Y)
			}
			if a.Flags != 0 {
				t.Errorf("n=%d: anchor %d has flags %b, want none", tt.n, i, a.Flags)
			}
		}
	}
}

func TestValleySamplerCutoff(t *testing.T) {
	ev := zigzag()
	// The valleys at y=300 lie below 0.9·300.
	s := NewValleySampler(300)
	if got := s.Sample(ev, 3); len(got) != 0 {
		t.Errorf("got %d anchors below the cutoff, want none", len(got))
	}
}

func TestValleySamplerSpacing(t *testing.T) {
	ev := zigzag()
	s := NewValleySampler(800)
	s.MinSpacing = 250
	got := s.Sample(ev, 3)
	if len(got) != 2 {
		t.Fatalf("got %d anchors, want 2", len(got))
	}
	if math.Abs(got[1].X-500) > 5 {
		t.Errorf("second anchor at x=%g, want ≈500", got[1].X)
	}
}
