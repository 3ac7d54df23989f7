package garland

import (
	"math"
	"testing"
)

func TestEvaluatorLine(t *testing.T) {
	ev := NewEvaluator(Curve{Line(Pt(0, 0), Pt(300, 400))})
	if l := ev.Length(); math.Abs(l-500) > 1e-9 {
		t.Fatalf("got length %g, want 500", l)
	}
	for _, d := range []float64{0, 1, 125, 250, 499.5, 500} {
		want := Pt(0, 0).Lerp(Pt(300, 400), d/500)
		assertNear(t, ev.PointAt(d), want, 1e-9)
	}
}

func TestEvaluatorEndpoints(t *testing.T) {
	c := CatmullRom([]Point{Pt(10, 10), Pt(200, 300), Pt(400, 50), Pt(650, 280)}, 0.8)
	ev := NewEvaluator(c)
	diff(t, c.Start(), ev.PointAt(0))
	diff(t, c.End(), ev.PointAt(ev.Length()))
	// out of range distances are clamped
	diff(t, c.Start(), ev.PointAt(-10))
	diff(t, c.End(), ev.PointAt(ev.Length()+10))
}

func TestEvaluatorLengthOfArc(t *testing.T) {
	// Quarter circle of radius 100 approximated with the usual cubic.
	const k = 0.5522847498307936
	c := Curve{{Pt(100, 0), Pt(100, 100*k), Pt(100*k, 100), Pt(0, 100)}}
	ev := NewEvaluator(c)
	want := math.Pi * 50
	if l := ev.Length(); math.Abs(l-want) > 0.05 {
		t.Errorf("got length %g, want about %g", l, want)
	}
}

func TestEvaluatorMonotonic(t *testing.T) {
	c := CatmullRom([]Point{Pt(0, 100), Pt(150, 300), Pt(300, 100), Pt(450, 300), Pt(600, 100)}, 0.7)
	ev := NewEvaluator(c)
	prevSeg, prevT := -1, 0.0
	const n = 1000
	for i := range n + 1 {
		seg, ts := ev.ParamAt(ev.Length() * float64(i) / n)
		if seg < prevSeg || (seg == prevSeg && ts < prevT) {
			t.Fatalf("position went backwards at step %d: (%d, %g) after (%d, %g)", i, seg, ts, prevSeg, prevT)
		}
		prevSeg, prevT = seg, ts
	}
}

func TestEvaluatorDistanceConsistency(t *testing.T) {
	// Chord lengths between close samples should match the requested arc
	// length step.
	c := CatmullRom([]Point{Pt(0, 0), Pt(100, 200), Pt(300, -50), Pt(500, 100)}, DefaultTension)
	ev := NewEvaluator(c)
	const n = 200
	step := ev.Length() / n
	for i := range n {
		a := ev.PointAt(float64(i) * step)
		b := ev.PointAt(float64(i+1) * step)
		if d := a.Distance(b); math.Abs(d-step) > step*0.01 {
			t.Errorf("step %d: chord %g, want about %g", i, d, step)
		}
	}
}

func TestEvaluatorSegmentEnd(t *testing.T) {
	c := Curve{Line(Pt(0, 0), Pt(100, 0)), Line(Pt(100, 0), Pt(100, 50))}
	ev := NewEvaluator(c)
	for i, want := range []float64{100, 150} {
		if got := ev.SegmentEnd(i); math.Abs(got-want) > 1e-9 {
			t.Errorf("SegmentEnd(%d) = %g, want %g", i, got, want)
		}
	}
	if got := ev.SegmentEnd(7); math.Abs(got-150) > 1e-9 {
		t.Errorf("SegmentEnd(7) = %g, want clamping to 150", got)
	}
	if got := ev.SegmentEnd(-1); got != 0 {
		t.Errorf("SegmentEnd(-1) = %g, want 0", got)
	}
}

func TestEvaluatorEmpty(t *testing.T) {
	ev := NewEvaluator(nil)
	if ev.Length() != 0 {
		t.Errorf("got length %g for empty curve", ev.Length())
	}
	diff(t, Point{}, ev.PointAt(5))
	diff(t, Vec2{}, ev.TangentAt(5))
	if s := ev.Scan(4, 0); len(s) != 5 {
		t.Errorf("got %d samples, want 5", len(s))
	}
}

func TestEvaluatorTangent(t *testing.T) {
	ev := NewEvaluator(Curve{Line(Pt(0, 0), Pt(0, 100))})
	if deg := ev.TangentAt(50).Degrees(); math.Abs(deg-90) > 1e-9 {
		t.Errorf("got tangent %g°, want 90°", deg)
	}
}

func TestScan(t *testing.T) {
	ev := NewEvaluator(Curve{Line(Pt(0, 0), Pt(100, 0))})
	s := ev.Scan(4, 50)
	want := []float64{0, 12.5, 25, 37.5, 50}
	for i, sm := range s {
		if math.Abs(sm.Distance-want[i]) > 1e-9 || math.Abs(sm.X-want[i]) > 1e-9 {
			t.Errorf("sample %d: got %v at %g, want x=%g", i, sm.Point, sm.Distance, want[i])
		}
	}
}
