package garland

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// cross returns the z component of the cross product of a and b.
func cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}
