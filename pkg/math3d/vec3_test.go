package math3d

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross z", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"z cross x", V3(0, 0, 1), V3(1, 0, 0), V3(0, 1, 0)},
		{"parallel", V3(2, 0, 0), V3(5, 0, 0), Zero3()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Cross(tc.b); got != tc.want {
				t.Errorf("%v x %v = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestVec3Normalize(t *testing.T) {
	n := V3(3, 0, 4).Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Len() = %v, want 1", n.Len())
	}
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Z-0.8) > 1e-12 {
		t.Errorf("Normalize = %v, want (0.6, 0, 0.8)", n)
	}

	if got := Zero3().Normalize(); !got.IsZero() {
		t.Errorf("zero vector normalized to %v", got)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !V3(1, 2, 3).IsFinite() {
		t.Error("(1,2,3) should be finite")
	}
	if V3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if V3(0, math.Inf(-1), 0).IsFinite() {
		t.Error("-Inf component should not be finite")
	}
}

func TestVec2Lift(t *testing.T) {
	v := V2(1, 2).Sub(V2(0.5, 0.5)).Scale(2)
	if got := v.Vec3(-1); got != V3(1, 3, -1) {
		t.Errorf("Vec3(-1) = %v, want (1,3,-1)", got)
	}
	if got := V3(7, 8, 9).XY(); got != V2(7, 8) {
		t.Errorf("XY() = %v, want (7,8)", got)
	}
}
