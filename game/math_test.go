package game

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestMoveTowardsNeverOvershoots(t *testing.T) {
	tests := []struct {
		current, target, delta, want float32
	}{
		{0, 10, 3, 3},
		{9, 10, 3, 10},
		{10, 0, 4, 6},
		{1, 0, 4, 0},
		{5, 5, 1, 5},
	}
	for _, tt := range tests {
		if got := MoveTowards(tt.current, tt.target, tt.delta); got != tt.want {
			t.Fatalf("MoveTowards(%v, %v, %v) = %v, want %v", tt.current, tt.target, tt.delta, got, tt.want)
		}
	}
}

func TestWrapYawDelta(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{190, -170},
		{-190, 170},
		{540, 180},
		{-45, -45},
	}
	for _, tt := range tests {
		if got := WrapYawDelta(tt.in); !Float32ApproxEq(got, tt.want) {
			t.Fatalf("WrapYawDelta(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSmoothStepEndpoints(t *testing.T) {
	if SmoothStep(-1) != 0 || SmoothStep(0) != 0 {
		t.Fatalf("smoothstep should be 0 at and below 0")
	}
	if SmoothStep(1) != 1 || SmoothStep(2) != 1 {
		t.Fatalf("smoothstep should be 1 at and above 1")
	}
	if got := SmoothStep(0.5); !Float32ApproxEq(got, 0.5) {
		t.Fatalf("smoothstep(0.5) = %v, want 0.5", got)
	}
}

func TestYawPitchTowardsMatchesDirectionVector(t *testing.T) {
	from := mgl32.Vec3{1, 2, 3}
	to := mgl32.Vec3{4, 0, -2}
	yaw, pitch, ok := YawPitchTowards(from, to)
	if !ok {
		t.Fatalf("expected a valid direction")
	}
	want := to.Sub(from).Normalize()
	got := DirectionVector(yaw, pitch)
	if !vecNear(got[:], want[:], 1e-4) {
		t.Fatalf("direction from yaw/pitch = %v, want %v", got, want)
	}

	if _, _, ok := YawPitchTowards(from, from); ok {
		t.Fatalf("expected no direction between identical points")
	}
}

// vecNear compares components with an absolute tolerance, so values next to zero compare as expected.
func vecNear(a, b []float32, eps float32) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestPlanarBasis(t *testing.T) {
	fwd, right := PlanarBasis(90)
	if !vecNear(fwd[:], []float32{1, 0}, 1e-5) {
		t.Fatalf("forward at yaw 90 = %v, want +X", fwd)
	}
	if !vecNear(right[:], []float32{0, -1}, 1e-5) {
		t.Fatalf("right at yaw 90 = %v, want -Z", right)
	}
}

func TestClampIntent(t *testing.T) {
	got := ClampIntent(mgl32.Vec2{3, 3})
	if l := got.Len(); math32.Abs(l-1) > 1e-5 {
		t.Fatalf("clamped intent length = %v, want 1", l)
	}
	if got := ClampIntent(mgl32.Vec2{0.2, -0.3}); got != (mgl32.Vec2{0.2, -0.3}) {
		t.Fatalf("small intent should be unchanged, got %v", got)
	}
}

func TestExpFactor(t *testing.T) {
	if ExpFactor(0, 1) != 0 || ExpFactor(5, 0) != 0 {
		t.Fatalf("expected zero factor for zero speed or dt")
	}
	f := ExpFactor(5, 0.1)
	if f <= 0 || f >= 1 {
		t.Fatalf("factor out of range: %v", f)
	}
}

func TestFinite(t *testing.T) {
	for _, v := range []float32{math32.NaN(), math32.Inf(1), math32.Inf(-1)} {
		if Finite(v) {
			t.Fatalf("Finite(%v) = true", v)
		}
	}
	if !Finite(0) || !Finite(-3.5) {
		t.Fatalf("finite values reported as non-finite")
	}
}
