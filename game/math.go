package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MoveTowards moves current towards target by at most maxDelta, never overshooting it.
func MoveTowards(current, target, maxDelta float32) float32 {
	if math32.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// Lerp linearly interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*Clamp01(t)
}

// Clamp01 clamps a value to the [0, 1] range.
func Clamp01(v float32) float32 {
	return ClampFloat(v, 0, 1)
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// SmoothStep returns the Hermite smoothstep of t, which is clamped to [0, 1] first.
func SmoothStep(t float32) float32 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// ExpFactor returns the frame-rate independent blend factor for an exponential approach
// at the given speed over dt seconds.
func ExpFactor(speed, dt float32) float32 {
	if speed <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math32.Exp(-speed*dt)
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// WrapYawDelta wraps an angle difference in degrees into the (-180, 180] range.
func WrapYawDelta(delta float32) float32 {
	delta = math32.Mod(delta, 360)
	if delta > 180 {
		delta -= 360
	} else if delta <= -180 {
		delta += 360
	}
	return delta
}

// DirectionVector returns a direction vector from the given yaw and pitch values. A yaw of zero
// faces +Z and a positive pitch looks down.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	m := math32.Cos(pitchRad)

	return mgl32.Vec3{
		m * math32.Sin(yawRad),
		-math32.Sin(pitchRad),
		m * math32.Cos(yawRad),
	}
}

// YawPitchTowards returns the yaw and pitch, in degrees, needed to look from one point at another.
// The second return value is false if both points are the same.
func YawPitchTowards(from, to mgl32.Vec3) (yaw, pitch float32, ok bool) {
	dir := to.Sub(from)
	if dir.LenSqr() < 1e-12 {
		return 0, 0, false
	}
	hz := math32.Sqrt(dir.X()*dir.X() + dir.Z()*dir.Z())
	yaw = mgl32.RadToDeg(math32.Atan2(dir.X(), dir.Z()))
	pitch = -mgl32.RadToDeg(math32.Atan2(dir.Y(), hz))
	return yaw, pitch, true
}

// PlanarBasis returns the forward and right vectors on the XZ plane for the given yaw.
func PlanarBasis(yaw float32) (forward, right mgl32.Vec2) {
	rad := mgl32.DegToRad(yaw)
	sin, cos := math32.Sin(rad), math32.Cos(rad)
	return mgl32.Vec2{sin, cos}, mgl32.Vec2{cos, -sin}
}

// Finite returns true if v is neither NaN nor infinite.
func Finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// ClampIntent clamps each axis of a movement intent to [-1, 1] and its length to 1.
// NaN components reset the intent to zero.
func ClampIntent(v mgl32.Vec2) mgl32.Vec2 {
	if math32.IsNaN(v.X()) || math32.IsNaN(v.Y()) {
		return mgl32.Vec2{}
	}
	v = mgl32.Vec2{ClampFloat(v.X(), -1, 1), ClampFloat(v.Y(), -1, 1)}
	if l := v.Len(); l > 1 {
		v = v.Mul(1 / l)
	}
	return v
}
