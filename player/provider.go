package player

import "github.com/go-gl/mathgl/mgl32"

// GroundProber reports whether the capsule at the given position touches the ground.
type GroundProber interface {
	Grounded(pos mgl32.Vec3, radius float32) bool
}

// ClearanceProber reports whether a standing capsule of the given height fits at the given position.
type ClearanceProber interface {
	CanStand(pos mgl32.Vec3, height, radius float32) bool
}

// Mover resolves a displacement of the capsule against the environment and returns the new position.
type Mover interface {
	Move(pos, delta mgl32.Vec3, height, radius float32) mgl32.Vec3
}

// GroundProberFunc is a GroundProber implemented by a function.
type GroundProberFunc func(pos mgl32.Vec3, radius float32) bool

// Grounded ...
func (f GroundProberFunc) Grounded(pos mgl32.Vec3, radius float32) bool {
	return f(pos, radius)
}

// ClearanceProberFunc is a ClearanceProber implemented by a function.
type ClearanceProberFunc func(pos mgl32.Vec3, height, radius float32) bool

// CanStand ...
func (f ClearanceProberFunc) CanStand(pos mgl32.Vec3, height, radius float32) bool {
	return f(pos, height, radius)
}
