package player

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MovementMode is the stance of the player's capsule.
type MovementMode uint8

const (
	MovementModeStanding MovementMode = iota
	MovementModeCrouching
)

// String ...
func (m MovementMode) String() string {
	if m == MovementModeCrouching {
		return "crouching"
	}
	return "standing"
}

// Orientation holds the facing of the player in degrees. A yaw of zero faces +Z and a positive
// pitch looks down.
type Orientation struct {
	Yaw   float32
	Pitch float32
}

// StaminaState is the stamina meter. Current is always within [0, Max].
type StaminaState struct {
	Current float32
	Max     float32
	// LastSprint is the simulation time of the last tick spent sprinting.
	LastSprint float32
}

// SanityState is the sanity meter. Current is always within [0, Max], and reaching Max ends the run.
type SanityState struct {
	Current float32
	Max     float32
}

// LookMode is the kind of look override that is active.
type LookMode uint8

const (
	LookModeFollowTarget LookMode = iota
	LookModeLookAtPoint
)

// Target is something the player's gaze can follow. Its position is read every tick.
type Target interface {
	Position() mgl32.Vec3
}

// LookOverride is a temporary takeover of the player's orientation by an external director.
type LookOverride struct {
	Active bool
	Mode   LookMode

	// Target and Speed are used by LookModeFollowTarget.
	Target Target
	Speed  float32

	// The remaining fields are used by LookModeLookAtPoint.
	Point                  mgl32.Vec3
	StartYaw, StartPitch   float32
	TargetYaw, TargetPitch float32
	BlendElapsed           float32
	BlendDuration          float32
	HoldRemaining          float32

	// LockedControl is true if starting the override locked the player's control, in which case
	// the override ending on its own releases the lock again.
	LockedControl bool
}

// State is the complete simulated state of the player. It is mutated once per tick by the
// player's components and by external calls made from the tick goroutine.
type State struct {
	Position    mgl32.Vec3
	Orientation Orientation
	Velocity    mgl32.Vec3

	// CurrentSpeed is the horizontal speed that is smoothed towards the target speed.
	CurrentSpeed float32
	// MoveDir is the last non-zero horizontal heading, as a unit vector on the XZ plane.
	MoveDir mgl32.Vec2

	Mode      MovementMode
	Sprinting bool
	Grounded  bool

	CapsuleHeight float32
	CapsuleCenter float32

	Stamina StaminaState
	Sanity  SanityState

	ControlLocked bool
	Look          LookOverride

	// CrouchHeld is the crouch intent of the previous unlocked tick, used to find rising edges.
	CrouchHeld bool
}

// Crouching returns true if the player is crouching.
func (s State) Crouching() bool {
	return s.Mode == MovementModeCrouching
}
