package game

const (
	DefaultWalkSpeed    = float32(3.0)
	DefaultSprintSpeed  = float32(6.0)
	DefaultCrouchSpeed  = float32(1.5)
	DefaultAcceleration = float32(10.0)
	DefaultDeceleration = float32(12.0)

	// Gravity is expressed in units/s² and is negative (pulls down).
	DefaultGravity     = float32(-9.81)
	DefaultGroundStick = float32(-2.0)

	DefaultStandingHeight  = float32(1.8)
	DefaultCrouchHeight    = float32(1.0)
	DefaultCapsuleRadius   = float32(0.3)
	DefaultMinClearance    = float32(0.1)
	DefaultHeightLerpSpeed = float32(10.0)
	DefaultEyeOffset       = float32(0.2)

	DefaultStaminaMax       = float32(100)
	DefaultStaminaDrain     = float32(20)
	DefaultStaminaRegen     = float32(15)
	DefaultStaminaRegenWait = float32(0.6)
	DefaultMinSprintToStart = float32(10)

	DefaultSanityMax   = float32(100)
	DefaultSanityRegen = float32(0.5)

	DefaultLookSensitivity = float32(0.1)
	DefaultMinPitch        = float32(-80)
	DefaultMaxPitch        = float32(80)

	// TerminalEpsilon is how close to max sanity has to get before the run ends.
	TerminalEpsilon = float32(1e-4)
	// TimeEpsilon absorbs float32 drift when summing per-tick deltas into a duration.
	TimeEpsilon = float32(1e-3)
	// IntentDeadzone is the squared length below which a movement intent counts as zero.
	IntentDeadzone = float32(1e-6)
)
