package player

import "github.com/go-gl/mathgl/mgl32"

// InputState represents a single tick's intents. It carries no device specifics: it is the same
// whether it was captured from a keyboard, a gamepad or a recording.
type InputState struct {
	// Move is the movement intent. X strafes right and Y moves forward, each in [-1, 1].
	Move mgl32.Vec2
	// Look is the raw look delta for this tick. X turns right and Y looks up.
	Look mgl32.Vec2

	Sprint bool
	Crouch bool

	// DeltaTime is the simulated time of this tick in seconds, already time-scaled.
	DeltaTime float32
}

// Outcome describes which path a tick took.
type Outcome uint8

const (
	OutcomeNormal Outcome = iota
	// OutcomeLocked means control was locked and every intent was ignored.
	OutcomeLocked
	// OutcomeSkipped means the tick had no positive delta time and nothing changed.
	OutcomeSkipped
)

// String ...
func (o Outcome) String() string {
	switch o {
	case OutcomeLocked:
		return "locked"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "normal"
	}
}

// TickResult is a snapshot of the player after a tick.
type TickResult struct {
	Tick    uint64
	Time    float32
	Outcome Outcome
	State   State
}
