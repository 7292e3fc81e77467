package player

import "github.com/go-gl/mathgl/mgl32"

// SanityHolder is implemented by anything that owns a sanity meter. Scare scripts depend on it
// rather than on the Player itself.
type SanityHolder interface {
	Sanity() float32
	MaxSanity() float32
	SetSanity(value float32)
	AddSanity(delta float32)
}

var _ SanityHolder = (*Player)(nil)

// Sanity returns the current value of the sanity meter.
func (p *Player) Sanity() float32 {
	return p.state.Sanity.Current
}

// MaxSanity returns the maximum value of the sanity meter. Reaching it ends the run.
func (p *Player) MaxSanity() float32 {
	return p.state.Sanity.Max
}

// SetSanity sets the sanity meter, clamped to [0, MaxSanity].
func (p *Player) SetSanity(value float32) {
	p.sanity.Set(value)
}

// AddSanity perturbs the sanity meter by delta, which may be negative. The result is clamped to
// [0, MaxSanity] immediately and may start the terminal sequence.
func (p *Player) AddSanity(delta float32) {
	p.sanity.Add(delta)
}

// LockControl suspends or resumes processing of the player's intents. The simulation keeps
// running while locked.
func (p *Player) LockControl(locked bool) {
	p.state.ControlLocked = locked
	if !locked {
		p.state.Look.LockedControl = false
	}
	p.Dbg.Notify(DebugModeMovement, true, "control locked=%v", locked)
}

// ControlLocked returns true if the player's intents are currently ignored.
func (p *Player) ControlLocked() bool {
	return p.state.ControlLocked
}

// StartLookFollow makes the player's gaze follow the target, blending at the given speed, until
// StopLookFollow is called. Any point look-at in progress is cancelled.
func (p *Player) StartLookFollow(target Target, rotateSpeed float32, lockControl bool) {
	p.look.StartFollow(target, rotateSpeed, lockControl)
}

// StopLookFollow cancels any look override and, if unlockControl is true, restores control.
func (p *Player) StopLookFollow(unlockControl bool) {
	p.look.Stop(unlockControl)
}

// LookAtWorld turns the player's gaze to a fixed point over rotateSeconds, holds it for holdSeconds
// and then returns to normal look control. Any follow in progress is cancelled.
func (p *Player) LookAtWorld(point mgl32.Vec3, rotateSeconds, holdSeconds float32, lockControl bool) {
	p.look.LookAt(point, rotateSeconds, holdSeconds, lockControl)
}
