package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/nightfall/game"
	"github.com/oomph-ac/nightfall/player"
)

// LookComponent integrates look input into the player's orientation and plays look overrides. While
// an override is active, look input is ignored.
type LookComponent struct {
	mPlayer *player.Player
}

// NewLookComponent returns a new look component for the player.
func NewLookComponent(p *player.Player) *LookComponent {
	return &LookComponent{mPlayer: p}
}

// Tick ...
func (c *LookComponent) Tick(look mgl32.Vec2) {
	state := c.mPlayer.State()
	if !state.Look.Active {
		c.integrate(look)
		return
	}

	switch state.Look.Mode {
	case player.LookModeFollowTarget:
		c.follow()
	case player.LookModeLookAtPoint:
		c.blend()
	}
}

// integrate applies raw look input. Yaw accumulates without bounds and pitch is clamped.
func (c *LookComponent) integrate(look mgl32.Vec2) {
	if look.X() == 0 && look.Y() == 0 {
		return
	}
	state, opts := c.mPlayer.State(), c.mPlayer.Opts().Look
	state.Orientation.Yaw += look.X() * opts.Sensitivity
	state.Orientation.Pitch = game.ClampFloat(state.Orientation.Pitch-look.Y()*opts.Sensitivity, opts.MinPitch, opts.MaxPitch)
}

func (c *LookComponent) follow() {
	state := c.mPlayer.State()
	if state.Look.Target == nil {
		c.end()
		return
	}
	yaw, pitch, ok := game.YawPitchTowards(c.mPlayer.EyePosition(), state.Look.Target.Position())
	if !ok {
		return
	}

	f := game.ExpFactor(state.Look.Speed, c.mPlayer.DeltaTime())
	opts := c.mPlayer.Opts().Look
	state.Orientation.Yaw += game.WrapYawDelta(yaw-state.Orientation.Yaw) * f
	state.Orientation.Pitch = game.ClampFloat(state.Orientation.Pitch+(pitch-state.Orientation.Pitch)*f, opts.MinPitch, opts.MaxPitch)
	c.mPlayer.Dbg.Notify(player.DebugModeLook, true, "follow yaw=%.2f pitch=%.2f (f=%.3f)", state.Orientation.Yaw, state.Orientation.Pitch, f)
}

func (c *LookComponent) blend() {
	state := c.mPlayer.State()
	o := &state.Look
	dt := c.mPlayer.DeltaTime()

	if o.BlendElapsed < o.BlendDuration {
		o.BlendElapsed += dt
		t := float32(1)
		if o.BlendDuration > 0 && o.BlendDuration-o.BlendElapsed > game.TimeEpsilon {
			t = o.BlendElapsed / o.BlendDuration
		}
		c.applyBlend(game.SmoothStep(t))
		if t < 1 {
			return
		}
		// Time left over after the blend finished counts towards the hold.
		dt = max(o.BlendElapsed-o.BlendDuration, 0)
		o.BlendElapsed = o.BlendDuration
	}

	o.HoldRemaining -= dt
	if o.HoldRemaining <= game.TimeEpsilon {
		c.mPlayer.Dbg.Notify(player.DebugModeLook, true, "look at point finished")
		c.end()
	}
}

func (c *LookComponent) applyBlend(s float32) {
	state := c.mPlayer.State()
	o := state.Look
	state.Orientation.Yaw = o.StartYaw + game.WrapYawDelta(o.TargetYaw-o.StartYaw)*s
	state.Orientation.Pitch = o.StartPitch + (o.TargetPitch-o.StartPitch)*s
}

// StartFollow ...
func (c *LookComponent) StartFollow(target player.Target, speed float32, lockControl bool) {
	if target == nil {
		c.Stop(lockControl)
		return
	}
	state := c.mPlayer.State()
	c.begin(lockControl)
	state.Look.Mode = player.LookModeFollowTarget
	state.Look.Target = target
	state.Look.Speed = speed
	c.mPlayer.Dbg.Notify(player.DebugModeLook, true, "follow target started (speed=%.2f lock=%v)", speed, lockControl)
}

// LookAt ...
func (c *LookComponent) LookAt(point mgl32.Vec3, rotateSeconds, holdSeconds float32, lockControl bool) {
	state := c.mPlayer.State()
	opts := c.mPlayer.Opts().Look
	yaw, pitch, ok := game.YawPitchTowards(c.mPlayer.EyePosition(), point)
	if !ok {
		yaw, pitch = state.Orientation.Yaw, state.Orientation.Pitch
	}

	c.begin(lockControl)
	o := &state.Look
	o.Mode = player.LookModeLookAtPoint
	o.Point = point
	o.StartYaw, o.StartPitch = state.Orientation.Yaw, state.Orientation.Pitch
	// Keep the target yaw on the short side of the current yaw so the blend takes the short way.
	o.TargetYaw = o.StartYaw + game.WrapYawDelta(yaw-o.StartYaw)
	o.TargetPitch = game.ClampFloat(pitch, opts.MinPitch, opts.MaxPitch)
	o.BlendDuration = max(rotateSeconds, 0)
	o.HoldRemaining = max(holdSeconds, 0)
	c.mPlayer.Dbg.Notify(player.DebugModeLook, true, "look at %v started (yaw=%.2f pitch=%.2f)", point, o.TargetYaw, o.TargetPitch)

	if o.BlendDuration == 0 {
		c.applyBlend(1)
	}
}

// Stop ...
func (c *LookComponent) Stop(unlockControl bool) {
	c.mPlayer.State().Look = player.LookOverride{}
	if unlockControl {
		c.mPlayer.LockControl(false)
	}
}

// begin replaces any override in progress with a fresh one. A lock taken by the replaced override
// carries over to the new one.
func (c *LookComponent) begin(lockControl bool) {
	state := c.mPlayer.State()
	carried := state.Look.Active && state.Look.LockedControl
	state.Look = player.LookOverride{Active: true}
	if lockControl && !state.ControlLocked {
		c.mPlayer.LockControl(true)
		state.Look.LockedControl = true
	} else {
		state.Look.LockedControl = carried
	}
}

// end finishes an override on its own, releasing the control lock if the override took it. A run
// that ended keeps control locked.
func (c *LookComponent) end() {
	state := c.mPlayer.State()
	unlock := state.Look.LockedControl && !c.mPlayer.SanityComponent().Terminal()
	state.Look = player.LookOverride{}
	if unlock {
		c.mPlayer.LockControl(false)
	}
}
