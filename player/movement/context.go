package movement

import (
	"github.com/oomph-ac/nightfall/assert"
	"github.com/oomph-ac/nightfall/game"
	"github.com/oomph-ac/nightfall/player"
)

type movementContext struct {
	mPlayer *player.Player
	input   player.InputState

	dt       float32
	grounded bool
}

// resolveCrouch applies the configured crouch policy. A capsule that cannot stand is always
// forced into a crouch, whatever the policy or lock state.
func (ctx *movementContext) resolveCrouch() {
	p := ctx.mPlayer
	state := p.State()
	canStand := p.CanStand()

	if state.ControlLocked {
		if !canStand && !state.Crouching() {
			state.Mode = player.MovementModeCrouching
			p.Dbg.Notify(player.DebugModeMovement, true, "forced crouch while locked")
		}
		ctx.stopSprintIfCrouching()
		return
	}

	crouch := ctx.input.Crouch
	if p.Opts().Movement.CrouchToggle {
		if crouch && !state.CrouchHeld {
			switch {
			case !state.Crouching():
				state.Mode = player.MovementModeCrouching
			case canStand:
				state.Mode = player.MovementModeStanding
			default:
				p.Dbg.Notify(player.DebugModeMovement, true, "stand request denied: no clearance")
			}
		}
		if !state.Crouching() && !canStand {
			state.Mode = player.MovementModeCrouching
			p.Dbg.Notify(player.DebugModeMovement, true, "forced crouch: no clearance")
		}
	} else {
		state.Mode = player.MovementModeStanding
		if crouch || !canStand {
			state.Mode = player.MovementModeCrouching
		}
	}
	state.CrouchHeld = crouch
	ctx.stopSprintIfCrouching()
}

func (ctx *movementContext) stopSprintIfCrouching() {
	state := ctx.mPlayer.State()
	if state.Crouching() {
		state.Sprinting = false
	}
}

// resolveSprint starts or stops sprinting. Sprint only starts with enough stamina, and stops as soon
// as the button is released, the player stops moving, crouches or runs out of stamina.
func (ctx *movementContext) resolveSprint() {
	p := ctx.mPlayer
	state := p.State()
	stamina := p.Stamina()

	wasSprinting := state.Sprinting
	switch {
	case state.Crouching() || !ctx.moving() || !ctx.input.Sprint || stamina.Exhausted():
		state.Sprinting = false
	case !state.Sprinting && stamina.CanStartSprint():
		state.Sprinting = true
	}
	p.Dbg.Notify(player.DebugModeMovement, wasSprinting != state.Sprinting, "sprinting=%v (stamina=%.2f)", state.Sprinting, state.Stamina.Current)
}

// updateSpeed moves the current speed towards the target speed, accelerating and decelerating at
// different rates.
func (ctx *movementContext) updateSpeed() {
	p := ctx.mPlayer
	state := p.State()
	opts := p.Opts().Movement

	base := opts.WalkSpeed
	if state.Crouching() {
		base = opts.CrouchSpeed
	} else if state.Sprinting {
		base = opts.SprintSpeed
	}
	target := base * ctx.input.Move.Len()

	rate := opts.Deceleration
	if target > state.CurrentSpeed {
		rate = opts.Acceleration
	}
	state.CurrentSpeed = game.MoveTowards(state.CurrentSpeed, target, rate*ctx.dt)
}

// updateHorizontalVelocity rotates the movement intent by the player's yaw. Without an intent the
// last heading is kept so that the player slides to a halt while decelerating.
func (ctx *movementContext) updateHorizontalVelocity() {
	state := ctx.mPlayer.State()
	if ctx.moving() {
		forward, right := game.PlanarBasis(state.Orientation.Yaw)
		dir := forward.Mul(ctx.input.Move.Y()).Add(right.Mul(ctx.input.Move.X()))
		if dir.LenSqr() > game.IntentDeadzone {
			state.MoveDir = dir.Normalize()
		}
	}
	state.Velocity[0] = state.MoveDir.X() * state.CurrentSpeed
	state.Velocity[2] = state.MoveDir.Y() * state.CurrentSpeed
}

// updateVerticalVelocity keeps a grounded capsule pressed to the ground and lets gravity accumulate
// otherwise. There is no jump.
func (ctx *movementContext) updateVerticalVelocity() {
	p := ctx.mPlayer
	state := p.State()
	if ctx.grounded {
		state.Velocity[1] = p.Opts().Movement.GroundStick
	} else {
		state.Velocity[1] += p.Opts().Movement.Gravity * ctx.dt
	}
	state.Grounded = ctx.grounded
}

// smoothCapsule eases the capsule height towards the height of the current stance and keeps the
// bottom of the capsule at the entity origin.
func (ctx *movementContext) smoothCapsule() {
	p := ctx.mPlayer
	state := p.State()
	opts := p.Opts().Capsule

	target := opts.StandingHeight
	if state.Crouching() {
		target = opts.CrouchHeight
	}
	minHeight := 2*opts.Radius + opts.MinClearance

	height := game.Lerp(state.CapsuleHeight, target, opts.HeightLerpSpeed*ctx.dt)
	if game.Float32ApproxEq(height, target) {
		height = target
	}
	height = max(height, minHeight)
	assert.IsTrue(height >= minHeight, "capsule height %.4f below minimum %.4f", height, minHeight)

	state.CapsuleHeight = height
	state.CapsuleCenter = height / 2
}

// move displaces the capsule by its velocity. Without a mover, a grounded capsule does not sink.
func (ctx *movementContext) move() {
	p := ctx.mPlayer
	state := p.State()
	delta := state.Velocity.Mul(ctx.dt)

	if m := p.Mover(); m != nil {
		state.Position = m.Move(state.Position, delta, state.CapsuleHeight, p.Opts().Capsule.Radius)
		return
	}
	if ctx.grounded && delta[1] < 0 {
		delta[1] = 0
	}
	state.Position = state.Position.Add(delta)
	p.Dbg.Notify(player.DebugModeMovement, true, "moved by %v to %v", delta, state.Position)
}

func (ctx *movementContext) moving() bool {
	return ctx.input.Move.LenSqr() > game.IntentDeadzone
}
