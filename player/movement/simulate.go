package movement

import (
	"github.com/oomph-ac/nightfall/player"
)

// Simulator is the movement component of a player. It runs the locomotion state machine once per tick.
type Simulator struct {
	mPlayer *player.Player
}

// NewSimulator returns a new movement simulator for the player.
func NewSimulator(p *player.Player) *Simulator {
	return &Simulator{mPlayer: p}
}

// Simulate resolves stance and sprint from the tick's intents, smooths speed and capsule height,
// applies gravity and moves the capsule.
func (s *Simulator) Simulate(input player.InputState) {
	p := s.mPlayer
	p.Dbg.Notify(player.DebugModeMovement, true, "BEGIN movement sim for tick %d", p.CurrentTick())
	defer p.Dbg.Notify(player.DebugModeMovement, true, "END movement sim for tick %d", p.CurrentTick())

	ctx := newCtx(p, input)
	defer putCtx(ctx)

	ctx.resolveCrouch()
	ctx.resolveSprint()
	ctx.updateSpeed()
	ctx.updateHorizontalVelocity()
	ctx.updateVerticalVelocity()
	ctx.smoothCapsule()
	ctx.move()
}
