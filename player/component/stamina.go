package component

import (
	"github.com/oomph-ac/nightfall/player"
	"github.com/samber/lo"
)

// StaminaComponent drains stamina while the player sprints and regenerates it after a cooldown.
type StaminaComponent struct {
	mPlayer *player.Player
}

// NewStaminaComponent returns a new stamina component for the player.
func NewStaminaComponent(p *player.Player) *StaminaComponent {
	return &StaminaComponent{mPlayer: p}
}

// CanStartSprint ...
func (c *StaminaComponent) CanStartSprint() bool {
	return c.mPlayer.State().Stamina.Current >= c.mPlayer.Opts().Stamina.MinSprintToStart
}

// Exhausted ...
func (c *StaminaComponent) Exhausted() bool {
	return c.mPlayer.State().Stamina.Current <= 0
}

// Tick drains the meter if the player sprinted this tick, and otherwise regenerates it once the
// regeneration delay since the last sprint has passed. It never does both in the same tick.
func (c *StaminaComponent) Tick() {
	state := c.mPlayer.State()
	opts := c.mPlayer.Opts().Stamina
	dt, now := c.mPlayer.DeltaTime(), c.mPlayer.SimTime()
	old := state.Stamina.Current

	if state.Sprinting {
		state.Stamina.Current = lo.Clamp(state.Stamina.Current-opts.DrainPerSecond*dt, 0, state.Stamina.Max)
		state.Stamina.LastSprint = now
		c.mPlayer.Dbg.Notify(player.DebugModeStamina, true, "drain %.3f -> %.3f", old, state.Stamina.Current)
		return
	}
	if state.Stamina.Current >= state.Stamina.Max || now-state.Stamina.LastSprint < opts.RegenDelay {
		return
	}
	state.Stamina.Current = lo.Clamp(state.Stamina.Current+opts.RegenPerSecond*dt, 0, state.Stamina.Max)
	c.mPlayer.Dbg.Notify(player.DebugModeStamina, true, "regen %.3f -> %.3f", old, state.Stamina.Current)
}
