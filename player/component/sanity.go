package component

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/oomph-ac/nightfall/game"
	"github.com/oomph-ac/nightfall/player"
	"github.com/oomph-ac/nightfall/sequence"
	"github.com/samber/lo"
)

// TerminalSequence is the name of the sequence that ends a run once sanity is full.
const TerminalSequence = "sanity.terminal"

// SanityComponent drifts the sanity meter up towards its maximum and ends the run when the maximum
// is reached. Sanity accumulates towards the terminal state: the maximum, not zero, ends the run.
type SanityComponent struct {
	mPlayer *player.Player
	// terminal latches once per run so the terminal sequence fires exactly once.
	terminal bool
}

// NewSanityComponent returns a new sanity component for the player.
func NewSanityComponent(p *player.Player) *SanityComponent {
	return &SanityComponent{mPlayer: p}
}

// Add ...
func (c *SanityComponent) Add(delta float32) {
	c.Set(c.mPlayer.State().Sanity.Current + delta)
}

// Set clamps value into [0, Max] and stores it. Non-finite values are ignored.
func (c *SanityComponent) Set(value float32) {
	if math32.IsNaN(value) || math32.IsInf(value, 0) {
		c.mPlayer.Dbg.Notify(player.DebugModeSanity, true, "ignored non-finite sanity value %v", value)
		return
	}
	state := c.mPlayer.State()
	old := state.Sanity.Current
	state.Sanity.Current = lo.Clamp(value, 0, state.Sanity.Max)
	if old != state.Sanity.Current {
		c.mPlayer.Handler().HandleSanityChange(old, state.Sanity.Current)
		c.mPlayer.Dbg.Notify(player.DebugModeSanity, true, "sanity %.3f -> %.3f", old, state.Sanity.Current)
	}
	c.checkTerminal()
}

// Terminal ...
func (c *SanityComponent) Terminal() bool {
	return c.terminal
}

// Tick applies the passive drift of the meter.
func (c *SanityComponent) Tick() {
	state := c.mPlayer.State()
	if state.Sanity.Current < state.Sanity.Max {
		c.Set(state.Sanity.Current + c.mPlayer.Opts().Sanity.RegenPerSecond*c.mPlayer.DeltaTime())
		return
	}
	c.checkTerminal()
}

// Reset ...
func (c *SanityComponent) Reset() {
	c.terminal = false
}

// checkTerminal starts the terminal sequence the first time the meter is full in a run: control is
// locked, ambient audio is stopped and the terminal screen is shown straight away, then after a
// real-time delay the scene transition is handed off to the handler.
func (c *SanityComponent) checkTerminal() {
	state := c.mPlayer.State()
	if c.terminal || state.Sanity.Current < state.Sanity.Max-game.TerminalEpsilon {
		return
	}
	c.terminal = true

	p := c.mPlayer
	delay := time.Duration(float64(p.Opts().Sanity.TerminalDelay) * float64(time.Second))
	p.Log().Infof("sanity reached %.2f/%.2f, ending run", state.Sanity.Current, state.Sanity.Max)
	p.Scheduler().Start(sequence.New(TerminalSequence,
		sequence.Do(func() {
			p.LockControl(true)
			p.Handler().HandleAmbientStop()
			p.Handler().HandleTerminalScreen()
		}),
		sequence.WaitRealtime(delay),
		sequence.Do(func() {
			p.Log().Debug("terminal sequence finished, transitioning scene")
			p.Handler().HandleSceneTransition()
		}),
	))
}
