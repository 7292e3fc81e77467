package component

import (
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/nightfall/player"
	"github.com/oomph-ac/nightfall/settings"
)

func sanitySettings(start, regen float32) func(s *settings.Settings) {
	return func(s *settings.Settings) {
		s.Sanity.Max = 100
		s.Sanity.Start = start
		s.Sanity.RegenPerSecond = regen
		s.Sanity.TerminalDelay = 3
	}
}

func TestSanityClampedToBounds(t *testing.T) {
	p, _, _ := newTestPlayer(t, sanitySettings(50, 0))

	p.AddSanity(-500)
	if got := p.Sanity(); got != 0 {
		t.Fatalf("sanity = %v, want 0", got)
	}
	p.SetSanity(42)
	if got := p.Sanity(); got != 42 {
		t.Fatalf("sanity = %v, want 42", got)
	}
	p.AddSanity(1e6)
	if got := p.Sanity(); got != p.MaxSanity() {
		t.Fatalf("sanity = %v, want %v", got, p.MaxSanity())
	}
}

func TestSanityTerminalFiresOnce(t *testing.T) {
	p, clock, h := newTestPlayer(t, sanitySettings(90, 0))
	idle := player.InputState{DeltaTime: 0.1}

	p.AddSanity(15)
	if got := p.Sanity(); got != 100 {
		t.Fatalf("sanity = %v, want 100", got)
	}
	if h.ambient != 1 || h.screens != 1 {
		t.Fatalf("expected ambient stop and terminal screen once, got %d and %d", h.ambient, h.screens)
	}
	if !p.ControlLocked() {
		t.Fatalf("expected control to be locked by the terminal sequence")
	}
	if !p.Scheduler().Running(TerminalSequence) {
		t.Fatalf("expected %q to be running", TerminalSequence)
	}

	p.AddSanity(10)
	tickN(p, 10, idle)
	if h.ambient != 1 || h.screens != 1 {
		t.Fatalf("terminal sequence retriggered: ambient=%d screens=%d", h.ambient, h.screens)
	}

	// The delay is measured in real time, so simulated time alone does not finish the sequence.
	tickN(p, 100, idle)
	if h.transitions != 0 {
		t.Fatalf("scene transition ran before the real-time delay passed")
	}

	clock.Advance(3 * time.Second)
	p.Tick(idle)
	if h.transitions != 1 {
		t.Fatalf("expected exactly one scene transition, got %d", h.transitions)
	}
	if p.Scheduler().Running(TerminalSequence) {
		t.Fatalf("terminal sequence should be done")
	}

	clock.Advance(time.Minute)
	tickN(p, 10, idle)
	p.AddSanity(-50)
	p.AddSanity(50)
	if h.transitions != 1 || h.ambient != 1 {
		t.Fatalf("terminal sequence fired again in the same run")
	}
}

func TestSanityDriftsTowardsMax(t *testing.T) {
	p, _, h := newTestPlayer(t, sanitySettings(0, 10))

	res := tickN(p, 10, player.InputState{DeltaTime: 0.1})
	if got := res.State.Sanity.Current; got < 9.99 || got > 10.01 {
		t.Fatalf("sanity after 1s of drift = %v, want 10", got)
	}
	if h.changes != 10 {
		t.Fatalf("expected a change notification per tick, got %d", h.changes)
	}

	tickN(p, 200, player.InputState{DeltaTime: 0.1})
	if !p.SanityComponent().Terminal() {
		t.Fatalf("expected drift to reach the terminal state")
	}
	if h.ambient != 1 {
		t.Fatalf("expected the terminal sequence to fire once, got %d", h.ambient)
	}
}

func TestResetRearmsTerminal(t *testing.T) {
	p, _, h := newTestPlayer(t, sanitySettings(90, 0))
	p.AddSanity(20)
	if h.ambient != 1 {
		t.Fatalf("expected the terminal sequence to fire")
	}

	p.Reset(p.State().Position, 0)
	if p.ControlLocked() || p.Sanity() != 90 || p.Scheduler().Len() != 0 {
		t.Fatalf("reset did not restore the run: locked=%v sanity=%v sequences=%d", p.ControlLocked(), p.Sanity(), p.Scheduler().Len())
	}
	if p.SanityComponent().Terminal() {
		t.Fatalf("terminal latch survived the reset")
	}

	p.AddSanity(20)
	if h.ambient != 2 {
		t.Fatalf("expected the terminal sequence to fire again after reset, got %d", h.ambient)
	}
}

func TestTerminalLockSurvivesLookOverride(t *testing.T) {
	p, clock, h := newTestPlayer(t, sanitySettings(90, 0))
	p.LookAtWorld(p.EyePosition().Add(mgl32.Vec3{10, 0, 10}), 0.4, 1.0, true)
	p.AddSanity(100)

	clock.Advance(time.Second)
	start := p.State().Position
	res := tickN(p, 80, player.InputState{Move: mgl32.Vec2{0, 1}, DeltaTime: 0.02})
	if p.State().Look.Active {
		t.Fatalf("look override should have finished")
	}
	if !p.ControlLocked() || res.Outcome != player.OutcomeLocked {
		t.Fatalf("look override released the terminal lock: locked=%v outcome=%v", p.ControlLocked(), res.Outcome)
	}
	if res.State.Position != start {
		t.Fatalf("player moved during the terminal wait: %v -> %v", start, res.State.Position)
	}
	if h.transitions != 0 {
		t.Fatalf("scene transition ran before the real-time delay passed")
	}

	clock.Advance(2 * time.Second)
	p.Tick(player.InputState{DeltaTime: 0.02})
	if h.transitions != 1 || !p.ControlLocked() {
		t.Fatalf("transitions=%d locked=%v", h.transitions, p.ControlLocked())
	}
}

func TestSanityIgnoresNonFiniteValues(t *testing.T) {
	p, _, h := newTestPlayer(t, sanitySettings(10, 0))

	p.AddSanity(math32.NaN())
	p.AddSanity(math32.Inf(1))
	p.AddSanity(math32.Inf(-1))
	p.SetSanity(math32.NaN())
	if got := p.Sanity(); got != 10 {
		t.Fatalf("sanity = %v, want 10", got)
	}
	if p.SanityComponent().Terminal() || h.screens != 0 || h.changes != 0 {
		t.Fatalf("non-finite value changed the meter: terminal=%v screens=%d changes=%d", p.SanityComponent().Terminal(), h.screens, h.changes)
	}

	p.AddSanity(5)
	if got := p.Sanity(); got != 15 {
		t.Fatalf("sanity = %v, want 15", got)
	}
}
