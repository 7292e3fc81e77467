package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/nightfall/assert"
	"github.com/oomph-ac/nightfall/game"
	"github.com/oomph-ac/nightfall/sequence"
	"github.com/oomph-ac/nightfall/settings"
	"github.com/sirupsen/logrus"
)

// Player is the single simulated entity. It owns the State and runs the components that mutate it,
// once per tick. A Player is not safe for concurrent use: ticks and every external call (AddSanity,
// LockControl, look overrides) must come from the same goroutine.
type Player struct {
	log  *logrus.Logger
	Dbg  *Debugger
	opts *settings.Settings

	state   State
	simTime float32
	dt      float32
	tick    uint64

	ground    GroundProber
	clearance ClearanceProber
	mover     Mover
	handler   Handler

	scheduler *sequence.Scheduler

	movement MovementComponent
	stamina  StaminaComponent
	sanity   SanityComponent
	look     LookComponent
}

// New creates a new player. Components must be registered on it before the first tick. A nil clock
// measures real-time waits with the system clock.
func New(log *logrus.Logger, opts settings.Settings, clock sequence.Clock) *Player {
	p := &Player{
		log:       log,
		Dbg:       &Debugger{log: log},
		opts:      &opts,
		handler:   NopHandler{},
		scheduler: sequence.NewScheduler(clock),
	}
	p.state = p.newState()
	return p
}

func (p *Player) newState() State {
	return State{
		Mode:          MovementModeStanding,
		Grounded:      true,
		CapsuleHeight: p.opts.Capsule.StandingHeight,
		CapsuleCenter: p.opts.Capsule.StandingHeight / 2,
		Stamina: StaminaState{
			Current: p.opts.Stamina.Max,
			Max:     p.opts.Stamina.Max,
		},
		Sanity: SanityState{
			Current: p.opts.Sanity.Start,
			Max:     p.opts.Sanity.Max,
		},
	}
}

// Tick runs one simulation step with the given input and returns a snapshot of the result.
func (p *Player) Tick(input InputState) TickResult {
	assert.IsTrue(p.movement != nil && p.stamina != nil && p.sanity != nil && p.look != nil, "player components are not registered")

	dt := input.DeltaTime
	if !(dt > 0) || math32.IsInf(dt, 0) {
		return p.result(OutcomeSkipped)
	}
	p.dt = dt
	p.simTime += dt
	p.tick++

	outcome := OutcomeNormal
	input.Move = game.ClampIntent(input.Move)
	if !game.Finite(input.Look.X()) || !game.Finite(input.Look.Y()) {
		input.Look = mgl32.Vec2{}
	}
	if p.state.ControlLocked {
		input = InputState{DeltaTime: dt}
		outcome = OutcomeLocked
	}

	p.look.Tick(input.Look)
	p.movement.Simulate(input)
	p.stamina.Tick()
	p.sanity.Tick()
	p.scheduler.Tick(dt)
	return p.result(outcome)
}

func (p *Player) result(outcome Outcome) TickResult {
	return TickResult{
		Tick:    p.tick,
		Time:    p.simTime,
		Outcome: outcome,
		State:   p.state,
	}
}

// Reset ends the current run and prepares the player for the next one at the given spawn point.
// Every running sequence is cancelled, and look overrides, control lock and the sanity terminal
// latch are cleared.
func (p *Player) Reset(spawn mgl32.Vec3, yaw float32) {
	p.scheduler.CancelAll()
	if p.sanity != nil {
		p.sanity.Reset()
	}
	p.state = p.newState()
	p.state.Position = spawn
	p.state.Orientation.Yaw = yaw
	p.simTime, p.dt, p.tick = 0, 0, 0
	p.log.Debugf("player reset at %v", spawn)
}

// State returns a pointer to the player's state. Components mutate it in place.
func (p *Player) State() *State {
	return &p.state
}

// Opts returns the settings the player runs with.
func (p *Player) Opts() *settings.Settings {
	return p.opts
}

// Log returns the player's logger.
func (p *Player) Log() *logrus.Logger {
	return p.log
}

// Scheduler returns the scheduler that runs the player's sequences.
func (p *Player) Scheduler() *sequence.Scheduler {
	return p.scheduler
}

// SimTime returns the accumulated simulation time in seconds.
func (p *Player) SimTime() float32 {
	return p.simTime
}

// DeltaTime returns the delta time of the current tick.
func (p *Player) DeltaTime() float32 {
	return p.dt
}

// CurrentTick returns the amount of ticks run since the start of the run.
func (p *Player) CurrentTick() uint64 {
	return p.tick
}

// Handle sets the handler of the player. A nil handler restores the no-op handler.
func (p *Player) Handle(h Handler) {
	if h == nil {
		h = NopHandler{}
	}
	p.handler = h
}

// Handler returns the handler of the player.
func (p *Player) Handler() Handler {
	return p.handler
}

// SetGroundProber sets the ground probe. Without one the player is always grounded.
func (p *Player) SetGroundProber(g GroundProber) {
	p.ground = g
}

// SetClearanceProber sets the standing clearance probe. Without one standing always fits.
func (p *Player) SetClearanceProber(c ClearanceProber) {
	p.clearance = c
}

// SetMover sets the mover used to resolve displacements.
func (p *Player) SetMover(m Mover) {
	p.mover = m
}

// Grounded probes the ground under the player.
func (p *Player) Grounded() bool {
	if p.ground == nil {
		return true
	}
	return p.ground.Grounded(p.state.Position, p.opts.Capsule.Radius)
}

// CanStand probes whether a standing capsule fits at the player's position.
func (p *Player) CanStand() bool {
	if p.clearance == nil {
		return true
	}
	return p.clearance.CanStand(p.state.Position, p.opts.Capsule.StandingHeight, p.opts.Capsule.Radius)
}

// Mover returns the mover of the player, which may be nil.
func (p *Player) Mover() Mover {
	return p.mover
}

// EyePosition returns the world position the player looks from.
func (p *Player) EyePosition() mgl32.Vec3 {
	return p.state.Position.Add(mgl32.Vec3{0, p.state.CapsuleHeight - p.opts.Capsule.EyeOffset, 0})
}
