package nightfall

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/nightfall/level"
	"github.com/oomph-ac/nightfall/oerror"
	"github.com/oomph-ac/nightfall/player"
	"github.com/oomph-ac/nightfall/player/component"
	"github.com/oomph-ac/nightfall/scare"
	"github.com/oomph-ac/nightfall/sequence"
	"github.com/oomph-ac/nightfall/session"
	"github.com/oomph-ac/nightfall/settings"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// ErrClosed is returned by Start when the runner was closed.
var ErrClosed = errors.New("nightfall runner closed")

// InputSource provides the input of each tick. Next returns false once the source is exhausted.
type InputSource interface {
	Next() (player.InputState, bool)
}

// InputSourceFunc is an InputSource implemented by a function.
type InputSourceFunc func() (player.InputState, bool)

// Next ...
func (f InputSourceFunc) Next() (player.InputState, bool) {
	return f()
}

// Runner runs a single player through a level. It wires the player to the level's probes, fires
// scares when the player enters trigger volumes and optionally records every tick.
type Runner struct {
	log  *logrus.Logger
	opts settings.Settings

	p      *player.Player
	lvl    *level.Level
	scares *scare.Dispatcher

	tickMu sync.Mutex
	rec    *session.Recorder
	h      player.Handler

	ended  atomic.Bool
	closed atomic.Bool
}

// New creates a runner for the given settings, which must have been validated. A nil clock
// measures real-time waits with the system clock.
func New(log *logrus.Logger, opts settings.Settings, clock sequence.Clock) *Runner {
	p := player.New(log, opts, clock)
	component.Register(p)

	lvl := level.New(log, opts)
	p.SetGroundProber(lvl)
	p.SetClearanceProber(lvl)
	p.SetMover(lvl)

	r := &Runner{
		log:    log,
		opts:   opts,
		p:      p,
		lvl:    lvl,
		scares: scare.NewDispatcher(p, opts.Scares),
		h:      player.NopHandler{},
	}
	p.Handle(runHandler{r: r})
	return r
}

// Player returns the simulated player.
func (r *Runner) Player() *player.Player {
	return r.p
}

// Level returns the level the player moves through.
func (r *Runner) Level() *level.Level {
	return r.lvl
}

// Scares returns the scare dispatcher of the run.
func (r *Runner) Scares() *scare.Dispatcher {
	return r.scares
}

// Handle sets the handler notified of the player's events. A nil handler restores the no-op handler.
func (r *Runner) Handle(h player.Handler) {
	if h == nil {
		h = player.NopHandler{}
	}
	r.h = h
}

// Record makes the runner write every tick to rec. The recorder is closed with the runner.
func (r *Runner) Record(rec *session.Recorder) {
	r.tickMu.Lock()
	defer r.tickMu.Unlock()
	r.rec = rec
}

// Reset starts a new run at the given spawn point.
func (r *Runner) Reset(spawn mgl32.Vec3, yaw float32) {
	r.tickMu.Lock()
	defer r.tickMu.Unlock()

	r.p.Reset(spawn, yaw)
	r.scares.Reset()
	r.lvl.ResetTriggers()
	r.ended.Store(false)
}

// Ended returns true once the scene transition of the run was handed off.
func (r *Runner) Ended() bool {
	return r.ended.Load()
}

// Tick runs a single tick: the player is simulated, then scares are fired for the trigger volumes
// it entered. The returned state includes the effects of those scares.
func (r *Runner) Tick(input player.InputState) player.TickResult {
	r.tickMu.Lock()
	defer r.tickMu.Unlock()

	if r.closed.Load() {
		return player.TickResult{Tick: r.p.CurrentTick(), Time: r.p.SimTime(), Outcome: player.OutcomeSkipped, State: *r.p.State()}
	}

	res := r.p.Tick(input)
	if res.Outcome == player.OutcomeSkipped {
		return res
	}

	state := r.p.State()
	for _, name := range r.lvl.Triggers(state.Position, state.CapsuleHeight, r.opts.Capsule.Radius) {
		r.scares.Trigger(name)
	}
	res.State = *state

	if r.rec != nil {
		if err := r.rec.Record(input, res); err != nil {
			r.log.Errorf("unable to record tick %d: %v", res.Tick, err)
		}
	}
	return res
}

// Start ticks the runner at the configured tick rate, pulling the input of every tick from src, until
// ctx is done, src is exhausted or the run ends. Inputs without a delta time get the configured tick
// length, scaled by the time scale.
func (r *Runner) Start(ctx context.Context, src InputSource) (err error) {
	defer func() {
		if v := recover(); v != nil {
			r.log.Errorf("runner panic on tick %d: %v", r.p.CurrentTick(), v)
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("tick", fmt.Sprint(r.p.CurrentTick()))
			})
			hub.Recover(oerror.New("%v", v))
			hub.Flush(time.Second * 5)
			err = oerror.New("runner panic: %v", v)
		}
	}()

	rate := max(r.opts.Runner.TickRate, 1)
	dt := r.opts.Runner.TimeScale / float32(rate)
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	r.log.Infof("running at %d ticks per second (dt=%.4fs)", rate, dt)
	for {
		if r.closed.Load() {
			return ErrClosed
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		input, ok := src.Next()
		if !ok {
			r.log.Debug("input source exhausted")
			return nil
		}
		if input.DeltaTime == 0 {
			input.DeltaTime = dt
		}
		r.Tick(input)
		if r.ended.Load() {
			return nil
		}
	}
}

// Close stops the runner and closes the recorder, if any. Close may be called more than once.
func (r *Runner) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}

	r.tickMu.Lock()
	defer r.tickMu.Unlock()
	if r.rec != nil {
		return r.rec.Close()
	}
	return nil
}

// runHandler forwards the player's events to the runner's handler and marks the run as ended on
// the scene transition.
type runHandler struct {
	r *Runner
}

func (h runHandler) HandleSanityChange(old, current float32) {
	h.r.h.HandleSanityChange(old, current)
}

func (h runHandler) HandleAmbientStop() {
	h.r.h.HandleAmbientStop()
}

func (h runHandler) HandleTerminalScreen() {
	h.r.h.HandleTerminalScreen()
}

func (h runHandler) HandleSceneTransition() {
	h.r.ended.Store(true)
	h.r.log.Info("run ended, handing off scene transition")
	h.r.h.HandleSceneTransition()
}
