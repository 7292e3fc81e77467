package scare

import (
	"time"

	"github.com/oomph-ac/nightfall/player"
	"github.com/oomph-ac/nightfall/sequence"
	"github.com/oomph-ac/nightfall/settings"
	"github.com/samber/lo"
)

// SequenceName returns the name of the sequence that plays the scare with the given name.
func SequenceName(name string) string {
	return "scare." + name
}

// Dispatcher plays scripted scares on a player. Each scare runs as a sequence on the player's
// scheduler, so a scare lasts across ticks without blocking the simulation.
type Dispatcher struct {
	mPlayer *player.Player
	scares  map[string]settings.Scare

	// fired holds the Once scares that already played this run.
	fired map[string]struct{}
	// locks is the amount of running scares holding the control lock.
	locks int
}

// NewDispatcher returns a dispatcher playing the given scares on the player.
func NewDispatcher(p *player.Player, scares []settings.Scare) *Dispatcher {
	return &Dispatcher{
		mPlayer: p,
		scares:  lo.KeyBy(scares, func(s settings.Scare) string { return s.Name }),
		fired:   make(map[string]struct{}),
	}
}

// Trigger starts the scare with the given name. It returns false if no such scare exists, if the
// scare is already playing, or if it may only play once and already has.
func (d *Dispatcher) Trigger(name string) bool {
	sc, ok := d.scares[name]
	if !ok {
		d.mPlayer.Log().Debugf("no scare registered for %q", name)
		return false
	}
	if _, ok := d.fired[name]; ok {
		return false
	}
	if d.mPlayer.Scheduler().Running(SequenceName(name)) {
		return false
	}
	if sc.Once {
		d.fired[name] = struct{}{}
	}

	p := d.mPlayer
	var steps []sequence.Step
	if sc.LockSeconds > 0 {
		steps = append(steps, sequence.Do(d.lock))
	}
	if len(sc.LookAt) == 3 {
		point := settings.Vec3(sc.LookAt)
		steps = append(steps, sequence.Do(func() {
			p.LookAtWorld(point, sc.RotateSeconds, sc.HoldSeconds, false)
		}))
	}
	steps = append(steps, sequence.Do(func() {
		p.AddSanity(sc.SanityDelta)
	}))
	if sc.LockSeconds > 0 {
		steps = append(steps,
			sequence.Wait(time.Duration(float64(sc.LockSeconds)*float64(time.Second))),
			sequence.Do(d.unlock),
		)
	}

	p.Log().Infof("playing scare %q (sanity %+.1f)", name, sc.SanityDelta)
	p.Dbg.Notify(player.DebugModeSequences, true, "scare %q started with %d steps", name, len(steps))
	p.Scheduler().Start(sequence.New(SequenceName(name), steps...))
	return true
}

// Reset re-arms every scare for a new run. The player's scheduler must already have been reset.
func (d *Dispatcher) Reset() {
	clear(d.fired)
	d.locks = 0
}

func (d *Dispatcher) lock() {
	if d.locks == 0 {
		d.mPlayer.LockControl(true)
	}
	d.locks++
}

// unlock releases the control lock once no scare holds it. A run that ended keeps control locked.
func (d *Dispatcher) unlock() {
	d.locks--
	if d.locks > 0 || d.mPlayer.SanityComponent().Terminal() {
		return
	}
	d.mPlayer.LockControl(false)
}
