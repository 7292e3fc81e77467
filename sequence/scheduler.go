package sequence

import (
	"time"

	"github.com/elliotchance/orderedmap/v2"
)

// Scheduler advances running sequences once per simulation tick, in the order they were started.
// It is not safe for concurrent use: sequences are expected to be started and ticked from the
// simulation's tick goroutine.
type Scheduler struct {
	clock   Clock
	running *orderedmap.OrderedMap[string, *Sequence]
}

// NewScheduler returns a new Scheduler measuring real-time waits with the given clock. A nil
// clock falls back to SystemClock.
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{
		clock:   clock,
		running: orderedmap.NewOrderedMap[string, *Sequence](),
	}
}

// Clock returns the clock used for real-time waits.
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// Start starts a sequence, replacing any running sequence with the same name. Leading steps that
// do not wait are run before Start returns.
func (s *Scheduler) Start(seq *Sequence) {
	s.Cancel(seq.name)
	seq.advance(0, s.clock)
	if !seq.Done() {
		s.running.Set(seq.name, seq)
	}
}

// Tick advances every running sequence by dt seconds of simulated time.
func (s *Scheduler) Tick(dt float32) {
	budget := time.Duration(float64(dt) * float64(time.Second))
	for _, name := range s.running.Keys() {
		seq, ok := s.running.Get(name)
		if !ok {
			continue
		}
		seq.advance(budget, s.clock)
		if !seq.Done() {
			continue
		}
		// A step may have replaced the sequence under the same name.
		if cur, ok := s.running.Get(name); ok && cur == seq {
			s.running.Delete(name)
		}
	}
}

// Running returns true if a sequence with the given name is still running.
func (s *Scheduler) Running(name string) bool {
	_, ok := s.running.Get(name)
	return ok
}

// Len returns the amount of running sequences.
func (s *Scheduler) Len() int {
	return s.running.Len()
}

// Cancel stops the sequence with the given name. It returns false if no such sequence was running.
func (s *Scheduler) Cancel(name string) bool {
	seq, ok := s.running.Get(name)
	if !ok {
		return false
	}
	seq.cancelled = true
	s.running.Delete(name)
	return true
}

// CancelAll stops every running sequence.
func (s *Scheduler) CancelAll() {
	for _, name := range s.running.Keys() {
		s.Cancel(name)
	}
}
