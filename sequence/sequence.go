package sequence

import "time"

type stepKind uint8

const (
	stepDo stepKind = iota
	stepWait
	stepWaitRealtime
)

// Step is a single entry of a Sequence: either a state change or a wait.
type Step struct {
	kind stepKind
	fn   func()
	d    time.Duration
}

// Do returns a step that calls fn once when reached.
func Do(fn func()) Step {
	return Step{kind: stepDo, fn: fn}
}

// Wait returns a step that suspends the sequence for d of simulated time.
func Wait(d time.Duration) Step {
	return Step{kind: stepWait, d: d}
}

// WaitRealtime returns a step that suspends the sequence for d of real time, as measured by
// the scheduler's Clock.
func WaitRealtime(d time.Duration) Step {
	return Step{kind: stepWaitRealtime, d: d}
}

// Sequence is a named, linear timeline of steps advanced by a Scheduler.
type Sequence struct {
	name  string
	steps []Step

	cursor    int
	waiting   bool
	elapsed   time.Duration
	startedAt time.Time
	cancelled bool
}

// New creates a new sequence with the given name and steps.
func New(name string, steps ...Step) *Sequence {
	return &Sequence{name: name, steps: steps}
}

// Name returns the name of the sequence.
func (s *Sequence) Name() string {
	return s.name
}

// Done returns true if the sequence ran all of its steps or was cancelled.
func (s *Sequence) Done() bool {
	return s.cancelled || s.cursor >= len(s.steps)
}

// advance runs steps until the sequence finishes or reaches a wait that has not yet elapsed.
// budget is the simulated time available this tick; simulated time left over after a wait
// completes is carried into the following steps.
func (s *Sequence) advance(budget time.Duration, clock Clock) {
	for !s.Done() {
		step := s.steps[s.cursor]
		switch step.kind {
		case stepDo:
			s.cursor++
			if step.fn != nil {
				step.fn()
			}
		case stepWait:
			need := step.d - s.elapsed
			if budget < need {
				s.elapsed += budget
				s.waiting = true
				return
			}
			budget -= need
			s.nextWait()
		case stepWaitRealtime:
			now := clock.Now()
			if !s.waiting {
				s.waiting = true
				s.startedAt = now
			}
			if now.Sub(s.startedAt) < step.d {
				return
			}
			s.nextWait()
		}
	}
}

func (s *Sequence) nextWait() {
	s.cursor++
	s.waiting = false
	s.elapsed = 0
	s.startedAt = time.Time{}
}
