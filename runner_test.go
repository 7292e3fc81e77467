package nightfall

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/nightfall/player"
	"github.com/oomph-ac/nightfall/scare"
	"github.com/oomph-ac/nightfall/sequence"
	"github.com/oomph-ac/nightfall/session"
	"github.com/oomph-ac/nightfall/settings"
	"github.com/sirupsen/logrus"
)

var spawn = mgl32.Vec3{2, 0, 0}

func testSettings(mutate func(s *settings.Settings)) settings.Settings {
	s := settings.DefaultSettings()
	s.Sanity.Start = 0
	s.Sanity.RegenPerSecond = 0
	s.Runner.TickRate = 1000
	if mutate != nil {
		mutate(&s)
	}
	return s
}

func newTestRunner(t *testing.T, s settings.Settings) *Runner {
	t.Helper()
	if err := s.Validate(); err != nil {
		t.Fatalf("invalid test settings: %v", err)
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	r := New(log, s, sequence.NewManualClock(time.Unix(0, 0)))
	r.Reset(spawn, 0)
	return r
}

var forward = player.InputState{Move: mgl32.Vec2{0, 1}, DeltaTime: 0.02}

func TestRunnerFiresScareOnTrigger(t *testing.T) {
	r := newTestRunner(t, testSettings(nil))
	p := r.Player()

	var res player.TickResult
	for i := 0; i < 1000 && p.Sanity() == 0; i++ {
		res = r.Tick(forward)
	}
	if p.Sanity() != 15 {
		t.Fatalf("sanity = %v, want the hallway scare to add 15", p.Sanity())
	}
	if res.State.Sanity.Current != 15 || !res.State.ControlLocked {
		t.Fatalf("tick result does not include the scare: %+v", res.State)
	}
	if z := res.State.Position.Z(); z < 9.6 || z > 10.5 {
		t.Fatalf("scare fired at z=%v, expected at the hallway entrance", z)
	}
	if y := res.State.Position.Y(); y != 0 {
		t.Fatalf("player should stay on the floor, y=%v", y)
	}
	if !r.Player().Scheduler().Running(scare.SequenceName("hallway")) {
		t.Fatalf("expected the hallway scare to be playing")
	}

	// The scare only plays once per run.
	for i := 0; i < 200; i++ {
		r.Tick(player.InputState{Move: mgl32.Vec2{0, -1}, DeltaTime: 0.02})
	}
	for i := 0; i < 200; i++ {
		r.Tick(forward)
	}
	if p.Sanity() != 15 {
		t.Fatalf("hallway scare played twice, sanity = %v", p.Sanity())
	}
}

func TestRunnerCrawlspace(t *testing.T) {
	r := newTestRunner(t, testSettings(nil))
	r.Reset(mgl32.Vec3{3, 0, 0}, 90)

	var res player.TickResult
	for i := 0; i < 100; i++ {
		res = r.Tick(forward)
	}
	if x := res.State.Position.X(); x > 4.71 {
		t.Fatalf("a standing player walked into the crawlspace, x=%v", x)
	}

	r.Tick(player.InputState{Crouch: true, DeltaTime: 0.02})
	for i := 0; i < 100; i++ {
		res = r.Tick(forward)
	}
	if x := res.State.Position.X(); x < 5.5 || !res.State.Crouching() {
		t.Fatalf("a crouching player should enter the crawlspace, x=%v mode=%v", x, res.State.Mode)
	}

	r.Tick(player.InputState{DeltaTime: 0.02})
	res = r.Tick(player.InputState{Crouch: true, DeltaTime: 0.02})
	if !res.State.Crouching() {
		t.Fatalf("stood up under the crawlspace ceiling")
	}
}

func TestRunnerStartEndsWithRun(t *testing.T) {
	s := testSettings(func(s *settings.Settings) {
		s.Sanity.Start = 95
		s.Sanity.TerminalDelay = 0
		s.Runner.TimeScale = 20
	})
	r := newTestRunner(t, s)
	h := &countingHandler{}
	r.Handle(h)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	src := InputSourceFunc(func() (player.InputState, bool) {
		return player.InputState{Move: mgl32.Vec2{0, 1}}, true
	})
	if err := r.Start(ctx, src); err != nil {
		t.Fatalf("expected the run to end cleanly, got %v", err)
	}
	if !r.Ended() || h.transitions != 1 {
		t.Fatalf("ended = %v transitions = %d", r.Ended(), h.transitions)
	}
	if got := r.Player().DeltaTime(); got != s.Runner.TimeScale/float32(s.Runner.TickRate) {
		t.Fatalf("dt = %v, want the configured tick length", got)
	}

	r.Reset(spawn, 0)
	if r.Ended() || r.Player().Sanity() != 95 {
		t.Fatalf("reset did not start a new run")
	}
}

func TestRunnerStartStops(t *testing.T) {
	r := newTestRunner(t, testSettings(nil))

	n := 0
	src := InputSourceFunc(func() (player.InputState, bool) {
		n++
		return player.InputState{}, n <= 5
	})
	if err := r.Start(context.Background(), src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Player().CurrentTick() != 5 {
		t.Fatalf("ran %d ticks, want 5", r.Player().CurrentTick())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Start(ctx, src); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
	if err := r.Start(context.Background(), src); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if res := r.Tick(forward); res.Outcome != player.OutcomeSkipped {
		t.Fatalf("tick after close should be skipped, got %v", res.Outcome)
	}
}

func TestRunnerRecordingReplays(t *testing.T) {
	s := testSettings(nil)
	r := newTestRunner(t, s)

	buf := &bytes.Buffer{}
	rec, err := session.NewRecorder(buf, session.Header{Settings: s, Spawn: spawn})
	if err != nil {
		t.Fatalf("unable to start recording: %v", err)
	}
	r.Record(rec)
	for i := 0; i < 400; i++ {
		in := forward
		in.Sprint = i < 100
		in.Look = mgl32.Vec2{float32(i%7) - 3, 0}
		r.Tick(in)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("unable to close runner: %v", err)
	}
	if r.Player().Sanity() == 0 {
		t.Fatalf("the recorded run should include the hallway scare")
	}

	decoded, err := session.DecodeRecording(buf)
	if err != nil {
		t.Fatalf("unable to decode recording: %v", err)
	}
	replay := newTestRunner(t, decoded.Header.Settings)
	replay.Reset(decoded.Header.Spawn, decoded.Header.Yaw)
	if m := session.Replay(decoded, replay); len(m) != 0 {
		t.Fatalf("replay diverged on %d ticks, first at %d", len(m), m[0].Tick)
	}
}

type countingHandler struct {
	player.NopHandler
	transitions int
}

func (h *countingHandler) HandleSceneTransition() {
	h.transitions++
}
