package component

import (
	"io"
	"testing"
	"time"

	"github.com/oomph-ac/nightfall/player"
	"github.com/oomph-ac/nightfall/sequence"
	"github.com/oomph-ac/nightfall/settings"
	"github.com/sirupsen/logrus"
)

type recordingHandler struct {
	player.NopHandler

	changes     int
	ambient     int
	screens     int
	transitions int
}

func (h *recordingHandler) HandleSanityChange(float32, float32) { h.changes++ }
func (h *recordingHandler) HandleAmbientStop()                  { h.ambient++ }
func (h *recordingHandler) HandleTerminalScreen()               { h.screens++ }
func (h *recordingHandler) HandleSceneTransition()              { h.transitions++ }

func newTestPlayer(t *testing.T, mutate func(s *settings.Settings)) (*player.Player, *sequence.ManualClock, *recordingHandler) {
	t.Helper()

	s := settings.DefaultSettings()
	if mutate != nil {
		mutate(&s)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("invalid test settings: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	clock := sequence.NewManualClock(time.Unix(0, 0))
	p := player.New(log, s, clock)
	Register(p)

	h := &recordingHandler{}
	p.Handle(h)
	return p, clock, h
}

func tickN(p *player.Player, n int, input player.InputState) player.TickResult {
	var res player.TickResult
	for i := 0; i < n; i++ {
		res = p.Tick(input)
	}
	return res
}
