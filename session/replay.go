package session

import "github.com/oomph-ac/nightfall/player"

// Ticker runs a single simulation tick.
type Ticker interface {
	Tick(input player.InputState) player.TickResult
}

// Mismatch is a replayed tick whose state differs from the recorded one.
type Mismatch struct {
	Tick      uint64
	Want, Got uint64
}

// Replay feeds every recorded input into t and returns the ticks whose resulting state does not
// match the recording. t must have been set up from the recording's header and not ticked yet.
func Replay(rec *Recording, t Ticker) []Mismatch {
	var mismatches []Mismatch
	for _, f := range rec.Frames {
		res := t.Tick(f.Input)
		if got := Checksum(res.State); got != f.Checksum || res.Tick != f.Tick {
			mismatches = append(mismatches, Mismatch{Tick: f.Tick, Want: f.Checksum, Got: got})
		}
	}
	return mismatches
}
