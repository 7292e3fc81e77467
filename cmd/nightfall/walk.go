package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/nightfall/player"
)

// segment is a part of the scripted walk, held for a number of ticks.
type segment struct {
	ticks int
	input player.InputState
}

// walk is an input source that plays a fixed list of segments: down the hallway, back out and into
// the crawlspace.
type walk struct {
	segments  []segment
	seg, tick int
}

func newWalk() *walk {
	forward := mgl32.Vec2{0, 1}
	return &walk{segments: []segment{
		{ticks: 100, input: player.InputState{Move: forward}},
		{ticks: 150, input: player.InputState{Move: forward, Sprint: true}},
		{ticks: 100},
		{ticks: 60, input: player.InputState{Look: mgl32.Vec2{30, 0}}},
		{ticks: 200, input: player.InputState{Move: forward}},
		{ticks: 1, input: player.InputState{Crouch: true}},
		{ticks: 200, input: player.InputState{Move: mgl32.Vec2{0.3, 1}}},
		{ticks: 1, input: player.InputState{Crouch: true}},
		{ticks: 50},
	}}
}

// Next ...
func (w *walk) Next() (player.InputState, bool) {
	for w.seg < len(w.segments) && w.tick >= w.segments[w.seg].ticks {
		w.seg, w.tick = w.seg+1, 0
	}
	if w.seg >= len(w.segments) {
		return player.InputState{}, false
	}
	w.tick++
	return w.segments[w.seg].input, true
}
