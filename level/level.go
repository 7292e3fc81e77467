package level

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/nightfall/player"
	"github.com/oomph-ac/nightfall/settings"
	"github.com/sirupsen/logrus"
)

var (
	_ player.GroundProber    = (*Level)(nil)
	_ player.ClearanceProber = (*Level)(nil)
	_ player.Mover           = (*Level)(nil)
)

// Level is a static set of solid boxes and named trigger volumes the player moves through.
type Level struct {
	log *logrus.Logger

	groundDistance float32
	solids         []cube.BBox
	triggers       []trigger
}

type trigger struct {
	name   string
	box    cube.BBox
	inside bool
}

// New builds a level from the given settings. The settings must have been validated.
func New(log *logrus.Logger, opts settings.Settings) *Level {
	l := &Level{log: log, groundDistance: opts.Level.GroundDistance}
	for _, b := range opts.Level.Solids {
		l.solids = append(l.solids, boxOf(b))
	}
	for _, t := range opts.Level.Triggers {
		l.triggers = append(l.triggers, trigger{name: t.Name, box: boxOf(t.Box)})
	}
	log.Debugf("level loaded with %d solids and %d triggers", len(l.solids), len(l.triggers))
	return l
}

func boxOf(b settings.Box) cube.BBox {
	lo, hi := b.Corners()
	return cube.Box(lo.X(), lo.Y(), lo.Z(), hi.X(), hi.Y(), hi.Z())
}

// CapsuleBox returns the bounding box of a capsule standing on pos.
func CapsuleBox(pos mgl32.Vec3, height, radius float32) cube.BBox {
	return cube.Box(
		pos.X()-radius, pos.Y(), pos.Z()-radius,
		pos.X()+radius, pos.Y()+height, pos.Z()+radius,
	)
}

// Solids returns the solid boxes of the level.
func (l *Level) Solids() []cube.BBox {
	return l.solids
}

// Grounded returns true if a solid is within the ground distance under the feet at pos.
func (l *Level) Grounded(pos mgl32.Vec3, radius float32) bool {
	feet := cube.Box(
		pos.X()-radius, pos.Y()-l.groundDistance, pos.Z()-radius,
		pos.X()+radius, pos.Y(), pos.Z()+radius,
	)
	return l.intersectsAny(feet)
}

// CanStand returns true if a capsule of the given height fits at pos without touching a solid.
func (l *Level) CanStand(pos mgl32.Vec3, height, radius float32) bool {
	return !l.intersectsAny(CapsuleBox(pos, height, radius))
}

// Move displaces the capsule at pos by delta, clipping the displacement against the level's solids
// one axis at a time: vertical first, then X, then Z.
func (l *Level) Move(pos, delta mgl32.Vec3, height, radius float32) mgl32.Vec3 {
	bb := CapsuleBox(pos, height, radius)
	nearby := l.nearby(bb.Extend(delta))

	var moved mgl32.Vec3
	for _, axis := range [3]int{1, 0, 2} {
		d := delta[axis]
		for _, solid := range nearby {
			d = clipAxis(solid, bb, axis, d)
		}
		var offset mgl32.Vec3
		offset[axis] = d
		bb = bb.Translate(offset)
		moved[axis] = d
	}
	return pos.Add(moved)
}

// Triggers returns the names of the triggers the capsule entered since the last call. A trigger
// fires again only after the capsule has left it.
func (l *Level) Triggers(pos mgl32.Vec3, height, radius float32) []string {
	bb := CapsuleBox(pos, height, radius)

	var entered []string
	for i := range l.triggers {
		t := &l.triggers[i]
		inside := t.box.IntersectsWith(bb)
		if inside && !t.inside {
			entered = append(entered, t.name)
			l.log.Debugf("trigger %q entered at %v", t.name, pos)
		}
		t.inside = inside
	}
	return entered
}

// ResetTriggers forgets which triggers the capsule is in, so that they fire again on the next call
// to Triggers.
func (l *Level) ResetTriggers() {
	for i := range l.triggers {
		l.triggers[i].inside = false
	}
}

func (l *Level) intersectsAny(bb cube.BBox) bool {
	for _, solid := range l.solids {
		if solid.IntersectsWith(bb) {
			return true
		}
	}
	return false
}

func (l *Level) nearby(bb cube.BBox) []cube.BBox {
	var out []cube.BBox
	for _, solid := range l.solids {
		if solid.IntersectsWith(bb.Grow(collideEpsilon)) {
			out = append(out, solid)
		}
	}
	return out
}
