package player

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	DebugModeMovement = iota
	DebugModeStamina
	DebugModeSanity
	DebugModeLook
	DebugModeSequences
	debugModeCount
)

var debugModeNames = [debugModeCount]string{"movement", "stamina", "sanity", "look", "sequences"}

// DebugModeFromName returns the debug mode with the given name.
func DebugModeFromName(name string) (int, bool) {
	for mode, n := range debugModeNames {
		if n == name {
			return mode, true
		}
	}
	return 0, false
}

// Debugger logs per-subsystem debug notifications when their mode is enabled.
type Debugger struct {
	log   *logrus.Logger
	modes [debugModeCount]bool
}

// Toggle flips the given debug mode on or off.
func (d *Debugger) Toggle(mode int) {
	if mode < 0 || mode >= debugModeCount {
		panic(fmt.Errorf("unknown debug mode %v", mode))
	}
	d.modes[mode] = !d.modes[mode]
}

// Enabled returns true if the given debug mode is on.
func (d *Debugger) Enabled(mode int) bool {
	return mode >= 0 && mode < debugModeCount && d.modes[mode]
}

// Notify logs the message if the mode is enabled and cond is true.
func (d *Debugger) Notify(mode int, cond bool, format string, args ...interface{}) {
	if !cond || !d.Enabled(mode) || d.log == nil {
		return
	}
	d.log.WithField("mode", debugModeNames[mode]).Debugf(format, args...)
}
