package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/nightfall/game"
	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for a simulation run.
type Settings struct {
	Movement struct {
		WalkSpeed    float32
		SprintSpeed  float32
		CrouchSpeed  float32
		Acceleration float32
		Deceleration float32
		Gravity      float32
		GroundStick  float32
		// CrouchToggle selects toggle crouching. When false the crouch button must be held.
		CrouchToggle bool
	}
	Capsule struct {
		StandingHeight  float32
		CrouchHeight    float32
		Radius          float32
		MinClearance    float32
		HeightLerpSpeed float32
		EyeOffset       float32
	}
	Stamina struct {
		Max              float32
		DrainPerSecond   float32
		RegenPerSecond   float32
		RegenDelay       float32
		MinSprintToStart float32
	}
	Sanity struct {
		Max            float32
		Start          float32
		RegenPerSecond float32
		// TerminalDelay is the real-time wait, in seconds, between the terminal screen and the scene transition.
		TerminalDelay float32
	}
	Look struct {
		Sensitivity float32
		MinPitch    float32
		MaxPitch    float32
	}
	Runner struct {
		TickRate      int
		TimeScale     float32
		RecordingFile string
		SentryDSN     string
	}
	Level struct {
		GroundDistance float32
		Solids         []Box
		Triggers       []Trigger
	}
	Scares []Scare
}

// Box is an axis aligned box given by two corners.
type Box struct {
	Min []float32
	Max []float32
}

// Trigger is a named volume that fires the scare with the same name when entered.
type Trigger struct {
	Name string
	Box  Box
}

// Scare describes a scripted scare played by the scare dispatcher.
type Scare struct {
	Name        string
	SanityDelta float32
	// LookAt is optional. When set the player's gaze is redirected to this point.
	LookAt        []float32
	RotateSeconds float32
	HoldSeconds   float32
	// LockSeconds is how long (simulated time) control stays locked. Zero means control is not locked.
	LockSeconds float32
	Once        bool
}

// DefaultSettings returns the default settings for a run.
func DefaultSettings() Settings {
	s := Settings{}
	s.Movement.WalkSpeed = game.DefaultWalkSpeed
	s.Movement.SprintSpeed = game.DefaultSprintSpeed
	s.Movement.CrouchSpeed = game.DefaultCrouchSpeed
	s.Movement.Acceleration = game.DefaultAcceleration
	s.Movement.Deceleration = game.DefaultDeceleration
	s.Movement.Gravity = game.DefaultGravity
	s.Movement.GroundStick = game.DefaultGroundStick
	s.Movement.CrouchToggle = true

	s.Capsule.StandingHeight = game.DefaultStandingHeight
	s.Capsule.CrouchHeight = game.DefaultCrouchHeight
	s.Capsule.Radius = game.DefaultCapsuleRadius
	s.Capsule.MinClearance = game.DefaultMinClearance
	s.Capsule.HeightLerpSpeed = game.DefaultHeightLerpSpeed
	s.Capsule.EyeOffset = game.DefaultEyeOffset

	s.Stamina.Max = game.DefaultStaminaMax
	s.Stamina.DrainPerSecond = game.DefaultStaminaDrain
	s.Stamina.RegenPerSecond = game.DefaultStaminaRegen
	s.Stamina.RegenDelay = game.DefaultStaminaRegenWait
	s.Stamina.MinSprintToStart = game.DefaultMinSprintToStart

	s.Sanity.Max = game.DefaultSanityMax
	s.Sanity.RegenPerSecond = game.DefaultSanityRegen
	s.Sanity.TerminalDelay = 3

	s.Look.Sensitivity = game.DefaultLookSensitivity
	s.Look.MinPitch = game.DefaultMinPitch
	s.Look.MaxPitch = game.DefaultMaxPitch

	s.Runner.TickRate = 50
	s.Runner.TimeScale = 1

	s.Level.GroundDistance = 0.1
	s.Level.Solids = []Box{
		{Min: []float32{-50, -1, -50}, Max: []float32{50, 0, 50}},
		// A low crawlspace: standing does not fit underneath, crouching does.
		{Min: []float32{5, 1.2, -2}, Max: []float32{9, 3, 2}},
	}
	s.Level.Triggers = []Trigger{
		{Name: "hallway", Box: Box{Min: []float32{0, 0, 10}, Max: []float32{4, 3, 12}}},
	}
	s.Scares = []Scare{{
		Name:          "hallway",
		SanityDelta:   15,
		LookAt:        []float32{2, 1.5, 20},
		RotateSeconds: 0.4,
		HoldSeconds:   1,
		LockSeconds:   1.4,
		Once:          true,
	}}
	return s
}

// Validate checks the settings for values the simulator cannot run with.
func (s Settings) Validate() error {
	minHeight := 2*s.Capsule.Radius + s.Capsule.MinClearance
	switch {
	case s.Capsule.Radius <= 0:
		return errors.New("capsule radius must be positive")
	case s.Capsule.CrouchHeight < minHeight:
		return fmt.Errorf("crouch height %.2f is below the capsule minimum of %.2f", s.Capsule.CrouchHeight, minHeight)
	case s.Capsule.StandingHeight < s.Capsule.CrouchHeight:
		return fmt.Errorf("standing height %.2f is below crouch height %.2f", s.Capsule.StandingHeight, s.Capsule.CrouchHeight)
	case s.Look.MinPitch > s.Look.MaxPitch:
		return fmt.Errorf("min pitch %.1f is above max pitch %.1f", s.Look.MinPitch, s.Look.MaxPitch)
	case s.Stamina.Max <= 0:
		return errors.New("stamina max must be positive")
	case s.Sanity.Max <= 0:
		return errors.New("sanity max must be positive")
	case s.Sanity.Start < 0 || s.Sanity.Start > s.Sanity.Max:
		return fmt.Errorf("sanity start %.2f is outside [0, %.2f]", s.Sanity.Start, s.Sanity.Max)
	case s.Runner.TickRate <= 0:
		return errors.New("tick rate must be positive")
	case s.Runner.TimeScale <= 0:
		return errors.New("time scale must be positive")
	}
	for i, b := range s.Level.Solids {
		if err := b.validate(); err != nil {
			return fmt.Errorf("solid %d: %w", i, err)
		}
	}
	for _, t := range s.Level.Triggers {
		if err := t.Box.validate(); err != nil {
			return fmt.Errorf("trigger %q: %w", t.Name, err)
		}
	}
	for _, sc := range s.Scares {
		if len(sc.LookAt) != 0 && len(sc.LookAt) != 3 {
			return fmt.Errorf("scare %q: look at point needs 3 components, got %d", sc.Name, len(sc.LookAt))
		}
	}
	return nil
}

func (b Box) validate() error {
	if len(b.Min) != 3 || len(b.Max) != 3 {
		return errors.New("box corners need 3 components")
	}
	return nil
}

// Corners returns the corners of the box as vectors. It must only be called on validated boxes.
func (b Box) Corners() (mgl32.Vec3, mgl32.Vec3) {
	return Vec3(b.Min), Vec3(b.Max)
}

// Vec3 converts a three component slice to a vector. Missing components are zero.
func Vec3(v []float32) mgl32.Vec3 {
	var out mgl32.Vec3
	copy(out[:], v)
	return out
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %w", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %w", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
// Values missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return settings, nil
}
