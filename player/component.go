package player

import "github.com/go-gl/mathgl/mgl32"

// MovementComponent turns the tick's intents into velocity, stance and position.
type MovementComponent interface {
	Simulate(input InputState)
}

// StaminaComponent drains and regenerates the stamina meter.
type StaminaComponent interface {
	// CanStartSprint returns true if there is enough stamina to start sprinting.
	CanStartSprint() bool
	// Exhausted returns true if the meter is empty.
	Exhausted() bool
	Tick()
}

// SanityComponent updates the sanity meter and owns the terminal transition.
type SanityComponent interface {
	Add(delta float32)
	Set(value float32)
	// Terminal returns true once the terminal transition has been triggered in this run.
	Terminal() bool
	Tick()
	// Reset clears the terminal latch for a new run.
	Reset()
}

// LookComponent integrates look input and plays look overrides.
type LookComponent interface {
	Tick(look mgl32.Vec2)
	StartFollow(target Target, speed float32, lockControl bool)
	LookAt(point mgl32.Vec3, rotateSeconds, holdSeconds float32, lockControl bool)
	Stop(unlockControl bool)
}

// SetMovement sets the movement component of the player.
func (p *Player) SetMovement(c MovementComponent) {
	p.movement = c
}

// SetStamina sets the stamina component of the player.
func (p *Player) SetStamina(c StaminaComponent) {
	p.stamina = c
}

// Stamina returns the stamina component of the player.
func (p *Player) Stamina() StaminaComponent {
	return p.stamina
}

// SetSanityComponent sets the sanity component of the player.
func (p *Player) SetSanityComponent(c SanityComponent) {
	p.sanity = c
}

// SanityComponent returns the sanity component of the player.
func (p *Player) SanityComponent() SanityComponent {
	return p.sanity
}

// SetLook sets the look component of the player.
func (p *Player) SetLook(c LookComponent) {
	p.look = c
}
