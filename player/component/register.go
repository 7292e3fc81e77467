package component

import (
	"github.com/oomph-ac/nightfall/player"
	"github.com/oomph-ac/nightfall/player/movement"
)

// Register registers the components for the given player.
func Register(p *player.Player) {
	p.SetMovement(movement.NewSimulator(p))
	p.SetStamina(NewStaminaComponent(p))
	p.SetSanityComponent(NewSanityComponent(p))
	p.SetLook(NewLookComponent(p))
}
