package object

import (
	"github.com/tomz197/spaceduel/internal/config"
	"github.com/tomz197/spaceduel/internal/physics"
)

// Ship is a player's spacecraft. Ships are only ever repositioned.
type Ship struct {
	Owner Player
	physics.Rect
}

// NewShip creates a ship of the standard size at (x, y).
func NewShip(owner Player, x, y int) Ship {
	return Ship{
		Owner: owner,
		Rect:  physics.NewRect(x, y, config.ShipWidth, config.ShipHeight),
	}
}

// NewYellowShip creates yellow's ship at its starting position.
func NewYellowShip() Ship {
	return NewShip(Yellow, config.YellowStartX, config.YellowStartY)
}

// NewRedShip creates red's ship at its starting position.
func NewRedShip() Ship {
	return NewShip(Red, config.RedStartX, config.RedStartY)
}

// Muzzle returns where this ship's projectiles spawn: the facing edge,
// vertically centred on the ship.
func (s Ship) Muzzle() (x, y int) {
	y = s.Y + s.H/2 - 2
	if s.Owner == Yellow {
		return s.X + s.W, y
	}
	return s.X, y
}

// Fire creates a projectile at the ship's muzzle.
func (s Ship) Fire() Projectile {
	x, y := s.Muzzle()
	return NewProjectile(s.Owner, x, y)
}
