package object

import (
	"github.com/tomz197/spaceduel/internal/config"
	"github.com/tomz197/spaceduel/internal/input"
)

// MoveYellow applies yellow's held keys to its ship. Each direction is
// checked against its bound before the step is taken, so several
// directions may apply in one frame.
func MoveYellow(held input.Held, ship Ship) Ship {
	border := config.Border()
	vel := config.ShipVelocity

	if held.YellowLeft && ship.X-vel > 0 {
		ship.Rect = ship.Translate(-vel, 0)
	}
	if held.YellowRight && ship.X+vel+ship.W < border.X {
		ship.Rect = ship.Translate(vel, 0)
	}
	if held.YellowUp && ship.Y-vel > 0 {
		ship.Rect = ship.Translate(0, -vel)
	}
	if held.YellowDown && ship.Y+vel+ship.H < config.ArenaHeight {
		ship.Rect = ship.Translate(0, vel)
	}
	return ship
}

// MoveRed applies red's held keys to its ship.
// The left bound subtracts the ship's own width before comparing with the
// border, so red stops one ship width short of it.
func MoveRed(held input.Held, ship Ship) Ship {
	border := config.Border()
	vel := config.ShipVelocity

	if held.RedLeft && ship.X-vel-ship.W > border.X {
		ship.Rect = ship.Translate(-vel, 0)
	}
	if held.RedRight && ship.X+vel < config.ArenaWidth {
		ship.Rect = ship.Translate(vel, 0)
	}
	if held.RedUp && ship.Y-vel > 0 {
		ship.Rect = ship.Translate(0, -vel)
	}
	if held.RedDown && ship.Y+vel+ship.H < config.ArenaHeight {
		ship.Rect = ship.Translate(0, vel)
	}
	return ship
}
