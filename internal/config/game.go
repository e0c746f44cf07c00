package config

import (
	"time"

	"github.com/tomz197/spaceduel/internal/physics"
)

// Arena
const (
	ArenaWidth  = 900
	ArenaHeight = 500
	BorderWidth = 10
)

// Ships
const (
	ShipWidth    = 55
	ShipHeight   = 40
	ShipVelocity = 5 // Pixels per frame per held direction

	YellowStartX = 100
	YellowStartY = 300
	RedStartX    = 700
	RedStartY    = 300
)

// Projectiles
const (
	ProjectileWidth    = 10
	ProjectileHeight   = 5
	ProjectileVelocity = 7
	MaxProjectiles     = 3 // Live projectiles per player
)

// Health
const (
	StartingHealth = 10
)

// Timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	WinnerHold      = 5 * time.Second
)

// Terminal rendering
const (
	MaxTermWidth  = 144 // Columns
	MaxTermHeight = 40  // Rows (80 sub-pixel rows)

	// KeyHoldDuration is how long a movement key counts as held after its
	// last byte. Terminals only report auto-repeat, never key release.
	KeyHoldDuration = 80 * time.Millisecond
)

// Border returns the dividing wall between the two halves.
func Border() physics.Rect {
	return physics.NewRect(ArenaWidth/2-BorderWidth/2, 0, BorderWidth, ArenaHeight)
}
