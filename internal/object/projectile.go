package object

import (
	"github.com/tomz197/spaceduel/internal/config"
	"github.com/tomz197/spaceduel/internal/physics"
)

// Projectile is a shot travelling horizontally away from its owner.
type Projectile struct {
	Owner Player
	physics.Rect
}

// Hits counts confirmed hits taken by each player during one frame.
type Hits struct {
	Yellow int // Hits on yellow's ship
	Red    int // Hits on red's ship
}

// Total returns the number of hits on both ships.
func (h Hits) Total() int {
	return h.Yellow + h.Red
}

// NewProjectile creates a projectile of the standard size at (x, y).
func NewProjectile(owner Player, x, y int) Projectile {
	return Projectile{
		Owner: owner,
		Rect:  physics.NewRect(x, y, config.ProjectileWidth, config.ProjectileHeight),
	}
}

// Velocity returns the projectile's per-frame horizontal step.
func (p Projectile) Velocity() int {
	if p.Owner == Yellow {
		return config.ProjectileVelocity
	}
	return -config.ProjectileVelocity
}

// OutOfBounds reports whether the projectile has left the arena on the
// side it travels towards.
func (p Projectile) OutOfBounds() bool {
	if p.Owner == Yellow {
		return p.X > config.ArenaWidth
	}
	return p.X < 0
}

// AdvanceShots moves every shot one step and collides it with target.
// A shot that hits is removed and counted; otherwise a shot that left the
// arena is removed without effect. The collision check comes first.
// The returned slice reuses the backing array of shots.
func AdvanceShots(shots []Projectile, target Ship) ([]Projectile, int) {
	hits := 0
	kept := shots[:0]
	for _, p := range shots {
		p.Rect = p.Translate(p.Velocity(), 0)

		switch {
		case target.Intersects(p.Rect):
			hits++
		case p.OutOfBounds():
		default:
			kept = append(kept, p)
		}
	}
	return kept, hits
}

// AdvanceProjectiles advances both players' shots against the opposing
// ship and returns the surviving shots and the hits taken.
func AdvanceProjectiles(yellowShots, redShots []Projectile, yellow, red Ship) ([]Projectile, []Projectile, Hits) {
	var hits Hits
	yellowShots, hits.Red = AdvanceShots(yellowShots, red)
	redShots, hits.Yellow = AdvanceShots(redShots, yellow)
	return yellowShots, redShots, hits
}
