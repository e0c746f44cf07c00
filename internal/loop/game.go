package loop

import (
	"github.com/tomz197/spaceduel/internal/config"
	"github.com/tomz197/spaceduel/internal/draw"
	"github.com/tomz197/spaceduel/internal/input"
	"github.com/tomz197/spaceduel/internal/object"
)

// Banner texts shown when a match ends.
const (
	YellowWins = "Yellow Wins!"
	RedWins    = "Red Wins!"
)

// Game holds all mutable duel state. It is owned by a single loop.
type Game struct {
	Yellow       object.Ship
	Red          object.Ship
	YellowShots  []object.Projectile
	RedShots     []object.Projectile
	YellowHealth int
	RedHealth    int
	Running      bool
}

// NewGame creates a duel in its starting position.
func NewGame() *Game {
	return &Game{
		Yellow:       object.NewYellowShip(),
		Red:          object.NewRedShip(),
		YellowHealth: config.StartingHealth,
		RedHealth:    config.StartingHealth,
		Running:      true,
	}
}

// Fire spawns a projectile for p unless p already has the maximum number of
// live projectiles. Reports whether a projectile was spawned.
func (g *Game) Fire(p object.Player) bool {
	switch p {
	case object.Yellow:
		if len(g.YellowShots) >= config.MaxProjectiles {
			return false
		}
		g.YellowShots = append(g.YellowShots, g.Yellow.Fire())
	case object.Red:
		if len(g.RedShots) >= config.MaxProjectiles {
			return false
		}
		g.RedShots = append(g.RedShots, g.Red.Fire())
	default:
		return false
	}
	return true
}

// Winner returns the banner text for a finished match, or "" while both
// players have health left. Red is checked first, so if both reach zero
// together yellow wins.
func (g *Game) Winner() string {
	if g.RedHealth <= 0 {
		return YellowWins
	}
	if g.YellowHealth <= 0 {
		return RedWins
	}
	return ""
}

// Update runs one frame of gameplay: both ships move, then every projectile
// advances and collides. Hits are applied to health before returning.
func (g *Game) Update(held input.Held) object.Hits {
	g.Yellow = object.MoveYellow(held, g.Yellow)
	g.Red = object.MoveRed(held, g.Red)

	var hits object.Hits
	g.YellowShots, g.RedShots, hits = object.AdvanceProjectiles(g.YellowShots, g.RedShots, g.Yellow, g.Red)

	g.RedHealth -= hits.Red
	g.YellowHealth -= hits.Yellow
	return hits
}

// Frame returns the drawable snapshot of the game.
func (g *Game) Frame() draw.Frame {
	return draw.Frame{
		Yellow:       g.Yellow.Rect,
		Red:          g.Red.Rect,
		YellowShots:  object.Rects(g.YellowShots),
		RedShots:     object.Rects(g.RedShots),
		YellowHealth: g.YellowHealth,
		RedHealth:    g.RedHealth,
	}
}
