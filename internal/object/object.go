// Package object holds the duel's entities (ships and projectiles) and the
// per-frame rules that move them. Everything here works on value types so
// it can be tested without a terminal.
package object

import "github.com/tomz197/spaceduel/internal/physics"

// Player identifies one of the two sides.
type Player int

const (
	Yellow Player = iota // Left half, fires right
	Red                  // Right half, fires left
)

func (p Player) String() string {
	switch p {
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// Rects returns the rectangles of the given projectiles, in order.
func Rects(shots []Projectile) []physics.Rect {
	rects := make([]physics.Rect, len(shots))
	for i, s := range shots {
		rects[i] = s.Rect
	}
	return rects
}
