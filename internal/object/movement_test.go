package object

import (
	"math/rand/v2"
	"testing"

	"github.com/tomz197/spaceduel/internal/config"
	"github.com/tomz197/spaceduel/internal/input"
)

func TestMoveYellow(t *testing.T) {
	borderX := config.Border().X

	tests := []struct {
		name  string
		held  input.Held
		x, y  int
		wantX int
		wantY int
	}{
		{"no keys", input.Held{}, 100, 300, 100, 300},
		{"left", input.Held{YellowLeft: true}, 100, 300, 95, 300},
		{"right", input.Held{YellowRight: true}, 100, 300, 105, 300},
		{"up", input.Held{YellowUp: true}, 100, 300, 100, 295},
		{"down", input.Held{YellowDown: true}, 100, 300, 100, 305},
		{"diagonal", input.Held{YellowLeft: true, YellowUp: true}, 100, 300, 95, 295},
		{"left and right cancel", input.Held{YellowLeft: true, YellowRight: true}, 100, 300, 100, 300},
		{"red keys ignored", input.Held{RedLeft: true, RedUp: true}, 100, 300, 100, 300},
		{"blocked by border", input.Held{YellowRight: true}, borderX - config.ShipWidth - 4, 300, borderX - config.ShipWidth - 4, 300},
		{"moves near border", input.Held{YellowRight: true}, borderX - config.ShipWidth - 6, 300, borderX - config.ShipWidth - 1, 300},
		{"blocked at left wall", input.Held{YellowLeft: true}, 5, 300, 5, 300},
		{"blocked at top", input.Held{YellowUp: true}, 100, 5, 100, 5},
		{"blocked at bottom", input.Held{YellowDown: true}, 100, config.ArenaHeight - config.ShipHeight - 5, 100, config.ArenaHeight - config.ShipHeight - 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveYellow(tt.held, NewShip(Yellow, tt.x, tt.y))
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("MoveYellow = (%d,%d), want (%d,%d)", got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMoveRed(t *testing.T) {
	borderX := config.Border().X

	tests := []struct {
		name  string
		held  input.Held
		x, y  int
		wantX int
		wantY int
	}{
		{"left", input.Held{RedLeft: true}, 700, 300, 695, 300},
		{"right", input.Held{RedRight: true}, 700, 300, 705, 300},
		{"up", input.Held{RedUp: true}, 700, 300, 700, 295},
		{"down", input.Held{RedDown: true}, 700, 300, 700, 305},
		{"yellow keys ignored", input.Held{YellowLeft: true}, 700, 300, 700, 300},
		// Red's left bound includes its own width.
		{"stops one width from border", input.Held{RedLeft: true}, borderX + config.ShipWidth + 5, 300, borderX + config.ShipWidth + 5, 300},
		{"moves left of that point", input.Held{RedLeft: true}, borderX + config.ShipWidth + 6, 300, borderX + config.ShipWidth + 1, 300},
		{"blocked at right wall", input.Held{RedRight: true}, config.ArenaWidth - 5, 300, config.ArenaWidth - 5, 300},
		{"moves near right wall", input.Held{RedRight: true}, config.ArenaWidth - 6, 300, config.ArenaWidth - 1, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveRed(tt.held, NewShip(Red, tt.x, tt.y))
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("MoveRed = (%d,%d), want (%d,%d)", got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestYellowStaysOnItsSide(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	ship := NewYellowShip()
	border := config.Border()

	for frame := 0; frame < 5000; frame++ {
		held := input.Held{
			YellowLeft:  rng.IntN(3) == 0,
			YellowRight: rng.IntN(2) == 0,
			YellowUp:    rng.IntN(3) == 0,
			YellowDown:  rng.IntN(3) == 0,
		}
		ship = MoveYellow(held, ship)

		if ship.X <= 0 || ship.Y <= 0 || ship.Bottom() >= config.ArenaHeight {
			t.Fatalf("frame %d: yellow left the arena at %+v", frame, ship.Rect)
		}
		if ship.Intersects(border) || ship.Right() > border.X {
			t.Fatalf("frame %d: yellow crossed the border at %+v", frame, ship.Rect)
		}
	}
}

func TestRedStaysOnItsSide(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	ship := NewRedShip()
	border := config.Border()

	for frame := 0; frame < 5000; frame++ {
		held := input.Held{
			RedLeft:  rng.IntN(2) == 0,
			RedRight: rng.IntN(3) == 0,
			RedUp:    rng.IntN(3) == 0,
			RedDown:  rng.IntN(3) == 0,
		}
		ship = MoveRed(held, ship)

		// The right bound only checks the ship's left edge, so the ship
		// itself may overhang the right wall; its position never does.
		if ship.X < border.Right() || ship.X >= config.ArenaWidth {
			t.Fatalf("frame %d: red x=%d outside its half", frame, ship.X)
		}
		if ship.Y <= 0 || ship.Bottom() >= config.ArenaHeight {
			t.Fatalf("frame %d: red y=%d outside the arena", frame, ship.Y)
		}
	}
}
