package physics

import "testing"

func TestIntersects(t *testing.T) {
	ship := NewRect(100, 300, 55, 40)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"fully inside", NewRect(110, 310, 10, 5), true},
		{"overlaps left edge", NewRect(95, 310, 10, 5), true},
		{"overlaps right edge", NewRect(150, 310, 10, 5), true},
		{"overlaps bottom edge", NewRect(120, 338, 10, 5), true},
		{"touches right edge", NewRect(155, 310, 10, 5), false},
		{"touches left edge", NewRect(90, 310, 10, 5), false},
		{"touches top edge", NewRect(120, 295, 10, 5), false},
		{"touches bottom edge", NewRect(120, 340, 10, 5), false},
		{"far away", NewRect(700, 20, 10, 5), false},
		{"zero width", NewRect(120, 310, 0, 5), false},
		{"contains ship", NewRect(0, 0, 900, 500), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ship.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(ship); got != tt.want {
				t.Errorf("symmetric Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	r := NewRect(10, 20, 5, 5)
	got := r.Translate(7, -3)

	if got.X != 17 || got.Y != 17 {
		t.Errorf("Translate = (%d,%d), want (17,17)", got.X, got.Y)
	}
	if r.X != 10 || r.Y != 20 {
		t.Error("Translate modified the receiver")
	}
}
