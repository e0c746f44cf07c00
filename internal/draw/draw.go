// Package draw renders the arena to a terminal using half-block characters.
package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Point represents a 2D coordinate in logical (arena) space.
type Point struct {
	X, Y float64
}

// Color is a canvas palette entry. The zero value is an empty pixel.
type Color uint8

const (
	ColorNone Color = iota
	ColorStar
	ColorBorder
	ColorYellow
	ColorRed
	ColorWhite

	colorUnknown Color = 0xff // Forces a cell to be redrawn
)

// ansiFG maps palette entries to ANSI 16-colour foreground codes.
var ansiFG = [...]int{
	ColorNone:   39,
	ColorStar:   90,
	ColorBorder: 37,
	ColorYellow: 93,
	ColorRed:    91,
	ColorWhite:  97,
}

func (c Color) fg() int {
	if int(c) < len(ansiFG) {
		return ansiFG[c]
	}
	return 39
}

func (c Color) bg() int {
	if c == ColorNone {
		return 49
	}
	return c.fg() + 10
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockEmpty     = ' '
)

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// ResetStyle resets colours and text attributes.
func ResetStyle(w io.Writer) {
	fmt.Fprint(w, "\033[0m")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
