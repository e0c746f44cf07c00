package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/tomz197/spaceduel/internal/physics"
)

// maxChunkSize is the maximum bytes to write at once for smooth SSH/network
// transmission (roughly one MTU).
const maxChunkSize = 1400

// cell is one terminal character: two stacked sub-pixels.
type cell struct {
	top, bottom Color
}

// glyph returns the character and SGR sequence that draw the cell.
func (c cell) glyph() (rune, string) {
	switch {
	case c.top == ColorNone && c.bottom == ColorNone:
		return BlockEmpty, "\033[0m"
	case c.top == c.bottom:
		return BlockFull, fmt.Sprintf("\033[0;%dm", c.top.fg())
	case c.bottom == ColorNone:
		return BlockUpperHalf, fmt.Sprintf("\033[0;%dm", c.top.fg())
	case c.top == ColorNone:
		return BlockLowerHalf, fmt.Sprintf("\033[0;%dm", c.bottom.fg())
	default:
		return BlockUpperHalf, fmt.Sprintf("\033[0;%d;%dm", c.top.fg(), c.bottom.bg())
	}
}

// Canvas is a colour drawing buffer with 2x vertical resolution using
// half-block characters. Drawing uses logical (arena) coordinates that are
// scaled to the terminal area. Render only emits cells that changed since
// the previous Render.
type Canvas struct {
	termWidth      int     // Terminal columns used by the canvas
	termHeight     int     // Terminal rows used by the canvas
	subPixelHeight int     // termHeight * 2
	pixels         []Color // [y * termWidth + x]
	drawn          []cell  // What the terminal currently shows, per cell

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	// 0-based terminal offsets for centering the render area.
	offsetCol int
	offsetRow int

	renderBuf       strings.Builder
	scaledBuf       []Point
	intersectionBuf []float64
}

// NewScaledCanvas creates a canvas that maps a logicalWidth×logicalHeight
// coordinate space onto termWidth×termHeight terminal cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size. A size change forces a full redraw.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]Color, c.subPixelHeight*termWidth)
		c.drawn = make([]cell, termHeight*termWidth)
		c.ForceRedraw()
	}

	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.ForceRedraw()
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels. The terminal is untouched until Render.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render emit every cell.
func (c *Canvas) ForceRedraw() {
	for i := range c.drawn {
		c.drawn[i] = cell{top: colorUnknown, bottom: colorUnknown}
	}
}

// Invalidate marks n cells starting at the 1-based canvas position
// (col, row) as overwritten, e.g. by a text overlay.
func (c *Canvas) Invalidate(col, row, n int) {
	y := row - 1
	if y < 0 || y >= c.termHeight {
		return
	}
	for x := col - 1; x < col-1+n; x++ {
		if x >= 0 && x < c.termWidth {
			c.drawn[y*c.termWidth+x] = cell{top: colorUnknown, bottom: colorUnknown}
		}
	}
}

// setPixel sets a pixel at actual sub-pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// Pixel returns the colour at sub-pixel (x, y).
func (c *Canvas) Pixel(x, y int) Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return ColorNone
	}
	return c.pixels[y*c.termWidth+x]
}

// FillRect fills a logical rectangle. Any non-empty rectangle covers at
// least one pixel, so small shots stay visible on small terminals.
func (c *Canvas) FillRect(r physics.Rect, col Color) {
	if r.Empty() {
		return
	}
	x0 := int(math.Floor(float64(r.X) * c.scaleX))
	x1 := int(math.Ceil(float64(r.Right()) * c.scaleX))
	y0 := int(math.Floor(float64(r.Y) * c.scaleY))
	y1 := int(math.Ceil(float64(r.Bottom()) * c.scaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.setPixel(x, y, col)
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point, col Color) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon outline, filling the interior if filled is set.
func (c *Canvas) DrawPolygon(points []Point, col Color, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points, col)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], col)
	}
}

// fillPolygon fills a polygon with a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point, col Color) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			for x := int(math.Ceil(intersections[i])); x <= int(math.Floor(intersections[i+1])); x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// Render writes every cell that differs from what the terminal shows.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()

	style := ""
	nextRow, nextCol := -1, -1
	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			cur := cell{top: c.pixels[topOffset+col], bottom: c.pixels[bottomOffset+col]}
			i := row*c.termWidth + col
			if c.drawn[i] == cur {
				continue
			}
			c.drawn[i] = cur

			if row != nextRow || col != nextCol {
				fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, col+1+c.offsetCol)
			}
			ch, s := cur.glyph()
			if s != style {
				c.renderBuf.WriteString(s)
				style = s
			}
			c.renderBuf.WriteRune(ch)
			nextRow, nextCol = row, col+1
		}
	}
	if style != "" {
		c.renderBuf.WriteString("\033[0m")
	}

	return writeChunked(w, c.renderBuf.String())
}

// RenderBorder draws a box around the canvas area when the terminal is
// larger than the render area on either axis.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1
	if !hasH && !hasV {
		return nil
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, line)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	return writeChunked(w, buf.String())
}

// LogicalToTerminal converts logical coordinates to a 1-based canvas
// position (col, row).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// TerminalWidth returns the canvas width in columns.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas height in rows.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

func writeChunked(w io.Writer, data string) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}
