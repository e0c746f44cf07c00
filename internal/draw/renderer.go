package draw

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/spaceduel/internal/config"
	"github.com/tomz197/spaceduel/internal/physics"
)

const starCount = 70

// Frame is everything drawn for one gameplay frame.
type Frame struct {
	Yellow       physics.Rect
	Red          physics.Rect
	YellowShots  []physics.Rect
	RedShots     []physics.Rect
	YellowHealth int
	RedHealth    int
}

// RendererOptions configures a Renderer.
type RendererOptions struct {
	// TermSizeFunc reports the terminal size; defaults to os.Stdout's.
	TermSizeFunc TermSizeFunc
	// Styles renders text overlays; defaults to a lipgloss renderer on the
	// output writer. SSH sessions pass one with a fixed colour profile.
	Styles *lipgloss.Renderer
}

// Renderer draws the arena, ships, projectiles and text overlays to a
// terminal. It owns the canvas, the frame buffer and the text styles.
type Renderer struct {
	out      *ChunkWriter
	canvas   *Canvas
	sizeFunc TermSizeFunc

	healthStyle lipgloss.Style
	bannerStyle lipgloss.Style

	stars   []physics.Rect
	started bool
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer, opts RendererOptions) *Renderer {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	styles := opts.Styles
	if styles == nil {
		styles = lipgloss.NewRenderer(w)
	}

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		termWidth, termHeight = 80, 24
	}
	renderWidth, renderHeight, offsetCol, offsetRow := fitArena(termWidth, termHeight)
	canvas := NewScaledCanvas(renderWidth, renderHeight, config.ArenaWidth, config.ArenaHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Renderer{
		out:      NewChunkWriter(w, offsetCol, offsetRow),
		canvas:   canvas,
		sizeFunc: sizeFunc,
		healthStyle: styles.NewStyle().
			Foreground(lipgloss.Color("15")),
		bannerStyle: styles.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Border(lipgloss.RoundedBorder()).
			Padding(1, 4),
		stars: starfield(starCount),
	}
}

// DrawFrame paints the background, border, ships, health labels and live
// projectiles, then presents the frame.
func (r *Renderer) DrawFrame(f Frame) error {
	r.begin()
	r.updateScreen()

	c := r.canvas
	c.Clear()
	for _, s := range r.stars {
		c.FillRect(s, ColorStar)
	}
	c.FillRect(config.Border(), ColorBorder)
	c.DrawPolygon(shipShape(f.Yellow, true), ColorYellow, true)
	c.DrawPolygon(shipShape(f.Red, false), ColorRed, true)
	for _, s := range f.RedShots {
		c.FillRect(s, ColorRed)
	}
	for _, s := range f.YellowShots {
		c.FillRect(s, ColorYellow)
	}

	if err := c.Render(r.out); err != nil {
		return err
	}
	if err := c.RenderBorder(r.out); err != nil {
		return err
	}

	r.drawHealth(f.YellowHealth, f.RedHealth)

	return r.out.Flush()
}

// DrawWinner renders text centred over the last frame and presents it.
func (r *Renderer) DrawWinner(text string) error {
	r.begin()

	banner := r.bannerStyle.Render(text)
	lines := strings.Split(banner, "\n")
	width := lipgloss.Width(banner)

	_, centerRow := r.canvas.LogicalToTerminal(config.ArenaWidth/2, config.ArenaHeight/2)
	col := max(r.canvas.TerminalWidth()/2-width/2+1, 1)
	row := max(centerRow-len(lines)/2, 1)

	for i, line := range lines {
		r.out.WriteAt(col, row+i, line)
		r.canvas.Invalidate(col, row+i, width)
	}

	return r.out.Flush()
}

// Close restores the terminal: default colours, cleared screen, visible
// cursor.
func (r *Renderer) Close() error {
	ResetStyle(r.out)
	ClearScreen(r.out)
	ShowCursor(r.out)
	return r.out.Flush()
}

func (r *Renderer) begin() {
	if r.started {
		return
	}
	r.started = true
	HideCursor(r.out)
	ClearScreen(r.out)
	r.canvas.ForceRedraw()
}

// updateScreen follows terminal resizes. On a change the terminal is
// cleared to remove pixels outside the new render area.
func (r *Renderer) updateScreen() {
	termWidth, termHeight, err := r.sizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := fitArena(termWidth, termHeight)

	c := r.canvas
	if renderWidth != c.TerminalWidth() || renderHeight != c.TerminalHeight() ||
		offsetCol != c.OffsetCol() || offsetRow != c.OffsetRow() {
		ClearScreen(r.out)
		c.ForceRedraw()
	}

	c.Resize(renderWidth, renderHeight)
	c.SetOffset(offsetCol, offsetRow)
	r.out.SetOffset(offsetCol, offsetRow)
}

// drawHealth writes yellow's label top-left and red's right-aligned
// top-right.
func (r *Renderer) drawHealth(yellowHealth, redHealth int) {
	yellowLabel := r.healthStyle.Render(fmt.Sprintf("Health: %d", yellowHealth))
	redLabel := r.healthStyle.Render(fmt.Sprintf("Health: %d", redHealth))

	col, row := r.canvas.LogicalToTerminal(10, 10)
	r.writeLabel(col, row, yellowLabel)

	rightCol, row := r.canvas.LogicalToTerminal(config.ArenaWidth-10, 10)
	r.writeLabel(rightCol-lipgloss.Width(redLabel), row, redLabel)
}

func (r *Renderer) writeLabel(col, row int, label string) {
	col = max(col, 1)
	r.out.WriteAt(col, row, label)
	// The canvas redraws these cells next frame, erasing stale digits.
	r.canvas.Invalidate(col, row, lipgloss.Width(label))
}

// fitArena clamps the terminal to the max render size, shrinks one axis to
// keep the arena's aspect ratio (a row is two sub-pixels high) and returns
// the centering offset.
func fitArena(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)

	if want := renderHeight * 2 * config.ArenaWidth / config.ArenaHeight; renderWidth > want {
		renderWidth = want
	} else {
		renderHeight = renderWidth * config.ArenaHeight / (2 * config.ArenaWidth)
	}
	renderWidth = max(renderWidth, 1)
	renderHeight = max(renderHeight, 1)

	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

// shipShape returns an arrow polygon inside ship pointing right (yellow)
// or left (red).
func shipShape(ship physics.Rect, facingRight bool) []Point {
	x, y := float64(ship.X), float64(ship.Y)
	w, h := float64(ship.W), float64(ship.H)

	if facingRight {
		return []Point{
			{X: x + w, Y: y + h/2},
			{X: x, Y: y},
			{X: x + w*0.25, Y: y + h/2},
			{X: x, Y: y + h},
		}
	}
	return []Point{
		{X: x, Y: y + h/2},
		{X: x + w, Y: y},
		{X: x + w*0.75, Y: y + h/2},
		{X: x + w, Y: y + h},
	}
}

// starfield places n single-pixel stars at fixed pseudo-random positions.
func starfield(n int) []physics.Rect {
	rng := rand.New(rand.NewPCG(0x5eed, 0xd0e1))
	stars := make([]physics.Rect, n)
	for i := range stars {
		stars[i] = physics.NewRect(rng.IntN(config.ArenaWidth), rng.IntN(config.ArenaHeight), 1, 1)
	}
	return stars
}
