// Package loop runs the duel: a fixed-rate cycle of input, update and draw
// driven against an explicit application context.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/spaceduel/internal/audio"
	"github.com/tomz197/spaceduel/internal/config"
	"github.com/tomz197/spaceduel/internal/draw"
	"github.com/tomz197/spaceduel/internal/input"
	"github.com/tomz197/spaceduel/internal/logging"
	"github.com/tomz197/spaceduel/internal/object"
)

// InputSource supplies discrete events and the held-key snapshot.
type InputSource interface {
	// Drain returns pending events in arrival order.
	Drain() []input.Event
	// Held returns the movement keys held as of the last Drain.
	Held() input.Held
}

// Renderer draws and presents frames.
type Renderer interface {
	DrawFrame(f draw.Frame) error
	DrawWinner(text string) error
}

// AudioCue plays sounds without blocking.
type AudioCue interface {
	PlayShoot()
	PlayHit()
}

// Clock paces the loop.
type Clock interface {
	// Tick blocks until the next frame boundary.
	Tick()
	// Sleep blocks for d.
	Sleep(d time.Duration)
}

// App is the application context: the collaborators a duel runs against.
// It is built once per session and passed to Run.
type App struct {
	Input    InputSource
	Renderer Renderer
	Audio    AudioCue
	Clock    Clock
	Logger   *log.Logger

	closers []io.Closer
}

// OnClose registers c to be closed when the duel ends. Closers run in
// reverse registration order.
func (a *App) OnClose(c io.Closer) {
	if c != nil {
		a.closers = append(a.closers, c)
	}
}

// Close releases every registered resource.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) logger() *log.Logger {
	if a.Logger == nil {
		return logging.Discard()
	}
	return a.Logger
}

func (a *App) audio() AudioCue {
	if a.Audio == nil {
		return audio.Mute{}
	}
	return a.Audio
}

// Run plays one duel from the starting position until a player wins or
// quit is requested. Cancelling ctx counts as quit.
func Run(ctx context.Context, app *App) error {
	return RunGame(ctx, app, NewGame())
}

// RunGame plays the duel in g. App resources are closed on return.
func RunGame(ctx context.Context, app *App, g *Game) (err error) {
	defer func() {
		if cerr := app.Close(); err == nil {
			err = cerr
		}
	}()

	logger := app.logger()
	cue := app.audio()

	for g.Running {
		app.Clock.Tick()

		events := app.Input.Drain()
		if ctx.Err() != nil {
			events = append(events, input.Event{Type: input.EventQuit})
		}
		for _, ev := range events {
			handleEvent(g, ev, cue, logger)
		}

		if winner := g.Winner(); winner != "" {
			logger.Info("match finished", "winner", winner,
				"yellow_health", g.YellowHealth, "red_health", g.RedHealth)
			if err := app.Renderer.DrawWinner(winner); err != nil {
				return fmt.Errorf("draw winner: %w", err)
			}
			app.Clock.Sleep(config.WinnerHold)
			break
		}

		hits := g.Update(app.Input.Held())
		for range hits.Total() {
			cue.PlayHit()
		}
		if hits.Total() > 0 {
			logger.Debug("ship hit", "yellow_health", g.YellowHealth, "red_health", g.RedHealth)
		}

		if err := app.Renderer.DrawFrame(g.Frame()); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}
	}

	return nil
}

// handleEvent applies one discrete input event to the game.
func handleEvent(g *Game, ev input.Event, cue AudioCue, logger *log.Logger) {
	switch ev.Type {
	case input.EventQuit:
		if g.Running {
			logger.Info("quit requested")
		}
		g.Running = false
	case input.EventYellowFire:
		fire(g, object.Yellow, cue, logger)
	case input.EventRedFire:
		fire(g, object.Red, cue, logger)
	}
}

func fire(g *Game, p object.Player, cue AudioCue, logger *log.Logger) {
	if !g.Fire(p) {
		return
	}
	cue.PlayShoot()
	logger.Debug("projectile fired", "player", p,
		"yellow_live", len(g.YellowShots), "red_live", len(g.RedShots))
}
