package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/spaceduel/internal/audio"
	"github.com/tomz197/spaceduel/internal/audio/speaker"
	"github.com/tomz197/spaceduel/internal/config"
	"github.com/tomz197/spaceduel/internal/draw"
	"github.com/tomz197/spaceduel/internal/input"
	"github.com/tomz197/spaceduel/internal/logging"
	"github.com/tomz197/spaceduel/internal/loop"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	// stdout is the game screen, so logs only go to a file when asked for.
	logger, logCloser, err := logging.Open(settings.LogFile, settings.LogLevel)
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		_ = logCloser.Close()
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &loop.App{
		Input:  input.StartStream(bufio.NewReader(os.Stdin), settings.KeyHold),
		Clock:  loop.NewFrameClock(config.TargetFPS),
		Logger: logger,
		Audio:  audio.Mute{},
	}
	app.OnClose(logCloser)

	audioOn := false
	if settings.Audio {
		spk, err := speaker.New(settings.AudioVolume)
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			app.Audio = spk
			app.OnClose(spk)
			audioOn = true
		}
	}

	renderer := draw.NewRenderer(os.Stdout, draw.RendererOptions{
		Styles: lipgloss.NewRenderer(os.Stdout),
	})
	app.Renderer = renderer
	app.OnClose(renderer)

	logger.Info("duel started", "audio", audioOn)
	return loop.Run(ctx, app)
}
