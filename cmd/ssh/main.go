package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/muesli/termenv"
	"github.com/tomz197/spaceduel/internal/audio"
	"github.com/tomz197/spaceduel/internal/config"
	"github.com/tomz197/spaceduel/internal/draw"
	"github.com/tomz197/spaceduel/internal/input"
	applog "github.com/tomz197/spaceduel/internal/logging"
	"github.com/tomz197/spaceduel/internal/loop"
)

const shutdownTimeout = 10 * time.Second

// duelServer runs one independent duel per SSH session. Both players share
// the session's keyboard; nothing is shared between sessions.
type duelServer struct {
	settings config.Settings
	logger   *log.Logger

	// ctx is cancelled on shutdown, which ends every running duel.
	ctx      context.Context
	sessions sync.WaitGroup
}

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	logger := applog.New(os.Stderr, settings.LogLevel)

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("ssh config",
		"host", settings.SSHHost, "port", settings.SSHPort,
		"host_key", settings.HostKeyPath, "working_dir", workingDir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ds := &duelServer{settings: settings, logger: logger, ctx: ctx}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(settings.SSHHost, settings.SSHPort)),
		wish.WithMiddleware(
			ds.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// TCP_NODELAY keeps key presses from being batched.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if settings.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", s.Addr)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	// End running duels first so their sessions close cleanly.
	cancel()
	if !ds.wait(shutdownTimeout) {
		logger.Warn("duels still running after timeout", "timeout", shutdownTimeout)
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// middleware plays a duel on the session's PTY.
func (ds *duelServer) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		ds.sessions.Add(1)
		defer ds.sessions.Done()

		logger := ds.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("new duel session",
			"term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		if err := ds.play(sess, sizeTracker, logger); err != nil {
			logger.Error("duel error", "err", err)
		}

		logger.Info("session ended")
		next(sess)
	}
}

// play runs one duel on sess until a player wins, quits, the client goes
// away or the server shuts down.
func (ds *duelServer) play(sess ssh.Session, sizes *sizeTracker, logger *log.Logger) error {
	ctx, cancel := context.WithCancel(ds.ctx)
	defer cancel()
	stop := context.AfterFunc(sess.Context(), cancel)
	defer stop()

	// The client's terminal is not probed; ANSI colours are what the canvas
	// emits anyway.
	styles := lipgloss.NewRenderer(sess)
	styles.SetColorProfile(termenv.ANSI)

	renderer := draw.NewRenderer(sess, draw.RendererOptions{
		TermSizeFunc: sizes.getSize,
		Styles:       styles,
	})

	app := &loop.App{
		Input:    input.StartStream(bufio.NewReader(sess), ds.settings.KeyHold),
		Renderer: renderer,
		Audio:    audio.NewBell(sess),
		Clock:    loop.NewFrameClock(config.TargetFPS),
		Logger:   logger,
	}
	app.OnClose(renderer)

	return loop.Run(ctx, app)
}

// wait blocks until every duel has returned or timeout passes. Reports
// whether all duels returned.
func (ds *duelServer) wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		ds.sessions.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
