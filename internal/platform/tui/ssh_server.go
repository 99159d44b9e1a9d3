package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/brickcanvas/internal/config"
	"github.com/vovakirdan/brickcanvas/internal/core"
)

// shutdownGrace bounds how long Serve waits for open sessions on exit.
const shutdownGrace = 10 * time.Second

// ServeConfig configures the SSH host.
type ServeConfig struct {
	Address     string        // host:port
	HostKeyPath string        // Empty uses ~/.brickcanvas/host_key, created on first start
	IdleTimeout time.Duration // Disconnect sessions without input for this long
	MaxSessions int           // Concurrent games, 0 is unlimited
	TickRate    int
	Game        config.BreakoutConfig // Shared by every session
}

// DefaultServeConfig returns the host defaults.
func DefaultServeConfig() ServeConfig {
	return ServeConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.DefaultConfig().TickRate,
		Game:        config.DefaultConfig(),
	}
}

// Validate reports every invalid field.
func (c ServeConfig) Validate() error {
	var errs []error
	if c.Address == "" {
		errs = append(errs, errors.New("address is empty"))
	}
	if c.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("idle timeout %v is negative", c.IdleTimeout))
	}
	if c.MaxSessions < 0 {
		errs = append(errs, fmt.Errorf("max sessions %d is negative", c.MaxSessions))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate %d must be positive", c.TickRate))
	}
	if err := c.Game.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SSHHost runs one independent game per SSH session.
type SSHHost struct {
	cfg    ServeConfig
	server *ssh.Server
	logger *log.Logger
	active atomic.Int32
}

// NewSSHHost prepares the host key and the wish server. A nil logger
// writes to stderr.
func NewSSHHost(cfg ServeConfig, logger *log.Logger) (*SSHHost, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "brickcanvas-ssh"})
	}

	keyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	h := &SSHHost{cfg: cfg, logger: logger}
	// Middleware runs last to first: the limit check wraps the game.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(h.newGame),
			h.trackSession,
			h.limitSessions,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("ssh host: %w", err)
	}
	h.server = server
	return h, nil
}

// resolveHostKey returns the key path and makes sure its directory exists.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("host key: %w", err)
		}
		path = filepath.Join(home, ".brickcanvas", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("host key: %w", err)
	}
	return path, nil
}

// newGame builds the model for a session, sized to its PTY.
func (h *SSHHost) newGame(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		wish.Fatalln(sess, "brickcanvas needs a terminal, connect with: ssh -t")
		return nil, nil
	}

	model, err := NewModel(Options{
		Config: h.cfg.Game,
		Runtime: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: h.cfg.TickRate,
		},
		Logger:   h.logger.With("user", sess.User()),
		Renderer: bubbletea.MakeRenderer(sess),
	})
	if err != nil {
		h.logger.Error("game not started", "user", sess.User(), "error", err)
		wish.Fatalln(sess, "could not start the game")
		return nil, nil
	}
	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}
}

func (h *SSHHost) limitSessions(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		if h.cfg.MaxSessions > 0 && int(h.active.Load()) >= h.cfg.MaxSessions {
			h.logger.Warn("session refused", "user", sess.User(), "active", h.active.Load())
			wish.Fatalln(sess, "all tables are busy, try again later")
			return
		}
		next(sess)
	}
}

func (h *SSHHost) trackSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		started := time.Now()
		n := h.active.Add(1)
		h.logger.Info("player joined", "user", sess.User(), "remote", sess.RemoteAddr().String(), "active", n)

		next(sess)

		n = h.active.Add(-1)
		h.logger.Info("player left", "user", sess.User(), "played", time.Since(started).Round(time.Second), "active", n)
	}
}

// Sessions returns the number of games in progress.
func (h *SSHHost) Sessions() int {
	return int(h.active.Load())
}

// Serve accepts sessions until ctx is done, then waits up to shutdownGrace
// for open games to end.
func (h *SSHHost) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("ssh host listening", "address", h.cfg.Address)
		errCh <- h.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh host: %w", err)
	case <-ctx.Done():
	}

	h.logger.Info("ssh host stopping", "active", h.Sessions())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := h.server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("ssh host: %w", err)
	}
	return nil
}

// Addr returns the configured listen address.
func (h *SSHHost) Addr() string {
	return h.cfg.Address
}
