package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/solitaire/internal/config"
	"github.com/vovakirdan/solitaire/internal/core"
	"github.com/vovakirdan/solitaire/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address     string        // host:port, ":23234" by default
	HostKeyPath string        // generated under ~/.solitaire when empty
	DBPath      string        // scores database shared by all players
	IdleTimeout time.Duration // idle sessions are dropped after this long
	Rules       config.Config // rules every session plays with
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.solitaire/scores.db",
		IdleTimeout: 30 * time.Minute,
		Rules:       config.Default(),
	}
}

// SSHServer wraps a Wish SSH server that serves a solitaire session per
// connection.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "solitaire-ssh",
	})

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".solitaire", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	// Sessions still play without a database; they just keep no scores.
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("scores disabled", "db", cfg.DBPath, "err", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		wish.Fatalln(sshSession, "solitaire needs a terminal: connect with ssh -t")
		return nil, nil
	}

	cfg := core.DefaultConfig()
	if pty.Window.Width > 0 && pty.Window.Height > 0 {
		cfg.ScreenW = pty.Window.Width
		cfg.ScreenH = pty.Window.Height
	}
	cfg.Seed = time.Now().UnixNano()
	if s.config.Rules.Layout != "" {
		cfg.LayoutID = s.config.Rules.Layout
	}

	logger := s.logger.With("user", sshSession.User())
	return NewSessionModel(s.store, s.config.Rules, cfg, logger), []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs connects and disconnects with the session length.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		start := time.Now()
		logger.Info("connected")
		next(sess)
		logger.Info("disconnected", "duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe serves sessions until ctx is cancelled, then shuts the
// server down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("listening", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if errors.Is(err, ssh.ErrServerClosed) {
			err = nil
		}
		errc <- err
	}()

	select {
	case err := <-errc:
		if s.store != nil {
			s.store.Close()
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "reason", context.Cause(ctx))
	return s.Shutdown()
}

// Shutdown stops accepting sessions and waits up to ten seconds for open ones.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
