package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-hub/internal/audio"
	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// CatalogPath overrides the embedded hub catalog.
	CatalogPath string

	// GameConfigPath is passed to games as their custom config file.
	GameConfigPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.arcade/scores.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves the arcade over SSH. The command of a session names the
// game to play; sessions without a known game get the hub.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	local   *storage.Local
	records []registry.Record
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade-ssh",
	})

	records, err := registry.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{
		config:  cfg,
		records: records,
		logger:  logger,
	}

	// Scores are best-effort: without a database they live in memory.
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		srv.local = storage.NewLocal(nil, logger)
	} else {
		srv.store = store
		srv.local = storage.NewLocal(store, logger)
	}

	keyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		srv.closeStore()
		return nil, err
	}

	// Middlewares run last to first: log, require a terminal, route to the
	// hub or the game.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.hubMiddleware,
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
		// Key presses are tiny writes; do not let Nagle batch them.
		ssh.WrapConn(func(_ ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates the game host of one SSH session. The first command
// argument is the game id, the optional second one the difficulty.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	id, difficulty, _ := parseCommand(sess.Command())
	game, err := registry.Create(id)
	if err != nil {
		s.logger.Error("cannot create game", "game", id, "error", err)
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:    pty.Window.Width,
		ScreenH:    pty.Window.Height,
		FrameRate:  60,
		Seed:       time.Now().UnixNano(),
		Difficulty: difficulty,
		ConfigPath: s.config.GameConfigPath,
	}

	logger := s.logger.With("session", uuid.NewString(), "user", sess.User(), "game", game.ID())
	model := NewModel(game, Options{
		Config:   cfg,
		Local:    s.local,
		Store:    s.store,
		Audio:    &audio.Silent{},
		Logger:   logger,
		Renderer: bubbletea.MakeRenderer(sess),
		Context:  sess.Context(),
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// hubMiddleware prints the hub to sessions that do not name a known game.
func (s *SSHServer) hubMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		id, _, ok := parseCommand(sess.Command())
		if ok {
			next(sess)
			return
		}

		width := 80
		if pty, _, ok := sess.Pty(); ok && pty.Window.Width > 0 {
			width = pty.Window.Width
		}
		if id != "" {
			wish.Println(sess, fmt.Sprintf("unknown game %q", id))
		}
		wish.Print(sess, RenderHub(s.records, width, bubbletea.MakeRenderer(sess)))
		wish.Println(sess, "Play with: ssh -t -p <port> <host> <game-id> [easy|medium|hard]")
	}
}

// parseCommand reads "<game> [difficulty]" from an SSH command. ok is false
// when no registered game is named. An unknown difficulty falls back to
// medium; a missing one leaves the difficulty zero so the stored level is
// used.
func parseCommand(args []string) (id string, difficulty core.Difficulty, ok bool) {
	if len(args) == 0 {
		return "", core.Difficulty{}, false
	}
	id = strings.ToLower(strings.TrimSpace(args[0]))
	if len(args) > 1 {
		difficulty = config.Lookup(args[1])
	}
	return id, difficulty, registry.Exists(id)
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"command", sess.Command(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// resolveHostKey returns the host key location, ~/.arcade/host_key by
// default, and makes sure its directory exists. wish generates the key on
// first start.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		path = "~/.arcade/host_key"
	}
	path, err := storage.ExpandHome(path)
	if err != nil {
		return "", fmt.Errorf("tui: host key: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: host key directory: %w", err)
	}
	return path, nil
}

// ListenAndServe accepts sessions until ctx is done or the listener fails,
// then shuts the server down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("listening", "address", s.config.Address)

	served := make(chan error, 1)
	go func() {
		served <- s.server.ListenAndServe()
	}()

	select {
	case err := <-served:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("tui: ssh server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "cause", context.Cause(ctx))
	return s.Shutdown()
}

// Shutdown waits up to 10 seconds for open sessions, then closes the store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	defer s.closeStore()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("cannot close scores database", "error", err)
	}
	s.store = nil
}
