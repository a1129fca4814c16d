package sshmcp

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ruffel/sshmcp/fileutil"
)

// Manager owns the single active session.
//
// All public methods except Status are serialized by an internal mutex, so a Manager
// is safe for concurrent use. Only Connect and Disconnect create or destroy session handles;
// the remaining operations borrow them.
type Manager struct {
	dialer   Dialer
	defaults DefaultsProvider

	logger         *slog.Logger
	commandTimeout time.Duration
	diagnostics    []string
	progress       fileutil.ProgressFunc

	mu      sync.Mutex
	session *session

	// status is published under mu and read without it.
	status atomic.Pointer[Status]
}

type session struct {
	transport Transport
	files     FileChannel
	config    ConnectionConfig
}

// NewManager creates a disconnected Manager.
func NewManager(dialer Dialer, defaults DefaultsProvider, opts ...Option) *Manager {
	m := &Manager{
		dialer:      dialer,
		defaults:    defaults,
		logger:      discardLogger(),
		diagnostics: append([]string(nil), DefaultDiagnostics...),
	}

	for _, o := range opts {
		o(m)
	}

	return m
}

// Connect establishes a new session, replacing any existing one.
//
// Explicit non-empty fields take precedence over the DefaultsProvider. On failure the
// Manager is left disconnected with no handles retained, and the triggering error is
// returned as-is.
func (m *Manager) Connect(ctx context.Context, explicit ConnectionConfig) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != nil {
		m.logger.Info("closing existing SSH session before reconnecting")
		m.teardown()
	}

	var defaults ConnectionConfig

	if m.defaults != nil {
		d, err := m.defaults.Defaults()
		if err != nil {
			m.logger.Error("loading default connection settings failed", "error", err)

			return "", err
		}

		defaults = d
	}

	cfg, err := Resolve(explicit, defaults)
	if err != nil {
		m.logger.Error("SSH connection failed", "error", err)

		return "", err
	}

	m.logger.Info("connecting", "user", cfg.Username, "host", cfg.Host, "port", cfg.Port)

	transport, err := m.dialer.Dial(ctx, cfg)
	if err != nil {
		m.logger.Error("SSH connection failed", "host", cfg.Host, "port", cfg.Port, "error", err)

		return "", err
	}

	files, err := transport.OpenFileChannel()
	if err != nil {
		_ = transport.Close()

		m.logger.Error("opening file-transfer channel failed", "host", cfg.Host, "error", err)

		return "", err
	}

	m.session = &session{
		transport: transport,
		files:     files,
		config:    cfg,
	}

	m.status.Store(&Status{
		Connected: true,
		Host:      cfg.Host,
		Port:      cfg.Port,
		Username:  cfg.Username,
	})

	msg := "Successfully connected to " + cfg.String()
	m.logger.Info(msg)

	return msg, nil
}

// Disconnect closes the session if one is open. It is idempotent and suppresses
// close errors from already-broken handles.
func (m *Manager) Disconnect(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.teardown()

	const msg = "Successfully disconnected from SSH"
	m.logger.Info(msg)

	return msg, nil
}

// Status reports whether a session is live and, if so, its non-secret parameters.
// It never waits for an in-flight operation.
func (m *Manager) Status() Status {
	if st := m.status.Load(); st != nil {
		return *st
	}

	return Status{}
}

// Close is Disconnect without the descriptor, for use with defer.
func (m *Manager) Close() error {
	_, err := m.Disconnect(context.Background())

	return err
}

// teardown must be called with mu held.
func (m *Manager) teardown() {
	s := m.session
	if s == nil {
		return
	}

	m.session = nil
	m.status.Store(nil)

	if s.files != nil {
		if err := s.files.Close(); err != nil {
			m.logger.Debug("closing file-transfer channel", "error", err)
		}
	}

	if s.transport != nil {
		if err := s.transport.Close(); err != nil {
			m.logger.Debug("closing transport", "error", err)
		}
	}
}

// current returns the live session or a NotConnectedError. Must be called with mu held.
func (m *Manager) current(op string) (*session, error) {
	if m.session == nil {
		return nil, &NotConnectedError{Op: op}
	}

	return m.session, nil
}

// commandContext applies the configured per-command timeout, if any.
func (m *Manager) commandContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.commandTimeout > 0 {
		return context.WithTimeout(ctx, m.commandTimeout)
	}

	return context.WithCancel(ctx)
}
