package sshmcp

import (
	"io"
	"log/slog"
	"time"

	"github.com/ruffel/sshmcp/fileutil"
)

// Option defines a functional option for the Manager.
type Option func(*Manager)

// WithLogger sets the structured logger. Defaults to a logger that discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithCommandTimeout bounds every remote command (including diagnostics).
// Zero, the default, means commands may block indefinitely.
func WithCommandTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d < 0 {
			d = 0
		}

		m.commandTimeout = d
	}
}

// WithDiagnostics replaces the System Inspector command battery.
func WithDiagnostics(commands ...string) Option {
	return func(m *Manager) {
		m.diagnostics = append([]string(nil), commands...)
	}
}

// WithProgress calls fn with byte counts while files are uploaded or downloaded.
func WithProgress(fn fileutil.ProgressFunc) Option {
	return func(m *Manager) {
		m.progress = fn
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
