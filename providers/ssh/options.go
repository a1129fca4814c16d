package ssh

import (
	"log/slog"
	"time"

	"golang.org/x/crypto/ssh"
)

// DefaultTimeout bounds TCP connect plus the SSH handshake.
const DefaultTimeout = 30 * time.Second

// Option defines a functional option for the Dialer.
type Option func(*Dialer)

// WithTimeout sets the connect and handshake timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Dialer) {
		c.timeout = d
	}
}

// WithKnownHosts enables strict host key checking against an OpenSSH known_hosts
// file. The file is re-read on every Dial.
func WithKnownHosts(path string) Option {
	return func(c *Dialer) {
		c.knownHostsPath = path
	}
}

// WithHostKeyCallback sets an explicit host key callback. It takes precedence over
// WithKnownHosts.
func WithHostKeyCallback(cb ssh.HostKeyCallback) Option {
	return func(c *Dialer) {
		c.hostKeyCallback = cb
	}
}

// WithKeyParsers replaces the ordered list of private key parsers.
func WithKeyParsers(parsers ...KeyParser) Option {
	return func(c *Dialer) {
		c.keyParsers = append([]KeyParser(nil), parsers...)
	}
}

// WithLogger sets the structured logger used by the dialer and its transports.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Dialer) {
		if logger != nil {
			c.logger = logger
		}
	}
}
