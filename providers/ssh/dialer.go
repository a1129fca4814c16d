package ssh

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/ruffel/sshmcp"
	"golang.org/x/crypto/ssh"
)

var _ sshmcp.Dialer = (*Dialer)(nil)

// Dialer opens authenticated SSH connections.
type Dialer struct {
	timeout         time.Duration
	knownHostsPath  string
	hostKeyCallback ssh.HostKeyCallback
	keyParsers      []KeyParser
	logger          *slog.Logger
}

// NewDialer creates a Dialer with a 30 second connect timeout, the default key
// parsers and no host key verification.
func NewDialer(opts ...Option) *Dialer {
	d := &Dialer{
		timeout:    DefaultTimeout,
		keyParsers: DefaultKeyParsers(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, o := range opts {
		o(d)
	}

	return d
}

// Dial connects to cfg.Address() and authenticates.
//
// Unparseable key material and credentials rejected by the server are reported as
// *sshmcp.AuthError; every other failure is a *sshmcp.ConnectionError.
func (d *Dialer) Dial(ctx context.Context, cfg sshmcp.ConnectionConfig) (sshmcp.Transport, error) {
	clientConfig, err := d.clientConfig(cfg)
	if err != nil {
		return nil, err
	}

	addr := cfg.Address()

	dialer := net.Dialer{Timeout: d.timeout}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &sshmcp.ConnectionError{Addr: addr, Err: err}
	}

	if deadline, ok := d.handshakeDeadline(ctx); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, chans, reqs, err := ssh.NewClientConn(conn, addr, clientConfig)
	if err != nil {
		_ = conn.Close()

		return nil, classifyHandshakeError(addr, err)
	}

	_ = conn.SetDeadline(time.Time{})

	d.logger.Debug("ssh handshake complete", "addr", addr, "server_version", string(c.ServerVersion()))

	return NewTransport(ssh.NewClient(c, chans, reqs), d.logger), nil
}

func (d *Dialer) handshakeDeadline(ctx context.Context) (time.Time, bool) {
	deadline, ok := ctx.Deadline()

	if d.timeout > 0 {
		if t := time.Now().Add(d.timeout); !ok || t.Before(deadline) {
			return t, true
		}
	}

	return deadline, ok
}

func classifyHandshakeError(addr string, err error) error {
	if strings.Contains(err.Error(), "unable to authenticate") {
		return &sshmcp.AuthError{Reason: "credentials rejected by " + addr, Err: err}
	}

	return &sshmcp.ConnectionError{Addr: addr, Err: fmt.Errorf("ssh handshake: %w", err)}
}
