package ssh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/sftp"
	"github.com/ruffel/sshmcp"
	"golang.org/x/crypto/ssh"
)

var _ sshmcp.Transport = (*Transport)(nil)

// Transport runs commands and opens SFTP channels over one SSH client connection.
type Transport struct {
	client *ssh.Client
	logger *slog.Logger
}

// NewTransport wraps an established client. A nil logger discards output.
func NewTransport(client *ssh.Client, logger *slog.Logger) *Transport {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Transport{client: client, logger: logger}
}

// Run opens a new session for command and blocks until it exits.
//
// A non-zero exit status is returned with a nil error. A command that ends without
// reporting a status yields -1. Cancelling ctx kills the remote command.
func (t *Transport) Run(ctx context.Context, command string, stdout, stderr io.Writer) (int, error) {
	session, err := t.client.NewSession()
	if err != nil {
		return -1, fmt.Errorf("failed to create ssh session: %w", err)
	}

	defer func() { _ = session.Close() }()

	session.Stdout = stdout
	session.Stderr = stderr

	if err := session.Start(command); err != nil {
		return -1, fmt.Errorf("failed to start command: %w", err)
	}

	done := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
			_ = session.Signal(ssh.SIGKILL)
			_ = session.Close()
		case <-done:
		}
	}()

	err = session.Wait()

	close(done)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, ctxErr
	}

	var (
		exitErr    *ssh.ExitError
		missingErr *ssh.ExitMissingError
	)

	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		return exitErr.ExitStatus(), nil
	case errors.As(err, &missingErr):
		t.logger.Warn("remote command ended without an exit status", "command", command)

		return -1, nil
	default:
		return -1, err
	}
}

// OpenFileChannel starts the SFTP subsystem on this connection.
func (t *Transport) OpenFileChannel() (sshmcp.FileChannel, error) {
	client, err := sftp.NewClient(t.client)
	if err != nil {
		return nil, &sshmcp.ConnectionError{
			Addr: t.client.RemoteAddr().String(),
			Err:  fmt.Errorf("failed to start sftp subsystem: %w", err),
		}
	}

	return &FileChannel{client: client}, nil
}

// Close closes the underlying SSH connection.
func (t *Transport) Close() error {
	return t.client.Close()
}
