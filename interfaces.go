// Package sshmcp manages a single remote SSH/SFTP session and exposes remote
// administration (connect, run command, transfer files, inspect the system,
// disconnect) as plain blocking operations.
//
// # Core Interfaces
//
// - Dialer: opens and authenticates a Transport (see providers/ssh).
// - Transport: an authenticated connection that can run commands and open a FileChannel.
// - FileChannel: the file-transfer sub-channel (SFTP) riding on the same Transport.
// - DefaultsProvider: process-wide default connection settings (see providers/env).
//
// # Sessions
//
// A Manager holds at most one live session. Connect replaces any existing session,
// and every other operation borrows the current one or fails with a NotConnectedError.
package sshmcp

import (
	"context"
	"io"
)

// DefaultsProvider supplies the fallback connection settings used by Manager.Connect.
//
// Defaults is queried on every connect attempt, so changes to the underlying source
// take effect on the next connection. Implementations must never log secret fields.
type DefaultsProvider interface {
	Defaults() (ConnectionConfig, error)
}

// Dialer establishes an authenticated Transport for a fully resolved ConnectionConfig.
type Dialer interface {
	// Dial connects and authenticates. Failures are reported as *AuthError or
	// *ConnectionError.
	Dial(ctx context.Context, cfg ConnectionConfig) (Transport, error)
}

// Transport is an authenticated connection to a remote host.
type Transport interface {
	io.Closer

	// Run executes a shell command string and blocks until it terminates.
	// A non-zero exit status is NOT an error; err is reserved for transport faults.
	Run(ctx context.Context, command string, stdout, stderr io.Writer) (exitCode int, err error)

	// OpenFileChannel opens the file-transfer sub-channel over this transport.
	OpenFileChannel() (FileChannel, error)
}

// FileChannel is the file-transfer sub-channel of a session.
type FileChannel interface {
	io.Closer

	// Mkdir creates a single directory level. An existing directory is reported
	// as an error matching fs.ErrExist.
	Mkdir(path string) error

	// Create opens path for writing, truncating any existing file.
	Create(path string) (io.WriteCloser, error)

	// Open opens path for reading.
	Open(path string) (io.ReadCloser, error)
}
