package sshmcp

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrNotConnected indicates that an operation requiring a live session was attempted
// while the Manager was disconnected. Every *NotConnectedError matches it via errors.Is.
var ErrNotConnected = errors.New("not connected to SSH, please connect first")

// ConfigError represents a missing or invalid connection setting.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return "configuration error: " + e.Reason
	}

	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// AuthError represents exhausted or rejected authentication.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return "authentication failed: " + e.Reason
	}

	return fmt.Sprintf("authentication failed: %s: %v", e.Reason, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ConnectionError represents a failure reaching or negotiating with the remote host.
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// NotConnectedError reports the operation that was attempted without a session.
type NotConnectedError struct {
	Op string
}

func (e *NotConnectedError) Error() string {
	if e.Op == "" {
		return ErrNotConnected.Error()
	}

	return fmt.Sprintf("%s: %v", e.Op, ErrNotConnected)
}

func (e *NotConnectedError) Is(target error) bool {
	return target == ErrNotConnected
}

// ExecutionError represents a transport fault while a command was running.
// A non-zero exit status is never an ExecutionError.
type ExecutionError struct {
	Command string
	Err     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("executing %q: %v", e.Command, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// TransferError represents a transport or filesystem fault during upload/download.
type TransferError struct {
	Op          string // "upload" or "download"
	Source      string
	Destination string
	Err         error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("%s %s to %s: %v", e.Op, e.Source, e.Destination, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// FileNotFoundError reports a missing local upload source.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return "local file not found: " + e.Path
}

func (e *FileNotFoundError) Unwrap() error {
	return fs.ErrNotExist
}
