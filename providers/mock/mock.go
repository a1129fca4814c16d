package mock

import (
	"bytes"
	"context"
	"io"

	"github.com/ruffel/sshmcp"
	"github.com/stretchr/testify/mock"
)

// Dialer implements a mock sshmcp.Dialer using testify/mock.
type Dialer struct {
	mock.Mock
}

var _ sshmcp.Dialer = (*Dialer)(nil)

// Dial mocks establishing an authenticated transport.
func (m *Dialer) Dial(ctx context.Context, cfg sshmcp.ConnectionConfig) (sshmcp.Transport, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(sshmcp.Transport), args.Error(1)
}

// Transport implements a mock sshmcp.Transport using testify/mock.
//
// Run expectations return (exitCode int, stdout string, stderr string, err error);
// the stdout and stderr strings are written to the caller's writers.
type Transport struct {
	mock.Mock
}

var _ sshmcp.Transport = (*Transport)(nil)

// Run mocks running a remote command.
func (m *Transport) Run(ctx context.Context, command string, stdout, stderr io.Writer) (int, error) {
	args := m.Called(ctx, command)

	if out := args.String(1); out != "" && stdout != nil {
		_, _ = io.WriteString(stdout, out)
	}

	if out := args.String(2); out != "" && stderr != nil {
		_, _ = io.WriteString(stderr, out)
	}

	return args.Int(0), args.Error(3)
}

// OpenFileChannel mocks opening the file-transfer sub-channel.
func (m *Transport) OpenFileChannel() (sshmcp.FileChannel, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(sshmcp.FileChannel), args.Error(1)
}

// Close mocks closing the transport.
func (m *Transport) Close() error {
	args := m.Called()

	return args.Error(0)
}

// FileChannel implements a mock sshmcp.FileChannel using testify/mock.
type FileChannel struct {
	mock.Mock
}

var _ sshmcp.FileChannel = (*FileChannel)(nil)

// Mkdir mocks creating a remote directory.
func (m *FileChannel) Mkdir(path string) error {
	args := m.Called(path)

	return args.Error(0)
}

// Create mocks opening a remote file for writing.
func (m *FileChannel) Create(path string) (io.WriteCloser, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(io.WriteCloser), args.Error(1)
}

// Open mocks opening a remote file for reading.
func (m *FileChannel) Open(path string) (io.ReadCloser, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(io.ReadCloser), args.Error(1)
}

// Close mocks closing the file-transfer channel.
func (m *FileChannel) Close() error {
	args := m.Called()

	return args.Error(0)
}

// DefaultsProvider implements a mock sshmcp.DefaultsProvider using testify/mock.
type DefaultsProvider struct {
	mock.Mock
}

var _ sshmcp.DefaultsProvider = (*DefaultsProvider)(nil)

// Defaults mocks reading the default connection settings.
func (m *DefaultsProvider) Defaults() (sshmcp.ConnectionConfig, error) {
	args := m.Called()

	return args.Get(0).(sshmcp.ConnectionConfig), args.Error(1)
}

// StaticDefaults is a fixed in-memory sshmcp.DefaultsProvider.
type StaticDefaults sshmcp.ConnectionConfig

// Defaults returns the fixed config.
func (s StaticDefaults) Defaults() (sshmcp.ConnectionConfig, error) {
	return sshmcp.ConnectionConfig(s), nil
}

// WriteBuffer is an io.WriteCloser that records what was written and whether it was closed.
// Useful as the return value of a FileChannel.Create expectation.
type WriteBuffer struct {
	bytes.Buffer

	Closed bool
}

// Close marks the buffer closed.
func (w *WriteBuffer) Close() error {
	w.Closed = true

	return nil
}
