package ssh

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/pkg/sftp"
	"github.com/ruffel/sshmcp"
)

var _ sshmcp.FileChannel = (*FileChannel)(nil)

// FileChannel is an sshmcp.FileChannel backed by an SFTP client.
type FileChannel struct {
	client *sftp.Client
}

// Mkdir creates exactly one directory level. An existing directory is reported as an
// error wrapping fs.ErrExist.
func (f *FileChannel) Mkdir(path string) error {
	err := f.client.Mkdir(path)
	if err == nil {
		return nil
	}

	if info, statErr := f.client.Stat(path); statErr == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", fs.ErrExist, path)
	}

	return err
}

// Create opens path for writing, creating or truncating it.
func (f *FileChannel) Create(path string) (io.WriteCloser, error) {
	file, err := f.client.Create(path)
	if err != nil {
		return nil, err
	}

	return file, nil
}

// Open opens path for reading.
func (f *FileChannel) Open(path string) (io.ReadCloser, error) {
	file, err := f.client.Open(path)
	if err != nil {
		return nil, err
	}

	return file, nil
}

// Close ends the SFTP session. The SSH connection stays open.
func (f *FileChannel) Close() error {
	return f.client.Close()
}
