package sshmcp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/ruffel/sshmcp/fileutil"
)

// Upload copies a single local file to remotePath over the file-transfer channel.
//
// A missing local file fails with *FileNotFoundError before any remote call. The
// remote parent directory is created one level deep (not recursively); an existing
// directory is fine. An existing remote file is overwritten. A partially written
// remote file is left in place on failure.
func (m *Manager) Upload(ctx context.Context, localPath, remotePath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.current("upload")
	if err != nil {
		return "", err
	}

	m.logger.Info("uploading file", "local", localPath, "remote", remotePath)

	if err := m.upload(ctx, s.files, localPath, remotePath); err != nil {
		m.logger.Error("file upload failed", "local", localPath, "remote", remotePath, "error", err)

		return "", err
	}

	msg := fmt.Sprintf("Successfully uploaded %s to %s", localPath, remotePath)
	m.logger.Info(msg)

	return msg, nil
}

func (m *Manager) upload(ctx context.Context, files FileChannel, localPath, remotePath string) error {
	fail := func(err error) error {
		return &TransferError{Op: "upload", Source: localPath, Destination: remotePath, Err: err}
	}

	info, err := os.Stat(localPath)
	if errors.Is(err, fs.ErrNotExist) {
		return &FileNotFoundError{Path: localPath}
	}

	if err != nil {
		return fail(err)
	}

	if info.IsDir() {
		return fail(fmt.Errorf("%s is a directory", localPath))
	}

	if dir := path.Dir(remotePath); dir != "." {
		if err := files.Mkdir(dir); err != nil && !errors.Is(err, fs.ErrExist) {
			return fail(fmt.Errorf("failed to create remote directory %q: %w", dir, err))
		}
	}

	src, err := os.Open(localPath)
	if err != nil {
		return fail(err)
	}

	defer func() { _ = src.Close() }()

	dst, err := files.Create(remotePath)
	if err != nil {
		return fail(fmt.Errorf("failed to create remote file %q: %w", remotePath, err))
	}

	n, err := fileutil.Copy(ctx, dst, src, info.Size(), m.progress)
	if err != nil {
		_ = dst.Close()

		return fail(err)
	}

	if err := dst.Close(); err != nil {
		return fail(err)
	}

	m.logger.Debug("upload complete", "bytes", n)

	return nil
}

// Download copies remotePath to a single local file.
//
// The local parent directory tree is created if absent. An existing local file is
// overwritten. A partially written local file is left in place on failure.
func (m *Manager) Download(ctx context.Context, remotePath, localPath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.current("download")
	if err != nil {
		return "", err
	}

	m.logger.Info("downloading file", "remote", remotePath, "local", localPath)

	if err := m.download(ctx, s.files, remotePath, localPath); err != nil {
		m.logger.Error("file download failed", "remote", remotePath, "local", localPath, "error", err)

		return "", err
	}

	msg := fmt.Sprintf("Successfully downloaded %s to %s", remotePath, localPath)
	m.logger.Info(msg)

	return msg, nil
}

func (m *Manager) download(ctx context.Context, files FileChannel, remotePath, localPath string) error {
	fail := func(err error) error {
		return &TransferError{Op: "download", Source: remotePath, Destination: localPath, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return fail(err)
	}

	src, err := files.Open(remotePath)
	if err != nil {
		return fail(fmt.Errorf("failed to open remote file %q: %w", remotePath, err))
	}

	defer func() { _ = src.Close() }()

	dst, err := os.Create(localPath)
	if err != nil {
		return fail(err)
	}

	n, err := fileutil.Copy(ctx, dst, src, 0, m.progress)
	if err != nil {
		_ = dst.Close()

		return fail(err)
	}

	if err := dst.Close(); err != nil {
		return fail(err)
	}

	m.logger.Debug("download complete", "bytes", n)

	return nil
}
