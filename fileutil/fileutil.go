// Package fileutil provides stream helpers shared by the file-transfer paths:
// progress reporting and context cancellation for long-running copies.
package fileutil

import (
	"context"
	"io"
)

// ProgressFunc is a callback for tracking file transfer progress.
// total is 0 when the size is unknown.
type ProgressFunc func(current, total int64)

// ProgressReader wraps an io.Reader to report progress via a ProgressFunc.
// Total should be set to the known total size for percentage-based progress reporting,
// or 0 if unknown.
type ProgressReader struct {
	io.Reader

	Total   int64
	Current int64
	Fn      ProgressFunc
}

// Read reads from the underlying reader and reports progress.
func (pr *ProgressReader) Read(p []byte) (int, error) {
	n, err := pr.Reader.Read(p)
	if n > 0 {
		pr.Current += int64(n)
		if pr.Fn != nil {
			pr.Fn(pr.Current, pr.Total)
		}
	}

	return n, err
}

// ContextReader wraps an io.Reader to check for context cancellation
// before each Read call. This allows long-running io.Copy operations
// to be interrupted by context cancellation.
type ContextReader struct {
	Ctx    context.Context //nolint:containedctx
	Reader io.Reader
}

// Read checks for context cancellation before delegating to the underlying reader.
func (cr *ContextReader) Read(p []byte) (int, error) {
	if cr.Ctx.Err() != nil {
		return 0, cr.Ctx.Err()
	}

	return cr.Reader.Read(p)
}

// Copy streams src into dst, aborting when ctx is done and reporting progress to fn
// (which may be nil). It returns the number of bytes written.
func Copy(ctx context.Context, dst io.Writer, src io.Reader, total int64, fn ProgressFunc) (int64, error) {
	var reader io.Reader = &ContextReader{Ctx: ctx, Reader: src}
	if fn != nil {
		reader = &ProgressReader{Reader: reader, Total: total, Fn: fn}
	}

	return io.Copy(dst, reader)
}
