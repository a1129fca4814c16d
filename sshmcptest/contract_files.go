package sshmcptest

import (
	"os"
	"path"
	"path/filepath"

	"github.com/ruffel/sshmcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPermissions = 0o600

func writeLocal(t T, name, content string) string {
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), testPermissions))

	return p
}

//nolint:funlen // Contract registration function; length comes from many test cases.
func fileContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryFilesystem,
			Name:        "upload-source-missing",
			Description: "Uploading a non-existent local file fails with FileNotFoundError",
			Run: func(t T, target Target) {
				m := connect(t, target)
				defer func() { _ = m.Close() }()

				src := filepath.Join(t.TempDir(), "this-file-really-does-not-exist")

				_, err := m.Upload(t.Context(), src, path.Join(remoteBase(t, target), "never.txt"))

				var notFound *sshmcp.FileNotFoundError
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, src, notFound.Path)
			},
		},
		{
			Category:    CategoryFilesystem,
			Name:        "upload-creates-parent",
			Description: "Upload creates a missing remote parent directory one level deep",
			Run: func(t T, target Target) {
				m := connect(t, target)
				defer func() { _ = m.Close() }()

				base := remoteBase(t, target)
				defer func() { _, _ = m.Execute(t.Context(), "rm -rf "+base, "") }()

				src := writeLocal(t, "upload.txt", "hello from sshmcp")
				dst := path.Join(base, "upload.txt")

				msg, err := m.Upload(t.Context(), src, dst)
				require.NoError(t, err)
				assert.Equal(t, "Successfully uploaded "+src+" to "+dst, msg)

				res := run(t, m, "cat "+dst)
				assert.Equal(t, "hello from sshmcp", res.Stdout)
			},
		},
		{
			Category:    CategoryFilesystem,
			Name:        "upload-overwrites",
			Description: "Uploading over an existing remote file replaces its content",
			Run: func(t T, target Target) {
				m := connect(t, target)
				defer func() { _ = m.Close() }()

				base := remoteBase(t, target)
				defer func() { _, _ = m.Execute(t.Context(), "rm -rf "+base, "") }()

				dst := path.Join(base, "file.txt")

				_, err := m.Upload(t.Context(), writeLocal(t, "first.txt", "a much longer first version"), dst)
				require.NoError(t, err)

				_, err = m.Upload(t.Context(), writeLocal(t, "second.txt", "second"), dst)
				require.NoError(t, err)

				res := run(t, m, "cat "+dst)
				assert.Equal(t, "second", res.Stdout)
			},
		},
		{
			Category:    CategoryFilesystem,
			Name:        "upload-grandparent-missing",
			Description: "Upload does not create remote directories recursively",
			Run: func(t T, target Target) {
				m := connect(t, target)
				defer func() { _ = m.Close() }()

				base := remoteBase(t, target)
				defer func() { _, _ = m.Execute(t.Context(), "rm -rf "+base, "") }()

				_, err := m.Upload(t.Context(), writeLocal(t, "deep.txt", "deep"), path.Join(base, "a", "b", "deep.txt"))

				var transferErr *sshmcp.TransferError
				require.ErrorAs(t, err, &transferErr)
				assert.Equal(t, "upload", transferErr.Op)
			},
		},
		{
			Category:    CategoryFilesystem,
			Name:        "download-creates-local-parents",
			Description: "Download creates the local directory tree and can be repeated",
			Run: func(t T, target Target) {
				m := connect(t, target)
				defer func() { _ = m.Close() }()

				base := remoteBase(t, target)
				defer func() { _, _ = m.Execute(t.Context(), "rm -rf "+base, "") }()

				remote := path.Join(base, "report.txt")
				_, err := m.Upload(t.Context(), writeLocal(t, "report.txt", "round trip"), remote)
				require.NoError(t, err)

				local := filepath.Join(t.TempDir(), "x", "y", "report.txt")

				for range 2 {
					msg, err := m.Download(t.Context(), remote, local)
					require.NoError(t, err)
					assert.Equal(t, "Successfully downloaded "+remote+" to "+local, msg)
				}

				content, err := os.ReadFile(local)
				require.NoError(t, err)
				assert.Equal(t, "round trip", string(content))
			},
		},
		{
			Category:    CategoryFilesystem,
			Name:        "download-remote-missing",
			Description: "Downloading a non-existent remote file fails with TransferError",
			Run: func(t T, target Target) {
				m := connect(t, target)
				defer func() { _ = m.Close() }()

				_, err := m.Download(t.Context(), path.Join(remoteBase(t, target), "missing.txt"), filepath.Join(t.TempDir(), "missing.txt"))

				var transferErr *sshmcp.TransferError
				require.ErrorAs(t, err, &transferErr)
				assert.Equal(t, "download", transferErr.Op)
			},
		},
	}
}
