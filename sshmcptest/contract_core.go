package sshmcptest

import (
	"path"
	"strings"

	"github.com/ruffel/sshmcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Contract registration function; length comes from many test cases.
func coreContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryCore,
			Name:        "connect-descriptor",
			Description: "Connect reports user@host:port and nothing secret",
			Run: func(t T, target Target) {
				resolved, err := sshmcp.Resolve(target.Config, sshmcp.ConnectionConfig{})
				require.NoError(t, err)

				m := sshmcp.NewManager(target.Dialer, nil)
				defer func() { _ = m.Close() }()

				msg, err := m.Connect(t.Context(), target.Config)
				require.NoError(t, err)
				assert.Equal(t, "Successfully connected to "+resolved.String(), msg)
				assert.True(t, m.Status().Connected)
			},
		},
		{
			Category:    CategoryCore,
			Name:        "stdout-captured",
			Description: "Standard output is captured verbatim",
			Run: func(t T, target Target) {
				m := connect(t, target)
				defer func() { _ = m.Close() }()

				res := run(t, m, "echo hello")
				assert.Equal(t, 0, res.ExitCode)
				assert.Equal(t, "hello\n", res.Stdout)
				assert.Empty(t, res.Stderr)
			},
		},
		{
			Category:    CategoryCore,
			Name:        "stderr-captured",
			Description: "Standard error is captured separately from standard output",
			Run: func(t T, target Target) {
				m := connect(t, target)
				defer func() { _ = m.Close() }()

				res := run(t, m, "echo oops >&2")
				assert.Empty(t, res.Stdout)
				assert.Equal(t, "oops\n", res.Stderr)
			},
		},
		{
			Category:    CategoryCore,
			Name:        "nonzero-exit-is-result",
			Description: "A non-zero exit status is reported in the result, not as an error",
			Run: func(t T, target Target) {
				m := connect(t, target)
				defer func() { _ = m.Close() }()

				res := run(t, m, "exit 3")
				assert.Equal(t, 3, res.ExitCode)
				assert.False(t, res.Success())
			},
		},
		{
			Category:    CategoryCore,
			Name:        "working-directory",
			Description: "cwd is applied before the command runs",
			Run: func(t T, target Target) {
				m := connect(t, target)
				defer func() { _ = m.Close() }()

				res, err := m.Execute(t.Context(), "pwd", target.RemoteDir)
				require.NoError(t, err)
				assert.Equal(t, 0, res.ExitCode)
				assert.True(t, strings.HasSuffix(strings.TrimSpace(res.Stdout), path.Base(target.RemoteDir)),
					"pwd %q does not end with %q", res.Stdout, path.Base(target.RemoteDir))
			},
		},
		{
			Category:    CategoryCore,
			Name:        "invalid-utf8-replaced",
			Description: "Invalid UTF-8 in output is replaced with U+FFFD",
			Run: func(t T, target Target) {
				m := connect(t, target)
				defer func() { _ = m.Close() }()

				res := run(t, m, `printf 'a\377b'`)
				assert.Equal(t, "a\uFFFDb", res.Stdout)
			},
		},
		{
			Category:    CategoryCore,
			Name:        "reconnect-replaces-session",
			Description: "Connecting again replaces the live session",
			Run: func(t T, target Target) {
				m := connect(t, target)
				defer func() { _ = m.Close() }()

				_, err := m.Connect(t.Context(), target.Config)
				require.NoError(t, err)

				res := run(t, m, "echo still-here")
				assert.Equal(t, "still-here\n", res.Stdout)
			},
		},
		{
			Category:    CategoryCore,
			Name:        "disconnect-then-execute",
			Description: "Operations after disconnect fail with ErrNotConnected",
			Run: func(t T, target Target) {
				m := connect(t, target)

				_, err := m.Disconnect(t.Context())
				require.NoError(t, err)

				_, err = m.Disconnect(t.Context())
				require.NoError(t, err)

				_, err = m.Execute(t.Context(), "echo hello", "")
				require.ErrorIs(t, err, sshmcp.ErrNotConnected)
			},
		},
	}
}
