package sshmcp_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/ruffel/sshmcp"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestManager_Execute(t *testing.T) {
	t.Parallel()

	t.Run("captures output and exit code", func(t *testing.T) {
		t.Parallel()

		m, transport, _ := connected(t)
		transport.On("Run", testifymock.Anything, "echo hello").Return(0, "hello\n", "", nil)

		res, err := m.Execute(context.Background(), "echo hello", "")
		require.NoError(t, err)

		assert.Equal(t, sshmcp.CommandResult{Command: "echo hello", ExitCode: 0, Stdout: "hello\n"}, res)
		assert.True(t, res.Success())
	})

	t.Run("non-zero exit is a result, not an error", func(t *testing.T) {
		t.Parallel()

		m, transport, _ := connected(t)
		transport.On("Run", testifymock.Anything, "false").Return(1, "", "", nil)

		res, err := m.Execute(context.Background(), "false", "")
		require.NoError(t, err)
		assert.Equal(t, 1, res.ExitCode)
		assert.False(t, res.Success())
	})

	t.Run("cwd is prefixed verbatim", func(t *testing.T) {
		t.Parallel()

		m, transport, _ := connected(t)
		transport.On("Run", testifymock.Anything, "cd /var/log && ls").Return(0, "syslog\n", "", nil)
		transport.On("Run", testifymock.Anything, "cd /tmp/my dir && pwd").Return(1, "", "cd: too many arguments\n", nil)

		res, err := m.Execute(context.Background(), "ls", "/var/log")
		require.NoError(t, err)
		assert.Equal(t, "ls", res.Command)
		assert.Equal(t, "syslog\n", res.Stdout)

		res, err = m.Execute(context.Background(), "pwd", "/tmp/my dir")
		require.NoError(t, err)
		assert.Equal(t, 1, res.ExitCode)

		transport.AssertExpectations(t)
	})

	t.Run("invalid utf-8 is replaced", func(t *testing.T) {
		t.Parallel()

		m, transport, _ := connected(t)
		transport.On("Run", testifymock.Anything, "cat blob").Return(0, "ok\xff\xfe", "bad\xc3", nil)

		res, err := m.Execute(context.Background(), "cat blob", "")
		require.NoError(t, err)
		assert.Equal(t, "ok\uFFFD", res.Stdout)
		assert.Equal(t, "bad\uFFFD", res.Stderr)
	})

	t.Run("transport fault is an ExecutionError", func(t *testing.T) {
		t.Parallel()

		m, transport, _ := connected(t)
		transport.On("Run", testifymock.Anything, "sleep 60").Return(-1, "", "", io.EOF)

		_, err := m.Execute(context.Background(), "sleep 60", "")

		var execErr *sshmcp.ExecutionError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, "sleep 60", execErr.Command)
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestManager_ExecuteCommandTimeout(t *testing.T) {
	t.Parallel()

	m, transport, _ := connected(t, sshmcp.WithCommandTimeout(time.Minute))
	transport.On("Run", testifymock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()

		return ok
	}), "uptime").Return(0, "up 3 days\n", "", nil)

	_, err := m.Execute(context.Background(), "uptime", "")
	require.NoError(t, err)
	transport.AssertExpectations(t)
}

func TestCommandResult_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result sshmcp.CommandResult
		want   string
	}{
		{
			name:   "stdout only",
			result: sshmcp.CommandResult{Command: "echo hi", ExitCode: 0, Stdout: "hi\n"},
			want:   "Command: echo hi\nExit Code: 0\n\nSTDOUT:\nhi\n\nSTDERR:\n",
		},
		{
			name:   "whitespace-only streams render empty",
			result: sshmcp.CommandResult{Command: "true", ExitCode: 0, Stdout: " \n\n", Stderr: "\t"},
			want:   "Command: true\nExit Code: 0\n\nSTDOUT:\n\n\nSTDERR:\n",
		},
		{
			name:   "both streams",
			result: sshmcp.CommandResult{Command: "ls nope", ExitCode: 2, Stdout: "  a\nb\n", Stderr: "ls: nope: No such file\n"},
			want:   "Command: ls nope\nExit Code: 2\n\nSTDOUT:\n  a\nb\n\nSTDERR:\nls: nope: No such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.result.Format())
		})
	}
}

func TestManager_CollectSystemInfo(t *testing.T) {
	t.Parallel()

	t.Run("labels every diagnostic", func(t *testing.T) {
		t.Parallel()

		m, transport, _ := connected(t)
		for _, cmd := range sshmcp.DefaultDiagnostics {
			transport.On("Run", testifymock.Anything, cmd).Return(0, cmd+" output", "", nil)
		}

		out, err := m.CollectSystemInfo(context.Background())
		require.NoError(t, err)

		want := ""
		for _, cmd := range sshmcp.DefaultDiagnostics {
			want += "=== " + cmd + " ===\n" + cmd + " output\n\n"
		}

		assert.Equal(t, want, out)
	})

	t.Run("failing diagnostic is reported inline", func(t *testing.T) {
		t.Parallel()

		m, transport, _ := connected(t)
		transport.On("Run", testifymock.Anything, "uname -a").Return(0, "Linux vm 6.8.0\n", "", nil)
		transport.On("Run", testifymock.Anything, "lsb_release -a").Return(-1, "", "", errors.New("channel open failed"))
		transport.On("Run", testifymock.Anything, "df -h").Return(0, "/dev/sda1 50G\n", "", nil)
		transport.On("Run", testifymock.Anything, "free -h").Return(0, "Mem: 4G\n", "", nil)
		transport.On("Run", testifymock.Anything, "ps aux | head -10").Return(0, "PID CMD\n", "", nil)

		out, err := m.CollectSystemInfo(context.Background())
		require.NoError(t, err)

		for _, cmd := range sshmcp.DefaultDiagnostics {
			assert.Contains(t, out, "=== "+cmd+" ===\n")
		}

		assert.Contains(t, out, "=== lsb_release -a ===\nCommand execution error: channel open failed\n\n")
		assert.Contains(t, out, "=== df -h ===\n/dev/sda1 50G\n\n\n")
	})

	t.Run("custom battery", func(t *testing.T) {
		t.Parallel()

		m, transport, _ := connected(t, sshmcp.WithDiagnostics("hostname"))
		transport.On("Run", testifymock.Anything, "hostname").Return(0, "vm\n", "", nil)

		out, err := m.CollectSystemInfo(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "=== hostname ===\nvm\n\n\n", out)
	})

	t.Run("cancelled context fails the collection", func(t *testing.T) {
		t.Parallel()

		m, _, _ := connected(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := m.CollectSystemInfo(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}
