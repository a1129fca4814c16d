package sshmcp

import (
	"bytes"
	"context"
	"errors"
	"strings"
)

// Execute runs a shell command over the active session and captures its output.
//
// When cwd is non-empty the dispatched command is "cd {cwd} && {command}". cwd is
// interpolated verbatim: it is NOT quoted or escaped, so callers must supply a value
// that is safe for direct shell interpolation.
//
// A non-zero exit status is a normal result. Only transport faults are returned as
// an *ExecutionError.
func (m *Manager) Execute(ctx context.Context, command, cwd string) (CommandResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.current("execute")
	if err != nil {
		return CommandResult{}, err
	}

	actual := buildCommand(command, cwd)
	m.logger.Info("executing command", "command", actual)

	exitCode, stdout, stderr, err := m.run(ctx, s, actual)
	if err != nil {
		m.logger.Error("command execution failed", "command", actual, "error", err)

		return CommandResult{}, asExecutionError(command, err)
	}

	m.logger.Info("command finished", "exit_code", exitCode)

	return CommandResult{
		Command:  command,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
	}, nil
}

// run executes command on the session transport and decodes both streams.
func (m *Manager) run(ctx context.Context, s *session, command string) (int, string, string, error) {
	ctx, cancel := m.commandContext(ctx)
	defer cancel()

	var stdout, stderr bytes.Buffer

	exitCode, err := s.transport.Run(ctx, command, &stdout, &stderr)
	if err != nil {
		return exitCode, "", "", err
	}

	return exitCode, decodeOutput(stdout.Bytes()), decodeOutput(stderr.Bytes()), nil
}

// buildCommand prefixes command with a working-directory change.
func buildCommand(command, cwd string) string {
	if cwd == "" {
		return command
	}

	return "cd " + cwd + " && " + command
}

// decodeOutput interprets b as UTF-8, replacing invalid sequences with U+FFFD.
func decodeOutput(b []byte) string {
	return strings.ToValidUTF8(string(b), "\uFFFD")
}

func asExecutionError(command string, err error) error {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return err
	}

	return &ExecutionError{Command: command, Err: err}
}
