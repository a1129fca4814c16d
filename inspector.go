package sshmcp

import (
	"context"
	"fmt"
	"strings"
)

// DefaultDiagnostics is the command battery run by CollectSystemInfo, in order:
// system identification, OS release, disk usage, memory usage and a truncated
// process listing.
var DefaultDiagnostics = []string{
	"uname -a",
	"lsb_release -a",
	"df -h",
	"free -h",
	"ps aux | head -10",
}

// CollectSystemInfo runs every diagnostic command and concatenates the labeled output.
//
// A failing diagnostic contributes an inline error line under its own header instead
// of aborting the collection. The call fails only when there is no session or ctx
// is done.
func (m *Manager) CollectSystemInfo(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.current("collect system info")
	if err != nil {
		return "", err
	}

	m.logger.Info("collecting system information", "commands", len(m.diagnostics))

	var b strings.Builder

	for _, command := range m.diagnostics {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		_, stdout, _, err := m.run(ctx, s, command)
		if err != nil {
			m.logger.Warn("diagnostic command failed", "command", command, "error", err)
			fmt.Fprintf(&b, "=== %s ===\nCommand execution error: %v\n\n", command, err)

			continue
		}

		fmt.Fprintf(&b, "=== %s ===\n%s\n\n", command, stdout)
	}

	m.logger.Info("system information collected")

	return b.String(), nil
}
