package sshmcptest

import (
	"strings"

	"github.com/ruffel/sshmcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func systemContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategorySystem,
			Name:        "system-info-sections",
			Description: "Every diagnostic contributes a labeled section, in order",
			Run: func(t T, target Target) {
				m := connect(t, target)
				defer func() { _ = m.Close() }()

				out, err := m.CollectSystemInfo(t.Context())
				require.NoError(t, err)

				last := -1

				for _, cmd := range sshmcp.DefaultDiagnostics {
					idx := strings.Index(out, "=== "+cmd+" ===\n")
					require.GreaterOrEqual(t, idx, 0, "missing section for %q", cmd)
					assert.Greater(t, idx, last, "section %q out of order", cmd)

					last = idx
				}
			},
		},
	}
}
