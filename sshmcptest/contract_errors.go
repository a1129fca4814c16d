package sshmcptest

import (
	"context"
	"time"

	"github.com/ruffel/sshmcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Contract registration function; length comes from many test cases.
func errorContracts() []TestCase {
	return []TestCase{
		{
			Category:    CategoryErrors,
			Name:        "wrong-password",
			Description: "Rejected credentials fail with AuthError and leave the manager disconnected",
			Run: func(t T, target Target) {
				cfg := target.Config
				cfg.PrivateKey = ""
				cfg.PrivateKeyPassphrase = ""
				cfg.Password = "definitely-not-the-password"

				m := sshmcp.NewManager(target.Dialer, nil)

				_, err := m.Connect(t.Context(), cfg)

				var authErr *sshmcp.AuthError
				require.ErrorAs(t, err, &authErr)
				assert.False(t, m.Status().Connected)
			},
		},
		{
			Category:    CategoryErrors,
			Name:        "unparseable-key",
			Description: "Key material no format accepts fails with AuthError even when a password is set",
			Run: func(t T, target Target) {
				cfg := target.Config
				cfg.PrivateKey = "-----BEGIN NONSENSE-----\nAAAA\n-----END NONSENSE-----\n"
				cfg.Password = "ignored-once-a-key-is-given"

				m := sshmcp.NewManager(target.Dialer, nil)

				_, err := m.Connect(t.Context(), cfg)

				var authErr *sshmcp.AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Contains(t, authErr.Error(), "unsupported key format or incorrect passphrase")
			},
		},
		{
			Category:    CategoryErrors,
			Name:        "connection-refused",
			Description: "An unreachable port fails with ConnectionError",
			Run: func(t T, target Target) {
				cfg := target.Config
				cfg.Host = "127.0.0.1"
				cfg.Port = 1

				m := sshmcp.NewManager(target.Dialer, nil)

				_, err := m.Connect(t.Context(), cfg)

				var connErr *sshmcp.ConnectionError
				require.ErrorAs(t, err, &connErr)
				assert.Equal(t, "127.0.0.1:1", connErr.Addr)
			},
		},
		{
			Category:    CategoryErrors,
			Name:        "command-cancelled",
			Description: "A command outliving its context fails with ExecutionError promptly",
			Run: func(t T, target Target) {
				m := connect(t, target)
				defer func() { _ = m.Close() }()

				ctx, cancel := context.WithTimeout(t.Context(), 500*time.Millisecond)
				defer cancel()

				start := time.Now()
				_, err := m.Execute(ctx, "sleep 10", "")

				var execErr *sshmcp.ExecutionError
				require.ErrorAs(t, err, &execErr)
				require.ErrorIs(t, err, context.DeadlineExceeded)
				assert.Less(t, time.Since(start), 8*time.Second)
			},
		},
	}
}
