package sshmcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Precedence(t *testing.T) {
	t.Parallel()

	defaults := ConnectionConfig{
		Host:                 "default.example.com",
		Port:                 2200,
		Username:             "ubuntu",
		Password:             "default-password",
		PrivateKey:           "default-key",
		PrivateKeyPassphrase: "default-passphrase",
	}

	tests := []struct {
		name     string
		explicit ConnectionConfig
		want     ConnectionConfig
	}{
		{
			name:     "all defaults",
			explicit: ConnectionConfig{},
			want:     defaults,
		},
		{
			name:     "explicit host only",
			explicit: ConnectionConfig{Host: "10.0.0.1"},
			want: ConnectionConfig{
				Host: "10.0.0.1", Port: 2200, Username: "ubuntu",
				Password: "default-password", PrivateKey: "default-key", PrivateKeyPassphrase: "default-passphrase",
			},
		},
		{
			name: "every field explicit",
			explicit: ConnectionConfig{
				Host: "h", Port: 22, Username: "root",
				Password: "p", PrivateKey: "k", PrivateKeyPassphrase: "pp",
			},
			want: ConnectionConfig{
				Host: "h", Port: 22, Username: "root",
				Password: "p", PrivateKey: "k", PrivateKeyPassphrase: "pp",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tt.explicit, defaults)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_DefaultPort(t *testing.T) {
	t.Parallel()

	got, err := Resolve(ConnectionConfig{Host: "h", Username: "u", Password: "p"}, ConnectionConfig{})
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, got.Port)
}

func TestResolve_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		explicit  ConnectionConfig
		wantField string
	}{
		{"missing host", ConnectionConfig{Username: "u", Password: "p"}, "host"},
		{"missing username", ConnectionConfig{Host: "h", Password: "p"}, "username"},
		{"missing credentials", ConnectionConfig{Host: "h", Username: "u"}, ""},
		{"port too large", ConnectionConfig{Host: "h", Username: "u", Password: "p", Port: 65536}, "port"},
		{"negative port", ConnectionConfig{Host: "h", Username: "u", Password: "p", Port: -1}, "port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Resolve(tt.explicit, ConnectionConfig{})

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestResolve_KeyOnlyIsEnough(t *testing.T) {
	t.Parallel()

	_, err := Resolve(ConnectionConfig{Host: "h", Username: "u", PrivateKey: "k"}, ConnectionConfig{})
	require.NoError(t, err)
}
