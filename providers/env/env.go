package env

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/ruffel/sshmcp"
)

// Variable names read by the Provider.
const (
	VarHost                 = "UBUNTU_SSH_HOST"
	VarPort                 = "UBUNTU_SSH_PORT"
	VarUsername             = "UBUNTU_SSH_USERNAME"
	VarPassword             = "UBUNTU_SSH_PASSWORD"
	VarPrivateKeyPath       = "UBUNTU_SSH_PRIVATE_KEY_PATH"
	VarPrivateKeyPassphrase = "UBUNTU_SSH_PRIVATE_KEY_PASSPHRASE"
	VarSSHConfig            = "UBUNTU_SSH_CONFIG"
	VarKnownHosts           = "UBUNTU_SSH_KNOWN_HOSTS"
)

// DefaultDotenvPath is the .env file read relative to the working directory.
const DefaultDotenvPath = ".env"

var _ sshmcp.DefaultsProvider = (*Provider)(nil)

// Provider reads default connection settings on demand.
type Provider struct {
	lookup     func(string) (string, bool)
	readFile   func(string) ([]byte, error)
	dotenvPath string
	logger     *slog.Logger
}

// Option defines a functional option for the Provider.
type Option func(*Provider)

// WithLookup replaces os.LookupEnv as the process environment source.
func WithLookup(fn func(string) (string, bool)) Option {
	return func(p *Provider) {
		p.lookup = fn
	}
}

// WithDotenv sets the .env file path. An empty path disables the file.
func WithDotenv(path string) Option {
	return func(p *Provider) {
		p.dotenvPath = path
	}
}

// WithLogger sets the structured logger. Secret values are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Provider reading os.LookupEnv and ./.env.
func New(opts ...Option) *Provider {
	p := &Provider{
		lookup:     os.LookupEnv,
		readFile:   os.ReadFile,
		dotenvPath: DefaultDotenvPath,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, o := range opts {
		o(p)
	}

	return p
}

// Values is a snapshot of every recognized variable, with process environment
// values taking precedence over the .env file.
type Values map[string]string

// Values reads the .env file and the process environment.
func (p *Provider) Values() (Values, error) {
	fileVars := map[string]string{}

	if p.dotenvPath != "" {
		vars, err := godotenv.Read(p.dotenvPath)

		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, &sshmcp.ConfigError{Field: p.dotenvPath, Reason: err.Error()}
		default:
			fileVars = vars
		}
	}

	values := Values{}

	for _, name := range []string{
		VarHost, VarPort, VarUsername, VarPassword, VarPrivateKeyPath,
		VarPrivateKeyPassphrase, VarSSHConfig, VarKnownHosts,
	} {
		if v, ok := p.lookup(name); ok {
			values[name] = v
		} else if v, ok := fileVars[name]; ok {
			values[name] = v
		}
	}

	return values, nil
}

// Defaults implements sshmcp.DefaultsProvider.
//
// A non-numeric port is a *sshmcp.ConfigError. A missing or unreadable key file is
// logged and otherwise ignored.
func (p *Provider) Defaults() (sshmcp.ConnectionConfig, error) {
	values, err := p.Values()
	if err != nil {
		return sshmcp.ConnectionConfig{}, err
	}

	cfg := sshmcp.ConnectionConfig{
		Host:                 values[VarHost],
		Username:             values[VarUsername],
		Password:             values[VarPassword],
		PrivateKeyPassphrase: values[VarPrivateKeyPassphrase],
	}

	if raw := values[VarPort]; raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return sshmcp.ConnectionConfig{}, &sshmcp.ConfigError{
				Field:  "port",
				Reason: fmt.Sprintf("%s must be an integer, got %q", VarPort, raw),
			}
		}

		cfg.Port = port
	}

	keyPath := values[VarPrivateKeyPath]

	if path := values[VarSSHConfig]; path != "" && cfg.Host != "" {
		entry, err := lookupHost(path, cfg.Host)
		if err != nil {
			return sshmcp.ConnectionConfig{}, &sshmcp.ConfigError{Field: VarSSHConfig, Reason: err.Error()}
		}

		keyPath = entry.apply(&cfg, keyPath)
	}

	if keyPath != "" {
		cfg.PrivateKey = p.readKey(keyPath)
	}

	p.logger.Debug("loaded default connection settings",
		"host", cfg.Host, "port", cfg.Port, "user", cfg.Username, "key_path", keyPath)

	return cfg, nil
}

// KnownHostsPath returns the configured known_hosts file, or "" when host keys
// should not be verified.
func (p *Provider) KnownHostsPath() (string, error) {
	values, err := p.Values()
	if err != nil {
		return "", err
	}

	return values[VarKnownHosts], nil
}

func (p *Provider) readKey(path string) string {
	b, err := p.readFile(path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		p.logger.Warn("private key path set but file not found", "path", path)

		return ""
	case err != nil:
		p.logger.Error("failed to read private key", "path", path, "error", err)

		return ""
	}

	p.logger.Info("loaded private key", "path", path)

	return string(b)
}
