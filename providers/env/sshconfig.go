package env

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kevinburke/ssh_config"
	"github.com/ruffel/sshmcp"
)

// hostEntry holds what an OpenSSH client config says about one host alias.
type hostEntry struct {
	HostName     string
	User         string
	Port         int
	IdentityFile string
}

// lookupHost resolves alias against the OpenSSH client config at path.
func lookupHost(path, alias string) (hostEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return hostEntry{}, fmt.Errorf("failed to open ssh config: %w", err)
	}

	defer func() { _ = f.Close() }()

	cfg, err := ssh_config.Decode(f)
	if err != nil {
		return hostEntry{}, fmt.Errorf("failed to parse ssh config: %w", err)
	}

	var entry hostEntry

	entry.HostName, _ = cfg.Get(alias, "HostName")
	entry.User, _ = cfg.Get(alias, "User")

	if portStr, _ := cfg.Get(alias, "Port"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return hostEntry{}, fmt.Errorf("invalid Port %q for host %s", portStr, alias)
		}

		entry.Port = port
	}

	entry.IdentityFile, _ = cfg.Get(alias, "IdentityFile")
	if rest, ok := strings.CutPrefix(entry.IdentityFile, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			entry.IdentityFile = filepath.Join(home, rest)
		}
	}

	return entry, nil
}

// apply fills the fields the environment left empty and returns the key path to use.
func (e hostEntry) apply(cfg *sshmcp.ConnectionConfig, keyPath string) string {
	if e.HostName != "" {
		cfg.Host = e.HostName
	}

	if cfg.Username == "" {
		cfg.Username = e.User
	}

	if cfg.Port == 0 {
		cfg.Port = e.Port
	}

	if keyPath == "" {
		keyPath = e.IdentityFile
	}

	return keyPath
}
