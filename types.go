package sshmcp

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"unicode"
)

// DefaultPort is the SSH port used when neither the caller nor the defaults set one.
const DefaultPort = 22

// ConnectionConfig holds the parameters of a single SSH connection.
// A zero-valued field means "not provided".
type ConnectionConfig struct {
	Host     string // Hostname or IP address
	Port     int    // 1-65535
	Username string // User to authenticate as

	Password             string // Password authentication (ignored when a key parses)
	PrivateKey           string // Raw private key text, never a path
	PrivateKeyPassphrase string // Passphrase for an encrypted PrivateKey
}

// Address returns the dialable host:port pair.
func (c ConnectionConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// String returns user@host:port. Secret fields are never included.
func (c ConnectionConfig) String() string {
	return fmt.Sprintf("%s@%s:%d", c.Username, c.Host, c.Port)
}

// CommandResult is the captured outcome of a single remote command.
type CommandResult struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success returns true if the command exited with status 0.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// Format renders the result as the command echo, exit code and labeled output blocks.
func (r CommandResult) Format() string {
	parts := []string{
		"Command: " + r.Command,
		fmt.Sprintf("Exit Code: %d", r.ExitCode),
		"",
		"STDOUT:",
		trimOutput(r.Stdout),
		"",
		"STDERR:",
		trimOutput(r.Stderr),
	}

	return strings.Join(parts, "\n")
}

func trimOutput(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// KeyFormat identifies a supported private key encoding.
type KeyFormat int

const (
	// KeyRSA is an RSA private key.
	KeyRSA KeyFormat = iota
	// KeyEd25519 is an Ed25519 private key.
	KeyEd25519
	// KeyECDSA is an ECDSA private key.
	KeyECDSA
	// KeyDSS is a DSA (ssh-dss) private key.
	KeyDSS
)

// KeyFormats is the order in which key material is tried during authentication.
var KeyFormats = []KeyFormat{KeyRSA, KeyEd25519, KeyECDSA, KeyDSS}

func (f KeyFormat) String() string {
	switch f {
	case KeyRSA:
		return "RSA"
	case KeyEd25519:
		return "Ed25519"
	case KeyECDSA:
		return "ECDSA"
	case KeyDSS:
		return "DSS"
	default:
		return "unknown"
	}
}

// Status is a read-only snapshot of the Manager state.
type Status struct {
	Connected bool
	Host      string
	Port      int
	Username  string
}

func (s Status) String() string {
	if !s.Connected {
		return "Disconnected"
	}

	return fmt.Sprintf("Connected to %s@%s:%d", s.Username, s.Host, s.Port)
}
