// Package validate checks that the environment is ready for the MCP server to connect
// with defaults: a .env file is present, required variables are set, an
// authentication method is usable and the port is valid.
package validate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ruffel/sshmcp"
	"github.com/ruffel/sshmcp/providers/env"
)

// Level classifies a finding.
type Level int

const (
	// LevelInfo is informational and never fails validation.
	LevelInfo Level = iota
	// LevelOK marks a passed check.
	LevelOK
	// LevelError marks a failed check.
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelOK:
		return "OK"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Section names.
const (
	SectionEnvFile = "Environment file check"
	SectionSSH     = "SSH configuration validation"
)

// Finding is one line of validation output.
type Finding struct {
	Section string
	Level   Level
	Message string
}

// Report is the ordered list of findings.
type Report struct {
	Findings []Finding
}

// OK reports whether no finding is an error.
func (r Report) OK() bool {
	for _, f := range r.Findings {
		if f.Level == LevelError {
			return false
		}
	}

	return true
}

func (r *Report) add(section string, level Level, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Section: section, Level: level, Message: fmt.Sprintf(format, args...)})
}

// Validator runs the checks against one dotenv file.
type Validator struct {
	envFile string
	lookup  func(string) (string, bool)
}

// Option defines a functional option for the Validator.
type Option func(*Validator)

// WithEnvFile sets the dotenv file to check. Defaults to ".env". The template
// used to create it is the .env.example in the same directory.
func WithEnvFile(path string) Option {
	return func(v *Validator) {
		v.envFile = path
	}
}

// WithLookup replaces os.LookupEnv.
func WithLookup(fn func(string) (string, bool)) Option {
	return func(v *Validator) {
		v.lookup = fn
	}
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{envFile: env.DefaultDotenvPath, lookup: os.LookupEnv}

	for _, o := range opts {
		o(v)
	}

	return v
}

// Run executes every check. A missing .env is created from .env.example when
// possible.
func (v *Validator) Run() Report {
	var r Report

	v.checkEnvFile(&r)
	v.checkSSHConfig(&r)

	return r
}

func (v *Validator) checkEnvFile(r *Report) {
	name := filepath.Base(v.envFile)
	example := filepath.Join(filepath.Dir(v.envFile), ".env.example")

	if _, err := os.Stat(v.envFile); err == nil {
		r.add(SectionEnvFile, LevelOK, "%s file found", name)

		return
	}

	content, err := os.ReadFile(example)
	if errors.Is(err, fs.ErrNotExist) {
		r.add(SectionEnvFile, LevelError, "%s file not found", name)
		r.add(SectionEnvFile, LevelError, ".env.example file also not found")

		return
	}

	if err != nil {
		r.add(SectionEnvFile, LevelError, "reading .env.example: %v", err)

		return
	}

	r.add(SectionEnvFile, LevelInfo, "%s file not found", name)
	r.add(SectionEnvFile, LevelInfo, "Creating %s from .env.example...", name)

	if err := os.WriteFile(v.envFile, content, 0o600); err != nil {
		r.add(SectionEnvFile, LevelError, "creating %s: %v", name, err)

		return
	}

	r.add(SectionEnvFile, LevelOK, "%s file created", name)
}

func (v *Validator) checkSSHConfig(r *Report) {
	provider := env.New(
		env.WithDotenv(v.envFile),
		env.WithLookup(v.lookup),
	)

	values, err := provider.Values()
	if err != nil {
		r.add(SectionSSH, LevelError, "%v", err)

		return
	}

	required := []struct {
		name, description string
	}{
		{env.VarHost, "SSH Host"},
		{env.VarUsername, "SSH Username"},
	}

	for _, req := range required {
		if values[req.name] == "" {
			r.add(SectionSSH, LevelError, "%s (%s) is not set", req.description, req.name)
		} else {
			r.add(SectionSSH, LevelOK, "%s is set", req.description)
		}
	}

	password, keyPath := values[env.VarPassword], values[env.VarPrivateKeyPath]

	switch {
	case password == "" && keyPath == "":
		r.add(SectionSSH, LevelError, "Neither password nor private key path is set. Please set either %s or %s",
			env.VarPassword, env.VarPrivateKeyPath)
	case password != "":
		r.add(SectionSSH, LevelOK, "Password authentication is configured")
	default:
		if _, err := os.Stat(keyPath); err != nil {
			r.add(SectionSSH, LevelError, "Private key file not found: %s", keyPath)
		} else {
			r.add(SectionSSH, LevelOK, "Private key authentication is configured")
		}
	}

	raw := values[env.VarPort]
	if raw == "" {
		raw = strconv.Itoa(sshmcp.DefaultPort)
	}

	port, err := strconv.Atoi(raw)

	switch {
	case err != nil:
		r.add(SectionSSH, LevelError, "Invalid port format: %s", raw)
	case port < 1 || port > 65535:
		r.add(SectionSSH, LevelError, "Invalid port number: %d", port)
	default:
		r.add(SectionSSH, LevelOK, "SSH Port: %d", port)
	}

	for _, optional := range []string{env.VarSSHConfig, env.VarKnownHosts} {
		path := values[optional]
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); err != nil {
			r.add(SectionSSH, LevelError, "%s file not found: %s", optional, path)
		} else {
			r.add(SectionSSH, LevelOK, "%s is set", optional)
		}
	}
}
