// Package sshmcptest provides a contract test suite for sshmcp.Dialer implementations.
//
// Each contract drives a real sshmcp.Manager through the Dialer under test, so the
// suite exercises authentication, command execution, file transfer and system
// inspection end to end.
package sshmcptest

import (
	"context"
	"fmt"
	"path"
	"strings"
	"testing"

	"github.com/ruffel/sshmcp"
	"github.com/stretchr/testify/require"
)

// Standard categories for grouping tests.
const (
	CategoryCore       = "core"
	CategoryFilesystem = "filesystem"
	CategorySystem     = "system"
	CategoryErrors     = "errors"
)

// T is the minimal interface required for testify/assert and require.
type T interface {
	Errorf(format string, args ...any)
	FailNow()
	Skipf(format string, args ...any)
	Context() context.Context
	TempDir() string
	Name() string
}

// Target describes the remote host a contract runs against.
type Target struct {
	Dialer sshmcp.Dialer
	Config sshmcp.ConnectionConfig

	// RemoteDir is an existing, writable directory on the remote host.
	RemoteDir string
}

// TestCase defines a single behavioral contract requirement.
type TestCase struct {
	Category    string
	Name        string
	Description string
	Run         func(t T, target Target)
}

// ID returns the stable, globally unique contract identifier.
func (tc TestCase) ID() string {
	return fmt.Sprintf("%s/%s", tc.Category, tc.Name)
}

// Verify is the standard Go test entry point for Dialer authors.
func Verify(t *testing.T, target Target) {
	t.Helper()

	for _, tc := range AllContracts() {
		t.Run(tc.ID(), func(t *testing.T) {
			tc.Run(t, target)
		})
	}
}

// AllContracts returns all test cases for the contract test suite.
func AllContracts() []TestCase {
	var contracts []TestCase

	contracts = append(contracts, coreContracts()...)
	contracts = append(contracts, fileContracts()...)
	contracts = append(contracts, systemContracts()...)
	contracts = append(contracts, errorContracts()...)

	return contracts
}

// connect returns a Manager connected to target. Callers close it.
func connect(t T, target Target) *sshmcp.Manager {
	m := sshmcp.NewManager(target.Dialer, nil)

	_, err := m.Connect(t.Context(), target.Config)
	require.NoError(t, err)

	return m
}

// remoteBase returns a per-test remote path under target.RemoteDir. It is not created.
func remoteBase(t T, target Target) string {
	return path.Join(target.RemoteDir, "sshmcp-"+strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()))
}

// run executes command and fails the test on a transport fault.
func run(t T, m *sshmcp.Manager, command string) sshmcp.CommandResult {
	res, err := m.Execute(t.Context(), command, "")
	require.NoError(t, err)

	return res
}
