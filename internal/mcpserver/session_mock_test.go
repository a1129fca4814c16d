package mcpserver

import (
	"context"

	"github.com/ruffel/sshmcp"
	"github.com/stretchr/testify/mock"
)

type mockSession struct {
	mock.Mock
}

var _ Session = (*mockSession)(nil)

func (m *mockSession) Connect(ctx context.Context, explicit sshmcp.ConnectionConfig) (string, error) {
	args := m.Called(ctx, explicit)

	return args.String(0), args.Error(1)
}

func (m *mockSession) Execute(ctx context.Context, command, cwd string) (sshmcp.CommandResult, error) {
	args := m.Called(ctx, command, cwd)

	return args.Get(0).(sshmcp.CommandResult), args.Error(1)
}

func (m *mockSession) Upload(ctx context.Context, localPath, remotePath string) (string, error) {
	args := m.Called(ctx, localPath, remotePath)

	return args.String(0), args.Error(1)
}

func (m *mockSession) Download(ctx context.Context, remotePath, localPath string) (string, error) {
	args := m.Called(ctx, remotePath, localPath)

	return args.String(0), args.Error(1)
}

func (m *mockSession) Disconnect(ctx context.Context) (string, error) {
	args := m.Called(ctx)

	return args.String(0), args.Error(1)
}

func (m *mockSession) CollectSystemInfo(ctx context.Context) (string, error) {
	args := m.Called(ctx)

	return args.String(0), args.Error(1)
}

func (m *mockSession) Status() sshmcp.Status {
	args := m.Called()

	return args.Get(0).(sshmcp.Status)
}
