package mock

import (
	"bytes"
	"context"
	"testing"

	"github.com/ruffel/sshmcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMockTransport(t *testing.T) {
	t.Parallel()

	transport := &Transport{}
	ctx := context.Background()

	transport.On("Run", ctx, "echo hi").Return(3, "hi\n", "oops", nil)

	var stdout, stderr bytes.Buffer
	code, err := transport.Run(ctx, "echo hi", &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Equal(t, "hi\n", stdout.String())
	assert.Equal(t, "oops", stderr.String())

	files := &FileChannel{}
	transport.On("OpenFileChannel").Return(files, nil)

	got, err := transport.OpenFileChannel()
	require.NoError(t, err)
	assert.Same(t, files, got)

	transport.AssertExpectations(t)
}

func TestMockDialer(t *testing.T) {
	t.Parallel()

	dialer := &Dialer{}
	dialer.On("Dial", mock.Anything, mock.AnythingOfType("sshmcp.ConnectionConfig")).Return(nil, &sshmcp.AuthError{Reason: "denied"})

	transport, err := dialer.Dial(context.Background(), sshmcp.ConnectionConfig{Host: "h"})
	assert.Nil(t, transport)

	var authErr *sshmcp.AuthError
	require.ErrorAs(t, err, &authErr)

	dialer.AssertExpectations(t)
}

func TestStaticDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := StaticDefaults{Host: "example.com", Port: 2222}.Defaults()
	require.NoError(t, err)
	assert.Equal(t, "example.com", cfg.Host)
	assert.Equal(t, 2222, cfg.Port)
}
