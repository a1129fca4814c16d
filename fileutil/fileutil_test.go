package fileutil

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressReader(t *testing.T) {
	t.Parallel()

	var calls [][2]int64

	pr := &ProgressReader{
		Reader: strings.NewReader("hello world"),
		Total:  11,
		Fn: func(current, total int64) {
			calls = append(calls, [2]int64{current, total})
		},
	}

	buf := make([]byte, 4)

	for {
		if _, err := pr.Read(buf); err != nil {
			break
		}
	}

	require.NotEmpty(t, calls)
	assert.Equal(t, [2]int64{4, 11}, calls[0])
	assert.Equal(t, [2]int64{11, 11}, calls[len(calls)-1])
	assert.Equal(t, int64(11), pr.Current)
}

func TestContextReader(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cr := &ContextReader{Ctx: ctx, Reader: strings.NewReader("data")}

	buf := make([]byte, 2)
	n, err := cr.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	cancel()

	_, err = cr.Read(buf)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCopy(t *testing.T) {
	t.Parallel()

	t.Run("without progress", func(t *testing.T) {
		t.Parallel()

		var dst bytes.Buffer

		n, err := Copy(context.Background(), &dst, strings.NewReader("payload"), 7, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
		assert.Equal(t, "payload", dst.String())
	})

	t.Run("with progress", func(t *testing.T) {
		t.Parallel()

		var (
			dst  bytes.Buffer
			last int64
		)

		_, err := Copy(context.Background(), &dst, strings.NewReader("payload"), 0, func(current, total int64) {
			last = current
			assert.Zero(t, total)
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), last)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var dst bytes.Buffer

		_, err := Copy(ctx, &dst, strings.NewReader("payload"), 0, nil)
		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, dst.Len())
	})
}
