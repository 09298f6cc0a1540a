package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelPartialLimit_RespectsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32

	fns := make([]func(context.Context) (int, error), 12)
	for i := range fns {
		fns[i] = func(context.Context) (int, error) {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)

			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}

			time.Sleep(2 * time.Millisecond)

			return i, nil
		}
	}

	results := ParallelPartialLimit(context.Background(), 3, fns...)

	require.Len(t, results, 12)

	for i, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, i, r.Value)
	}

	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestParallelPartialLimit_KeepsFailures(t *testing.T) {
	errBoom := errors.New("boom")

	results := ParallelPartialLimit(context.Background(), 0,
		func(context.Context) (string, error) { return "a", nil },
		func(context.Context) (string, error) { return "", errBoom },
		func(context.Context) (string, error) { return "c", nil },
	)

	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].Value)
	require.ErrorIs(t, results[1].Err, errBoom)
	assert.Equal(t, "c", results[2].Value)
}

func TestParallelPartialLimit_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool

	results := ParallelPartialLimit(ctx, 2,
		func(context.Context) (int, error) { called.Store(true); return 1, nil },
		func(context.Context) (int, error) { called.Store(true); return 2, nil },
	)

	for _, r := range results {
		require.ErrorIs(t, r.Err, context.Canceled)
	}

	assert.False(t, called.Load())
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, 1, normalizeLimit(-3))
	assert.Equal(t, 1, normalizeLimit(0))
	assert.Equal(t, 16, normalizeLimit(16))
}
