package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/orgball2608/insta-virality-exporter/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalPacer_BurstThenWait(t *testing.T) {
	p := ratelimit.NewIntervalPacer(50*time.Millisecond, 1)

	// First call consumes the burst immediately.
	start := time.Now()
	require.NoError(t, p.Wait(context.Background()))
	assert.Less(t, time.Since(start), 20*time.Millisecond)

	// Second call has to wait for the interval.
	start = time.Now()
	require.NoError(t, p.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestIntervalPacer_ContextCancel(t *testing.T) {
	p := ratelimit.NewIntervalPacer(time.Hour, 1)
	require.NoError(t, p.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, p.Wait(ctx))
}
