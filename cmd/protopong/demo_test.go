package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/proto-pong/internal/pong"
)

func TestRunDemoPlaysMatches(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	report, err := runDemo(ctx, 2, 60, pong.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, report.Results, 2)

	var total int
	for _, res := range report.Results {
		assert.Equal(t, pong.ModeDemo, res.Mode)
		assert.Equal(t, pong.EndCompleted, res.Reason)
		assert.Equal(t, pong.MaxPoints, max(res.ScoreA, res.ScoreB))
		assert.NotEqual(t, pong.PointNone, res.Winner)
		total += res.Ticks
	}
	assert.GreaterOrEqual(t, report.Ticks, uint64(total))
	assert.Positive(t, report.Stats.Samples)
}

func TestRunDemoDeterministic(t *testing.T) {
	ctx := context.Background()

	a, err := runDemo(ctx, 1, 60, pong.WithSeed(42))
	require.NoError(t, err)
	b, err := runDemo(ctx, 1, 60, pong.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, a.Results, b.Results)
}

func TestRunDemoCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := runDemo(ctx, 1, 60)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Results)
}
