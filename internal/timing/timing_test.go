package timing_test

import (
	"errors"
	"testing"
	"time"

	"github.com/podheal/healbatch/internal/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_RecordsWallTimeAndPropagatesError(t *testing.T) {
	sentinel := errors.New("boom")

	status, err := timing.Run(func() error {
		time.Sleep(time.Millisecond)
		return sentinel
	})

	require.ErrorIs(t, err, sentinel)
	assert.GreaterOrEqual(t, status.WallTime, time.Millisecond)
	assert.NotEmpty(t, status.RunID)
	assert.GreaterOrEqual(t, status.PeakRSSKiB, int64(0))
}

func TestRun_SucceedsWithNilError(t *testing.T) {
	status, err := timing.Run(func() error { return nil })
	require.NoError(t, err)
	assert.GreaterOrEqual(t, status.WallTime, time.Duration(0))
}
