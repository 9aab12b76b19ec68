package backoff

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinear_FirstAttemptSucceeds(t *testing.T) {
	calls := 0

	err := Linear(3, time.Millisecond, func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestLinear_RecoversAfterFailure(t *testing.T) {
	calls := 0

	err := Linear(3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return errors.New("provider unavailable")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestLinear_ExhaustsAttempts(t *testing.T) {
	sentinel := errors.New("provider unavailable")
	calls := 0

	err := Linear(3, time.Millisecond, func() error {
		calls++
		return sentinel
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "failed after 3 attempts")
}

func TestLinear_DelayGrowsWithAttemptNumber(t *testing.T) {
	step := 10 * time.Millisecond

	start := time.Now()
	err := Linear(3, step, func() error {
		return errors.New("provider unavailable")
	})
	elapsed := time.Since(start)

	require.Error(t, err)
	// Two sleeps between three attempts: step*1 + step*2.
	assert.GreaterOrEqual(t, elapsed, 3*step)
}

func TestLinear_NoSleepAfterLastAttempt(t *testing.T) {
	step := 50 * time.Millisecond

	start := time.Now()
	err := Linear(1, step, func() error {
		return errors.New("provider unavailable")
	})
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Less(t, elapsed, step)
}
