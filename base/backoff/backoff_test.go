package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	b := NewExponential(time.Millisecond, 5*time.Millisecond)
	require.Equal(t, time.Millisecond, b.NextDuration)
	require.NoError(t, b.Backoff(context.Background()))
	require.Equal(t, 2*time.Millisecond, b.NextDuration)
	require.NoError(t, b.Backoff(context.Background()))
	require.Equal(t, 4*time.Millisecond, b.NextDuration)
	require.NoError(t, b.Backoff(context.Background()))
	require.Equal(t, 5*time.Millisecond, b.NextDuration)

	b.Reset()
	require.Equal(t, time.Millisecond, b.NextDuration)
}

func TestBackoffCanceled(t *testing.T) {
	b := NewLinear(time.Hour, 0)
	b.NextDuration = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, b.Backoff(ctx), context.Canceled)
}

func TestPoll(t *testing.T) {
	b := NewExponential(time.Millisecond, 10*time.Millisecond)
	calls := 0
	err := b.Poll(context.Background(), func() (bool, time.Duration, error) {
		calls++
		return calls == 3, 0, nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestPollHintIsCapped(t *testing.T) {
	b := NewExponential(time.Millisecond, 2*time.Millisecond)
	calls := 0
	start := time.Now()
	err := b.Poll(context.Background(), func() (bool, time.Duration, error) {
		calls++
		return calls == 2, time.Hour, nil
	})
	require.NoError(t, err)
	require.Less(t, time.Since(start), time.Second)
}

func TestPollError(t *testing.T) {
	b := NewLinear(time.Millisecond, 0)
	boom := errors.New("boom")
	err := b.Poll(context.Background(), func() (bool, time.Duration, error) {
		return false, 0, boom
	})
	require.ErrorIs(t, err, boom)
}
