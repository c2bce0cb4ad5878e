package redisclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/ensagent/base/ctx"
)

func TestPoolSize(t *testing.T) {
	idle, active := Config{}.poolSize()
	assert.Equal(t, 200, idle)
	assert.Equal(t, 1024, active)

	idle, active = Config{PoolMultiplier: 0.01}.poolSize()
	assert.Equal(t, 1, idle)
	assert.Equal(t, 4, active)
}

func TestConnectFailsWithoutRetries(t *testing.T) {
	start := time.Now()
	// nothing listens on port 1
	_, err := Connect(ctx.Background(), Config{URI: "127.0.0.1:1"})
	require.Error(t, err)
	assert.Less(t, time.Since(start), retryStart)
}

func TestConnectStopsOnCancel(t *testing.T) {
	c, cancel := ctx.WithTimeout(ctx.Background(), 100*time.Millisecond)
	defer cancel()
	_, err := Connect(c, Config{URI: "redis://127.0.0.1:1", Retries: 10})
	require.Error(t, err)
}
