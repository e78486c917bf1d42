package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/sc-task/internal/config"
)

func TestRedisCache_Unreachable(t *testing.T) {
	// Port 1 is reserved; nothing listens there.
	c := NewRedis(config.RedisConfig{Addr: "127.0.0.1:1"})
	defer c.Close()

	ctx := context.Background()

	assert.Error(t, c.Ping(ctx))

	var dest map[string]string
	found, err := c.Get(ctx, "k", &dest)
	assert.Error(t, err)
	assert.False(t, found)

	assert.NoError(t, c.Delete(ctx))
}
