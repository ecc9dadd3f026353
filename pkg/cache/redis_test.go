package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectRejectsEmptyAddr(t *testing.T) {
	_, err := Connect(context.Background(), Options{})
	assert.Error(t, err)
}

func TestOptionsPoolDefaults(t *testing.T) {
	opts := Options{Addr: "localhost:6379"}.withDefaults()
	assert.Equal(t, 10, opts.PoolSize)
	assert.Equal(t, 5, opts.MinIdleConns)

	custom := Options{Addr: "localhost:6379", PoolSize: 20, MinIdleConns: 2}.withDefaults()
	assert.Equal(t, 20, custom.PoolSize)
	assert.Equal(t, 2, custom.MinIdleConns)
}
