package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options describe one Redis connection. Checkout holds, the availability
// cache and the rate limiter all share the single client built here.
type Options struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

func (o Options) withDefaults() Options {
	if o.PoolSize == 0 {
		o.PoolSize = 10
	}
	if o.MinIdleConns == 0 {
		o.MinIdleConns = 5
	}
	return o
}

// Connect builds a Redis client and verifies the connection before handing
// it out.
func Connect(ctx context.Context, opts Options) (*redis.Client, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}
	opts = opts.withDefaults()

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		PoolSize:     opts.PoolSize,
		MinIdleConns: opts.MinIdleConns,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}

	return client, nil
}
