package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis plays a supporting role here: it backs the per-user goal-list
// cache and the request rate limiter, and the API runs fine without
// either. The timeouts are therefore short; a slow Redis should degrade
// to a cache miss, not stall a request that only needed Postgres.
const (
	dialTimeout  = 5 * time.Second
	opTimeout    = 2 * time.Second
	pingTimeout  = 3 * time.Second
	poolSize     = 8
	minIdleConns = 2
)

// NewRedisClient connects and verifies the connection with a ping.
// Callers treat an error as "start without Redis".
func NewRedisClient(host, port, password string, dbIndex int) (*redis.Client, error) {
	addr := net.JoinHostPort(host, port)

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           dbIndex,
		DialTimeout:  dialTimeout,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
		PoolSize:     poolSize,
		MinIdleConns: minIdleConns,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping to %s failed: %w", addr, err)
	}

	return rdb, nil
}
