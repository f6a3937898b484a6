// Package redis implements the energy log storage on Redis.
package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn *redis.Client
}

func (c *client) Close() error {
	return c.conn.Close()
}

// Ping checks that the server is reachable.
func (c *client) Ping(ctx context.Context) error {
	return c.conn.Ping(ctx).Err()
}

// NewClient connects to the Redis server at addr and verifies the connection
// with a PING before returning.
func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn: conn,
	}, nil
}
