package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
// A nil *Client is valid and behaves as an always-empty cache.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client. An empty addr disables caching and returns nil.
func New(addr, password string, db int) *Client {
	if addr == "" {
		return nil
	}
	return &Client{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// NewFromRedis wraps an existing redis client.
func NewFromRedis(rdb *redis.Client) *Client {
	return &Client{client: rdb}
}

// GetJSON decodes the cached value at key into dst and reports whether it was a hit.
func (c *Client) GetJSON(ctx context.Context, key string, dst interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil or unreachable: both are a miss
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

// SetJSON stores value encoded as JSON with TTL, ignoring redis errors.
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, payload, ttl).Err()
}

// Delete removes keys, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	_ = c.client.Del(ctx, keys...).Err()
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
