package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"car_rental/internal/flash"

	"github.com/go-redis/redis/v8"
)

const flashPrefix = "flash:"

// Client stores flash messages as a JSON list per session.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func Initialize(redisURL string, ttl time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

// Push appends msg to the session's pending list and refreshes its TTL.
func (c *Client) Push(ctx context.Context, sessionID string, msg flash.Message) error {
	jsonData, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal flash message: %w", err)
	}

	key := flashPrefix + sessionID
	_, err = c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, jsonData)
		if c.ttl > 0 {
			pipe.Expire(ctx, key, c.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to push flash message: %w", err)
	}
	return nil
}

// Pop reads and deletes the session's pending messages in one transaction.
// Entries that do not decode are logged and dropped.
func (c *Client) Pop(ctx context.Context, sessionID string) ([]flash.Message, error) {
	key := flashPrefix + sessionID

	var values *redis.StringSliceCmd
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		values = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to pop flash messages: %w", err)
	}

	raw := values.Val()
	msgs := make([]flash.Message, 0, len(raw))
	for _, v := range raw {
		var msg flash.Message
		if err := json.Unmarshal([]byte(v), &msg); err != nil {
			log.Printf("Skipping unreadable flash message for session %s: %v", sessionID, err)
			continue
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
