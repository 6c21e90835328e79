package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrQueueEmpty is returned by Pop when no message arrived before the timeout.
var ErrQueueEmpty = errors.New("email queue is empty")

// RedisQueue is a list-backed outbox: producers LPUSH, the worker BRPOPs.
type RedisQueue struct {
	client *redis.Client
	key    string
}

func NewRedisQueue(client *redis.Client, key string) *RedisQueue {
	return &RedisQueue{client: client, key: key}
}

// Dispatch enqueues msg.
func (q *RedisQueue) Dispatch(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode email message: %w", err)
	}
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("enqueue email message: %w", err)
	}
	return nil
}

// Pop waits up to timeout for the next message.
func (q *RedisQueue) Pop(ctx context.Context, timeout time.Duration) (Message, error) {
	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if errors.Is(err, redis.Nil) {
		return Message{}, ErrQueueEmpty
	}
	if err != nil {
		return Message{}, fmt.Errorf("dequeue email message: %w", err)
	}
	// BRPOP replies with [key, value]
	if len(res) != 2 {
		return Message{}, fmt.Errorf("unexpected BRPOP reply of length %d", len(res))
	}

	var msg Message
	if err := json.Unmarshal([]byte(res[1]), &msg); err != nil {
		return Message{}, fmt.Errorf("decode email message: %w", err)
	}
	return msg, nil
}

func (q *RedisQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
