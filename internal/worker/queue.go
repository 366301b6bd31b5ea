package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/car-rental-service/internal/service"
)

// RedisQueue is a redis-list backed delivery queue. It implements
// service.DeliveryQueue on the producing side and feeds the redelivery worker
// on the consuming side.
type RedisQueue struct {
	client *redis.Client
	key    string
}

// NewRedisQueue constructs the queue on the given list key.
func NewRedisQueue(client *redis.Client, key string) *RedisQueue {
	return &RedisQueue{client: client, key: key}
}

// Enqueue pushes a redelivery job onto the tail of the list.
func (q *RedisQueue) Enqueue(ctx context.Context, job service.RedeliveryJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.client.RPush(ctx, q.key, payload).Err()
}

// Dequeue blocks up to wait for the next job. Returns nil when the queue
// stays empty for the whole wait.
func (q *RedisQueue) Dequeue(ctx context.Context, wait time.Duration) (*service.RedeliveryJob, error) {
	res, err := q.client.BLPop(ctx, wait, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	// BLPOP returns [key, value].
	if len(res) < 2 {
		return nil, nil
	}

	var job service.RedeliveryJob
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return nil, err
	}
	return &job, nil
}
