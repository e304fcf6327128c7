package worker

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// Dispatcher pushes jobs onto Redis lists consumed by the worker pool.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

func (d *Dispatcher) Enqueue(ctx context.Context, queue string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, data).Err()
}
