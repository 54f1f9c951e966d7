package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"todo-api/internal/domain/entity"
	cachegw "todo-api/internal/domain/gateway/cache"

	"github.com/redis/go-redis/v9"
)

const opTimeout = 500 * time.Millisecond

// TodoCache caches todo records by id in redis with a fixed TTL. Cache faults are
// reported to the caller, which treats them as misses.
type TodoCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ cachegw.TodoCache = (*TodoCache)(nil)

func NewTodoCache(client *redis.Client, ttl time.Duration) *TodoCache {
	return &TodoCache{client: client, ttl: ttl}
}

func (c *TodoCache) Get(id uint) (*entity.Todo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var todo entity.Todo
	if err := json.Unmarshal(raw, &todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

func (c *TodoCache) Set(todo entity.Todo) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	raw, err := json.Marshal(todo)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(todo.ID), raw, c.ttl).Err()
}

func (c *TodoCache) Invalidate(id uint) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return c.client.Del(ctx, key(id)).Err()
}

func key(id uint) string {
	return "todo:" + strconv.FormatUint(uint64(id), 10)
}

// NewClient builds the redis client from app.cache properties and verifies the
// connection.
func NewClient(host string, port int, password string, database int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("fail to connect redis: %w", err)
	}
	return client, nil
}
