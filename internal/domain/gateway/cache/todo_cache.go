package cache

import (
	"todo-api/internal/domain/entity"
)

// TodoCache is the read-through cache port for todo-by-id lookups. Get returns
// (nil, nil) on a miss. A nil TodoCache in the service disables caching.
type TodoCache interface {
	Get(id uint) (*entity.Todo, error)
	Set(todo entity.Todo) error
	Invalidate(id uint) error
}
