package db

import (
	"errors"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// ErrDuplicateKey is returned by gateway implementations when an insert or update
// loses the race against the unique constraint on title. The service layer
// translates it into the duplicate-title domain error.
var ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")

// TodoGateway is the relational storage port for todos. Find methods return
// (nil, nil) when no row matches. Listing methods order by created_at descending
// with ascending id as the tie-break so output stays deterministic.
type TodoGateway interface {
	FindPage(filter model.TodoFilter, offset int, limit int) ([]entity.Todo, error)
	Count(filter model.TodoFilter) (int64, error)
	FindByID(id uint) (*entity.Todo, error)
	FindByTitle(title string) (*entity.Todo, error)

	Create(todo entity.Todo) (*entity.Todo, error)
	Update(todo entity.Todo) (*entity.Todo, error)
	DeleteByID(id uint) error
}
