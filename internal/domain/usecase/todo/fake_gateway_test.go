package todo

import (
	"sort"
	"strings"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
)

// fakeTodoGateway is an in-memory TodoGateway with the same filter and ordering
// semantics as the relational implementations. failWith forces every call to
// fail; hideTitleLookup makes FindByTitle blind so the unique-constraint backstop
// path can be exercised.
type fakeTodoGateway struct {
	todos           map[uint]entity.Todo
	nextID          uint
	failWith        error
	hideTitleLookup bool
}

var _ db.TodoGateway = (*fakeTodoGateway)(nil)

func newFakeTodoGateway() *fakeTodoGateway {
	return &fakeTodoGateway{todos: make(map[uint]entity.Todo), nextID: 1}
}

func (f *fakeTodoGateway) FindPage(filter model.TodoFilter, offset int, limit int) ([]entity.Todo, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}

	matching := f.matching(filter)
	if offset >= len(matching) {
		return []entity.Todo{}, nil
	}
	end := offset + limit
	if end > len(matching) {
		end = len(matching)
	}
	return matching[offset:end], nil
}

func (f *fakeTodoGateway) Count(filter model.TodoFilter) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.matching(filter))), nil
}

func (f *fakeTodoGateway) FindByID(id uint) (*entity.Todo, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	todo, ok := f.todos[id]
	if !ok {
		return nil, nil
	}
	return &todo, nil
}

func (f *fakeTodoGateway) FindByTitle(title string) (*entity.Todo, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if f.hideTitleLookup {
		return nil, nil
	}
	for _, todo := range f.todos {
		if todo.Title == title {
			found := todo
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeTodoGateway) Create(todo entity.Todo) (*entity.Todo, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, existing := range f.todos {
		if existing.Title == todo.Title {
			return nil, db.ErrDuplicateKey
		}
	}
	todo.ID = f.nextID
	f.nextID++
	f.todos[todo.ID] = todo
	return &todo, nil
}

func (f *fakeTodoGateway) Update(todo entity.Todo) (*entity.Todo, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, existing := range f.todos {
		if existing.ID != todo.ID && existing.Title == todo.Title {
			return nil, db.ErrDuplicateKey
		}
	}
	f.todos[todo.ID] = todo
	return &todo, nil
}

func (f *fakeTodoGateway) DeleteByID(id uint) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.todos, id)
	return nil
}

// matching applies the filter and the created_at DESC, id ASC ordering.
func (f *fakeTodoGateway) matching(filter model.TodoFilter) []entity.Todo {
	matching := make([]entity.Todo, 0, len(f.todos))
	for _, todo := range f.todos {
		if matches(filter, todo) {
			matching = append(matching, todo)
		}
	}

	sort.Slice(matching, func(i, j int) bool {
		if !matching[i].CreatedAt.Equal(matching[j].CreatedAt) {
			return matching[i].CreatedAt.After(matching[j].CreatedAt)
		}
		return matching[i].ID < matching[j].ID
	})

	return matching
}

func matches(filter model.TodoFilter, todo entity.Todo) bool {
	if filter.Keyword != "" &&
		!strings.Contains(strings.ToLower(todo.Title), strings.ToLower(filter.Keyword)) {
		return false
	}
	if filter.Priority != "" && todo.Priority != filter.Priority {
		return false
	}
	if filter.Completed != nil && todo.Completed != *filter.Completed {
		return false
	}
	if filter.Deadline != nil && (todo.Deadline == nil || !todo.Deadline.Equal(*filter.Deadline)) {
		return false
	}
	if filter.DeadlineFrom != nil && (todo.Deadline == nil || todo.Deadline.Before(*filter.DeadlineFrom)) {
		return false
	}
	if filter.DeadlineTo != nil && (todo.Deadline == nil || todo.Deadline.After(*filter.DeadlineTo)) {
		return false
	}
	return true
}
