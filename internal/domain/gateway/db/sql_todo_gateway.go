package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"

	"github.com/lib/pq"
)

const todoColumns = "id, title, completed, priority, deadline, created_at, updated_at"

// pq error code for unique_violation
const uniqueViolation = "23505"

type SQLTodoGateway struct {
	DB *sql.DB
}

var _ TodoGateway = (*SQLTodoGateway)(nil)

func NewSQLTodoGateway(db *sql.DB) *SQLTodoGateway {
	return &SQLTodoGateway{DB: db}
}

func (gateway *SQLTodoGateway) FindPage(filter model.TodoFilter, offset int, limit int) ([]entity.Todo, error) {
	where, args := filterClause(filter)
	query := fmt.Sprintf(`
		SELECT %s
		FROM todos
		%s
		ORDER BY created_at DESC, id ASC
		OFFSET $%d LIMIT $%d`, todoColumns, where, len(args)+1, len(args)+2)
	args = append(args, offset, limit)

	rows, err := gateway.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]entity.Todo, 0)
	for rows.Next() {
		var todo entity.Todo
		if err := rows.Scan(&todo.ID, &todo.Title, &todo.Completed, &todo.Priority,
			&todo.Deadline, &todo.CreatedAt, &todo.UpdatedAt); err != nil {
			return nil, err
		}
		results = append(results, todo)
	}
	return results, rows.Err()
}

func (gateway *SQLTodoGateway) Count(filter model.TodoFilter) (int64, error) {
	where, args := filterClause(filter)
	var total int64
	err := gateway.DB.QueryRow("SELECT COUNT(*) FROM todos "+where, args...).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (gateway *SQLTodoGateway) FindByID(id uint) (*entity.Todo, error) {
	var todo entity.Todo
	err := gateway.DB.QueryRow(fmt.Sprintf(`
		SELECT %s
		FROM todos
		WHERE id = $1`, todoColumns), id).
		Scan(&todo.ID, &todo.Title, &todo.Completed, &todo.Priority,
			&todo.Deadline, &todo.CreatedAt, &todo.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *SQLTodoGateway) FindByTitle(title string) (*entity.Todo, error) {
	var todo entity.Todo
	err := gateway.DB.QueryRow(fmt.Sprintf(`
		SELECT %s
		FROM todos
		WHERE title = $1`, todoColumns), title).
		Scan(&todo.ID, &todo.Title, &todo.Completed, &todo.Priority,
			&todo.Deadline, &todo.CreatedAt, &todo.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *SQLTodoGateway) Create(todo entity.Todo) (*entity.Todo, error) {
	err := gateway.DB.QueryRow(`
		INSERT INTO todos (title, completed, priority, deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		todo.Title, todo.Completed, todo.Priority, todo.Deadline,
		todo.CreatedAt, todo.UpdatedAt).
		Scan(&todo.ID)
	if err != nil {
		return nil, translateUniqueViolation(err)
	}
	return &todo, nil
}

func (gateway *SQLTodoGateway) Update(todo entity.Todo) (*entity.Todo, error) {
	_, err := gateway.DB.Exec(`
		UPDATE todos
		SET title = $1, completed = $2, priority = $3, deadline = $4, updated_at = $5
		WHERE id = $6`,
		todo.Title, todo.Completed, todo.Priority, todo.Deadline,
		todo.UpdatedAt, todo.ID)
	if err != nil {
		return nil, translateUniqueViolation(err)
	}
	return &todo, nil
}

func (gateway *SQLTodoGateway) DeleteByID(id uint) error {
	_, err := gateway.DB.Exec(`DELETE FROM todos WHERE id = $1`, id)
	return err
}

// filterClause renders the conjunctive criteria as a WHERE clause with positional
// placeholders, returning the clause and its arguments.
func filterClause(filter model.TodoFilter) (string, []any) {
	conditions := make([]string, 0, 6)
	args := make([]any, 0, 6)

	next := func() int { return len(args) + 1 }

	if filter.Keyword != "" {
		conditions = append(conditions, fmt.Sprintf("title ILIKE '%%' || $%d || '%%'", next()))
		args = append(args, filter.Keyword)
	}
	if filter.Priority != "" {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", next()))
		args = append(args, filter.Priority)
	}
	if filter.Completed != nil {
		conditions = append(conditions, fmt.Sprintf("completed = $%d", next()))
		args = append(args, *filter.Completed)
	}
	if filter.Deadline != nil {
		conditions = append(conditions, fmt.Sprintf("deadline = $%d", next()))
		args = append(args, *filter.Deadline)
	}
	if filter.DeadlineFrom != nil {
		conditions = append(conditions, fmt.Sprintf("deadline >= $%d", next()))
		args = append(args, *filter.DeadlineFrom)
	}
	if filter.DeadlineTo != nil {
		conditions = append(conditions, fmt.Sprintf("deadline <= $%d", next()))
		args = append(args, *filter.DeadlineTo)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func translateUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateKey
	}
	return err
}
