package db

import (
	"errors"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"

	"gorm.io/gorm"
)

const listOrder = "created_at DESC, id ASC"

type GormTodoGateway struct {
	DB *gorm.DB
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{DB: db}
}

func (gateway *GormTodoGateway) FindPage(filter model.TodoFilter, offset int, limit int) ([]entity.Todo, error) {
	todos := make([]entity.Todo, 0)
	err := applyFilter(gateway.DB.Model(&entity.Todo{}), filter).
		Order(listOrder).
		Offset(offset).
		Limit(limit).
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *GormTodoGateway) Count(filter model.TodoFilter) (int64, error) {
	var total int64
	err := applyFilter(gateway.DB.Model(&entity.Todo{}), filter).Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (gateway *GormTodoGateway) FindByID(id uint) (*entity.Todo, error) {
	var todo entity.Todo
	err := gateway.DB.First(&todo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) FindByTitle(title string) (*entity.Todo, error) {
	var todo entity.Todo
	err := gateway.DB.Where("title = ?", title).First(&todo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) Create(todo entity.Todo) (*entity.Todo, error) {
	err := gateway.DB.Create(&todo).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateKey
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) Update(todo entity.Todo) (*entity.Todo, error) {
	// Save with explicit column selection so cleared booleans still persist.
	err := gateway.DB.Model(&entity.Todo{ID: todo.ID}).
		Select("title", "completed", "priority", "deadline", "updated_at").
		Updates(map[string]any{
			"title":      todo.Title,
			"completed":  todo.Completed,
			"priority":   todo.Priority,
			"deadline":   todo.Deadline,
			"updated_at": todo.UpdatedAt,
		}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateKey
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) DeleteByID(id uint) error {
	return gateway.DB.Delete(&entity.Todo{}, id).Error
}

// applyFilter chains the conjunctive search criteria onto the query. Unset
// criteria add no clause.
func applyFilter(query *gorm.DB, filter model.TodoFilter) *gorm.DB {
	if filter.Keyword != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Keyword+"%")
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}
	if filter.Deadline != nil {
		query = query.Where("deadline = ?", *filter.Deadline)
	}
	if filter.DeadlineFrom != nil {
		query = query.Where("deadline >= ?", *filter.DeadlineFrom)
	}
	if filter.DeadlineTo != nil {
		query = query.Where("deadline <= ?", *filter.DeadlineTo)
	}
	return query
}
