package todo

import (
	"todo-api/internal/domain/model"
)

type UseCase interface {
	FindAll(page string, perPage string) (*model.Page[model.TodoResponse], error)
	FindByID(id uint) (*model.TodoResponse, error)
	Create(dto model.CreateTodoDTO) (*model.TodoResponse, error)
	Update(id uint, dto model.UpdateTodoDTO) (*model.TodoResponse, error)
	Delete(id uint) error
	Search(dto model.SearchTodoDTO) (*model.Page[model.TodoResponse], error)
}
