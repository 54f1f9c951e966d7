package todo

import (
	"errors"
	"time"

	"todo-api/internal/domain/entity"
	cachegw "todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"

	"go.uber.org/zap"
)

type todoUseCase struct {
	gateway db.TodoGateway
	cache   cachegw.TodoCache
}

// NewTodoUseCase creates the todo service. If cache is nil, caching is disabled.
func NewTodoUseCase(gateway db.TodoGateway, cache cachegw.TodoCache) UseCase {
	return &todoUseCase{
		gateway: gateway,
		cache:   cache,
	}
}

func (uc *todoUseCase) FindAll(page string, perPage string) (*model.Page[model.TodoResponse], error) {
	request, err := model.ParsePageRequest(page, perPage)
	if err != nil {
		return nil, err
	}
	return uc.findPage(model.TodoFilter{}, request)
}

func (uc *todoUseCase) Search(dto model.SearchTodoDTO) (*model.Page[model.TodoResponse], error) {
	request, err := model.ParsePageRequest(dto.Page, dto.PerPage)
	if err != nil {
		return nil, err
	}
	return uc.findPage(buildFilter(dto), request)
}

func (uc *todoUseCase) FindByID(id uint) (*model.TodoResponse, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(id); err == nil && cached != nil {
			response := model.NewTodoResponse(*cached)
			return &response, nil
		}
	}

	todo, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, storageFailure("find todo", err)
	}
	if todo == nil {
		return nil, model.NewNotFound()
	}

	uc.cacheSet(*todo)

	response := model.NewTodoResponse(*todo)
	return &response, nil
}

func (uc *todoUseCase) Create(dto model.CreateTodoDTO) (*model.TodoResponse, error) {
	if dto.IsEmpty() {
		return nil, model.NewNoInput()
	}

	todo, fieldErrors := validateCreate(dto)
	if len(fieldErrors) > 0 {
		return nil, model.NewValidationFailed(fieldErrors)
	}

	// Explicit duplicate check before insert; the unique constraint stays the
	// authority if this check loses the race.
	existing, err := uc.gateway.FindByTitle(todo.Title)
	if err != nil {
		return nil, storageFailure("check duplicate title", err)
	}
	if existing != nil {
		return nil, model.NewDuplicateTitle()
	}

	todo.CreatedAt = time.Now().UTC()

	created, err := uc.gateway.Create(todo)
	if errors.Is(err, db.ErrDuplicateKey) {
		return nil, model.NewDuplicateTitle()
	}
	if err != nil {
		return nil, storageFailure("create todo", err)
	}

	uc.cacheSet(*created)
	log.Info("todo created", zap.Uint("id", created.ID), zap.String("title", created.Title))

	response := model.NewTodoResponse(*created)
	return &response, nil
}

func (uc *todoUseCase) Update(id uint, dto model.UpdateTodoDTO) (*model.TodoResponse, error) {
	todo, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, storageFailure("find todo for update", err)
	}
	if todo == nil {
		return nil, model.NewNotFound()
	}

	if dto.IsEmpty() {
		return nil, model.NewNoDataForUpdate()
	}

	fieldErrors := applyUpdate(todo, dto)
	if len(fieldErrors) > 0 {
		return nil, model.NewValidationFailed(fieldErrors)
	}

	now := time.Now().UTC()
	todo.UpdatedAt = &now

	updated, err := uc.gateway.Update(*todo)
	if errors.Is(err, db.ErrDuplicateKey) {
		// Title collisions on update are caught by the unique constraint only.
		return nil, model.NewDuplicateTitle()
	}
	if err != nil {
		return nil, storageFailure("update todo", err)
	}

	uc.cacheInvalidate(id)
	log.Info("todo updated", zap.Uint("id", id))

	response := model.NewTodoResponse(*updated)
	return &response, nil
}

func (uc *todoUseCase) Delete(id uint) error {
	todo, err := uc.gateway.FindByID(id)
	if err != nil {
		return storageFailure("find todo for delete", err)
	}
	if todo == nil {
		return model.NewNotFound()
	}

	if err := uc.gateway.DeleteByID(id); err != nil {
		return storageFailure("delete todo", err)
	}

	uc.cacheInvalidate(id)
	log.Info("todo deleted", zap.Uint("id", id))
	return nil
}

func (uc *todoUseCase) findPage(filter model.TodoFilter, request model.PageRequest) (*model.Page[model.TodoResponse], error) {
	total, err := uc.gateway.Count(filter)
	if err != nil {
		return nil, storageFailure("count todos", err)
	}

	todos, err := uc.gateway.FindPage(filter, request.Offset(), request.PerPage)
	if err != nil {
		return nil, storageFailure("list todos", err)
	}

	return model.NewPage(model.NewTodoResponses(todos), request.Page, request.PerPage, total), nil
}

func (uc *todoUseCase) cacheSet(todo entity.Todo) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Set(todo); err != nil {
		log.Warn("todo cache set failed", zap.Uint("id", todo.ID), zap.Error(err))
	}
}

func (uc *todoUseCase) cacheInvalidate(id uint) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(id); err != nil {
		log.Warn("todo cache invalidate failed", zap.Uint("id", id), zap.Error(err))
	}
}

func storageFailure(operation string, err error) error {
	log.Error("todo storage operation failed", zap.String("operation", operation), zap.Error(err))
	return model.NewStorageFailure(err)
}
