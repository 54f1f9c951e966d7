package controller

import (
	"net/http"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type TodoController struct {
	api     *echo.Group
	useCase todo.UseCase
}

func NewTodoController(api *echo.Group, useCase todo.UseCase) *TodoController {
	return &TodoController{api: api, useCase: useCase}
}

// InitTodoRoutes initializes todo routes
func (controller *TodoController) InitTodoRoutes() {
	controller.api.GET("/todos", controller.FindAll)
	controller.api.GET("/todos/search", controller.Search)
	controller.api.GET("/todos/:id", controller.FindByID)
	controller.api.POST("/todos", controller.Create)
	controller.api.PUT("/todos/:id", controller.Update)
	controller.api.PATCH("/todos/:id", controller.Update)
	controller.api.DELETE("/todos/:id", controller.Delete)
}

// FindAll godoc
// @Summary List todos
// @Description Retrieve all todos ordered by most recent creation, with pagination
// @Tags todos
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(10)
// @Success 200 {object} model.Page[model.TodoResponse] "Paginated list of todos"
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos [get]
func (controller *TodoController) FindAll(c echo.Context) error {
	page, err := controller.useCase.FindAll(c.QueryParam("page"), c.QueryParam("per_page"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// Search godoc
// @Summary Search todos
// @Description Search todos by keyword, priority, status and deadline filters; filters compose conjunctively
// @Tags todos
// @Accept json
// @Produce json
// @Param q query string false "Keyword matched case-insensitively against the title"
// @Param priority query string false "High, Medium or Low"
// @Param status query string false "completed/selesai or pending/belum"
// @Param deadline query string false "Exact deadline (YYYY-MM-DD)"
// @Param deadline_from query string false "Deadline lower bound, inclusive (YYYY-MM-DD)"
// @Param deadline_to query string false "Deadline upper bound, inclusive (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(10)
// @Success 200 {object} model.Page[model.TodoResponse] "Paginated search results"
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos/search [get]
func (controller *TodoController) Search(c echo.Context) error {
	dto := model.SearchTodoDTO{
		Keyword:      c.QueryParam("q"),
		Priority:     c.QueryParam("priority"),
		Status:       c.QueryParam("status"),
		Deadline:     c.QueryParam("deadline"),
		DeadlineFrom: c.QueryParam("deadline_from"),
		DeadlineTo:   c.QueryParam("deadline_to"),
		Page:         c.QueryParam("page"),
		PerPage:      c.QueryParam("per_page"),
	}

	page, err := controller.useCase.Search(dto)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// FindByID godoc
// @Summary Get todo by id
// @Description Retrieve a single todo
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Success 200 {object} model.TodoResponse "Todo"
// @Failure 404 {object} map[string]string "Todo not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos/{id} [get]
func (controller *TodoController) FindByID(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return respondError(c, model.NewNotFound())
	}

	response, err := controller.useCase.FindByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary Create a todo
// @Description Create a new todo from the provided fields; title must be unique
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body model.CreateTodoDTO true "Todo creation data"
// @Success 201 {object} model.TodoResponse "Created todo"
// @Failure 400 {object} map[string]string "Validation failure or duplicate title"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	var dto model.CreateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}

	response, err := controller.useCase.Create(dto)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, response)
}

// Update godoc
// @Summary Update a todo
// @Description Partially update a todo; only supplied fields change
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Param todo body model.UpdateTodoDTO true "Fields to update"
// @Success 200 {object} model.TodoResponse "Updated todo"
// @Failure 400 {object} map[string]string "Validation failure or empty payload"
// @Failure 404 {object} map[string]string "Todo not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos/{id} [put]
func (controller *TodoController) Update(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return respondError(c, model.NewNotFound())
	}

	var dto model.UpdateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}

	response, err := controller.useCase.Update(id, dto)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Delete godoc
// @Summary Delete a todo
// @Description Permanently remove a todo
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Success 204 "Todo deleted successfully"
// @Failure 404 {object} map[string]string "Todo not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos/{id} [delete]
func (controller *TodoController) Delete(c echo.Context) error {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return respondError(c, model.NewNotFound())
	}

	if err := controller.useCase.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// parseID parses a positive integer path id. Non-numeric ids behave as unknown
// resources rather than bad requests.
func parseID(raw string) (uint, bool) {
	parsed, err := numberutils.ToIntWithError(raw)
	if err != nil || parsed < 1 {
		return 0, false
	}
	return uint(parsed), true
}

// respondError maps domain error kinds onto HTTP statuses. Storage failures stay
// generic; their detail is already logged by the service.
func respondError(c echo.Context, err error) error {
	domainErr, ok := err.(*model.DomainError)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": model.MessageInternal})
	}

	switch domainErr.Kind {
	case model.KindNotFound:
		return c.JSON(http.StatusNotFound, map[string]string{"message": domainErr.Message})
	case model.KindValidation:
		return c.JSON(http.StatusBadRequest, map[string]any{
			"message": domainErr.Message,
			"errors":  domainErr.Fields,
		})
	case model.KindStorage:
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": model.MessageInternal})
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"message": domainErr.Message})
	}
}
