package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todo-api/internal/domain/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTodoUseCase returns canned responses so controller tests only exercise
// routing, binding and status mapping.
type stubTodoUseCase struct {
	page     *model.Page[model.TodoResponse]
	response *model.TodoResponse
	err      error

	createdWith model.CreateTodoDTO
	updatedID   uint
	updatedWith model.UpdateTodoDTO
	deletedID   uint
	searchedFor model.SearchTodoDTO
}

func (s *stubTodoUseCase) FindAll(page string, perPage string) (*model.Page[model.TodoResponse], error) {
	return s.page, s.err
}

func (s *stubTodoUseCase) Search(dto model.SearchTodoDTO) (*model.Page[model.TodoResponse], error) {
	s.searchedFor = dto
	return s.page, s.err
}

func (s *stubTodoUseCase) FindByID(id uint) (*model.TodoResponse, error) {
	return s.response, s.err
}

func (s *stubTodoUseCase) Create(dto model.CreateTodoDTO) (*model.TodoResponse, error) {
	s.createdWith = dto
	return s.response, s.err
}

func (s *stubTodoUseCase) Update(id uint, dto model.UpdateTodoDTO) (*model.TodoResponse, error) {
	s.updatedID = id
	s.updatedWith = dto
	return s.response, s.err
}

func (s *stubTodoUseCase) Delete(id uint) error {
	s.deletedID = id
	return s.err
}

func newTestServer(useCase *stubTodoUseCase) *echo.Echo {
	e := echo.New()
	api := e.Group("/api")
	NewTodoController(api, useCase).InitTodoRoutes()
	return e
}

func sampleResponse() *model.TodoResponse {
	deadline := "2025-06-15"
	return &model.TodoResponse{
		ID:        1,
		Title:     "Learn Go",
		Completed: false,
		Priority:  "High",
		Deadline:  &deadline,
		CreatedAt: "2025-01-02T03:04:05Z",
	}
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
		request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	recorder := httptest.NewRecorder()
	e.ServeHTTP(recorder, request)
	return recorder
}

func TestFindAllReturnsPage(t *testing.T) {
	useCase := &stubTodoUseCase{
		page: model.NewPage([]model.TodoResponse{*sampleResponse()}, 1, 10, 1),
	}
	e := newTestServer(useCase)

	recorder := doRequest(e, http.MethodGet, "/api/todos?page=1&per_page=10", "")

	require.Equal(t, http.StatusOK, recorder.Code)

	var page map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page))
	assert.Equal(t, float64(1), page["total"])
	assert.Equal(t, float64(1), page["pages"])
	assert.Equal(t, false, page["has_next"])
	assert.Len(t, page["items"], 1)
}

func TestFindAllInvalidPagination(t *testing.T) {
	useCase := &stubTodoUseCase{err: model.NewInvalidPagination()}
	e := newTestServer(useCase)

	recorder := doRequest(e, http.MethodGet, "/api/todos?page=abc", "")

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, model.MessagePagination, body["message"])
}

func TestSearchForwardsQueryParams(t *testing.T) {
	useCase := &stubTodoUseCase{page: model.NewPage([]model.TodoResponse{}, 1, 10, 0)}
	e := newTestServer(useCase)

	recorder := doRequest(e, http.MethodGet,
		"/api/todos/search?q=learn&priority=High&status=pending&deadline_from=2025-03-01&deadline_to=2025-09-01", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "learn", useCase.searchedFor.Keyword)
	assert.Equal(t, "High", useCase.searchedFor.Priority)
	assert.Equal(t, "pending", useCase.searchedFor.Status)
	assert.Equal(t, "2025-03-01", useCase.searchedFor.DeadlineFrom)
	assert.Equal(t, "2025-09-01", useCase.searchedFor.DeadlineTo)
}

func TestFindByID(t *testing.T) {
	useCase := &stubTodoUseCase{response: sampleResponse()}
	e := newTestServer(useCase)

	recorder := doRequest(e, http.MethodGet, "/api/todos/1", "")

	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Learn Go", body["title"])
	assert.Equal(t, "2025-06-15", body["deadline"])
	assert.Nil(t, body["updated_at"])
}

func TestFindByIDNotFound(t *testing.T) {
	useCase := &stubTodoUseCase{err: model.NewNotFound()}
	e := newTestServer(useCase)

	recorder := doRequest(e, http.MethodGet, "/api/todos/99", "")

	require.Equal(t, http.StatusNotFound, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, model.MessageNotFound, body["message"])
}

func TestNonNumericIDBehavesAsNotFound(t *testing.T) {
	useCase := &stubTodoUseCase{response: sampleResponse()}
	e := newTestServer(useCase)

	for _, target := range []string{"/api/todos/abc", "/api/todos/0", "/api/todos/-1"} {
		recorder := doRequest(e, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, recorder.Code, "target %s", target)
	}
}

func TestCreateReturnsCreated(t *testing.T) {
	useCase := &stubTodoUseCase{response: sampleResponse()}
	e := newTestServer(useCase)

	recorder := doRequest(e, http.MethodPost, "/api/todos",
		`{"title":"Learn Go","priority":"High","deadline":"2025-06-15"}`)

	require.Equal(t, http.StatusCreated, recorder.Code)
	require.NotNil(t, useCase.createdWith.Title)
	assert.Equal(t, "Learn Go", *useCase.createdWith.Title)
}

func TestCreateValidationFailure(t *testing.T) {
	fields := make(model.FieldErrors)
	fields.Add("title", model.MessageEmptyTitle)
	fields.Add("priority", model.MessageInvalidPriority)
	useCase := &stubTodoUseCase{err: model.NewValidationFailed(fields)}
	e := newTestServer(useCase)

	recorder := doRequest(e, http.MethodPost, "/api/todos", `{"title":"","priority":"urgent"}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "title")
	assert.Contains(t, body.Errors, "priority")
}

func TestCreateDuplicateTitle(t *testing.T) {
	useCase := &stubTodoUseCase{err: model.NewDuplicateTitle()}
	e := newTestServer(useCase)

	recorder := doRequest(e, http.MethodPost, "/api/todos", `{"title":"Learn Go"}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, model.MessageDuplicateTitle, body["message"])
}

func TestCreateMalformedJSON(t *testing.T) {
	useCase := &stubTodoUseCase{response: sampleResponse()}
	e := newTestServer(useCase)

	recorder := doRequest(e, http.MethodPost, "/api/todos", `{"title":`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateBindsPathAndBody(t *testing.T) {
	useCase := &stubTodoUseCase{response: sampleResponse()}
	e := newTestServer(useCase)

	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		recorder := doRequest(e, method, "/api/todos/7", `{"completed":true}`)

		require.Equal(t, http.StatusOK, recorder.Code, "method %s", method)
		assert.Equal(t, uint(7), useCase.updatedID)
		require.NotNil(t, useCase.updatedWith.Completed)
		assert.True(t, *useCase.updatedWith.Completed)
	}
}

func TestUpdateEmptyPayload(t *testing.T) {
	useCase := &stubTodoUseCase{err: model.NewNoDataForUpdate()}
	e := newTestServer(useCase)

	recorder := doRequest(e, http.MethodPut, "/api/todos/1", `{}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, model.MessageNoDataForUpdate, body["message"])
}

func TestDeleteReturnsNoContent(t *testing.T) {
	useCase := &stubTodoUseCase{}
	e := newTestServer(useCase)

	recorder := doRequest(e, http.MethodDelete, "/api/todos/3", "")

	require.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, uint(3), useCase.deletedID)
	assert.Empty(t, recorder.Body.Bytes())
}

func TestStorageFailureStaysGeneric(t *testing.T) {
	useCase := &stubTodoUseCase{err: model.NewStorageFailure(assert.AnError)}
	e := newTestServer(useCase)

	recorder := doRequest(e, http.MethodGet, "/api/todos", "")

	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, model.MessageInternal, body["message"])
	assert.NotContains(t, recorder.Body.String(), assert.AnError.Error())
}
