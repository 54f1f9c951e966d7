package model

import (
	"strings"
	"time"

	"todo-api/internal/domain/entity"
)

// DateLayout is the calendar-date wire format for deadlines.
const DateLayout = "2006-01-02"

// Priority levels
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Priorities enumerates the accepted priority values in their stored form.
var Priorities = []string{PriorityHigh, PriorityMedium, PriorityLow}

// NormalizePriority capitalizes the input the way the store expects: first letter
// upper, remainder lower ("hIGh" becomes "High").
func NormalizePriority(raw string) string {
	if raw == "" {
		return ""
	}
	return strings.ToUpper(raw[:1]) + strings.ToLower(raw[1:])
}

// IsValidPriority reports whether the normalized value is one of the enumerated
// priorities.
func IsValidPriority(normalized string) bool {
	for _, priority := range Priorities {
		if priority == normalized {
			return true
		}
	}
	return false
}

// CreateTodoDTO carries the raw create payload. Pointer fields distinguish absent
// fields from zero values; unknown JSON fields are dropped by decoding.
type CreateTodoDTO struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	Priority  *string `json:"priority"`
	Deadline  *string `json:"deadline"`
}

// IsEmpty reports whether no fields were supplied.
func (dto CreateTodoDTO) IsEmpty() bool {
	return dto.Title == nil && dto.Completed == nil && dto.Priority == nil && dto.Deadline == nil
}

// UpdateTodoDTO carries a partial update patch; only supplied fields are validated
// and merged.
type UpdateTodoDTO struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	Priority  *string `json:"priority"`
	Deadline  *string `json:"deadline"`
}

// IsEmpty reports whether no fields were supplied.
func (dto UpdateTodoDTO) IsEmpty() bool {
	return dto.Title == nil && dto.Completed == nil && dto.Priority == nil && dto.Deadline == nil
}

// SearchTodoDTO carries raw search query parameters. Priority and status values
// outside the recognized sets impose no constraint instead of erroring, unlike the
// strict create-time validation.
type SearchTodoDTO struct {
	Keyword      string
	Priority     string
	Status       string
	Deadline     string
	DeadlineFrom string
	DeadlineTo   string
	Page         string
	PerPage      string
}

// TodoResponse is the wire projection of a todo with a fixed field order and
// formatted dates: deadline as YYYY-MM-DD, timestamps as RFC3339 UTC.
type TodoResponse struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Completed bool    `json:"completed"`
	Priority  string  `json:"priority"`
	Deadline  *string `json:"deadline"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

// NewTodoResponse projects a stored todo into its response shape.
func NewTodoResponse(todo entity.Todo) TodoResponse {
	response := TodoResponse{
		ID:        todo.ID,
		Title:     todo.Title,
		Completed: todo.Completed,
		Priority:  todo.Priority,
		CreatedAt: todo.CreatedAt.UTC().Format(time.RFC3339),
	}

	if todo.Deadline != nil {
		deadline := todo.Deadline.Format(DateLayout)
		response.Deadline = &deadline
	}
	if todo.UpdatedAt != nil {
		updatedAt := todo.UpdatedAt.UTC().Format(time.RFC3339)
		response.UpdatedAt = &updatedAt
	}

	return response
}

// NewTodoResponses projects a slice of stored todos preserving order.
func NewTodoResponses(todos []entity.Todo) []TodoResponse {
	responses := make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		responses = append(responses, NewTodoResponse(todo))
	}
	return responses
}
