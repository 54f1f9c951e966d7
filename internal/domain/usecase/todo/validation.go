package todo

import (
	"strings"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// validateCreate checks every field of a create payload and collects all failures
// instead of stopping at the first. On success the returned todo carries trimmed
// and normalized values with defaults applied (completed false, priority Medium).
func validateCreate(dto model.CreateTodoDTO) (entity.Todo, model.FieldErrors) {
	fieldErrors := make(model.FieldErrors)
	todo := entity.Todo{Priority: model.PriorityMedium}

	if dto.Title == nil || strings.TrimSpace(*dto.Title) == "" {
		fieldErrors.Add("title", model.MessageEmptyTitle)
	} else {
		todo.Title = strings.TrimSpace(*dto.Title)
	}

	if dto.Completed != nil {
		todo.Completed = *dto.Completed
	}

	if dto.Priority != nil {
		normalized := model.NormalizePriority(*dto.Priority)
		if !model.IsValidPriority(normalized) {
			fieldErrors.Add("priority", model.MessageInvalidPriority)
		} else {
			todo.Priority = normalized
		}
	}

	if dto.Deadline != nil {
		deadline, ok := parseDeadline(*dto.Deadline)
		if !ok {
			fieldErrors.Add("deadline", model.MessageInvalidDeadline)
		} else {
			todo.Deadline = deadline
		}
	}

	return todo, fieldErrors
}

// applyUpdate validates only the supplied fields of a patch and merges them into
// the existing record; absent fields retain their prior values. Failures are
// collected per field like on create.
func applyUpdate(todo *entity.Todo, dto model.UpdateTodoDTO) model.FieldErrors {
	fieldErrors := make(model.FieldErrors)

	if dto.Title != nil {
		trimmed := strings.TrimSpace(*dto.Title)
		if trimmed == "" {
			fieldErrors.Add("title", model.MessageEmptyTitle)
		} else {
			todo.Title = trimmed
		}
	}

	if dto.Completed != nil {
		todo.Completed = *dto.Completed
	}

	if dto.Priority != nil {
		normalized := model.NormalizePriority(*dto.Priority)
		if !model.IsValidPriority(normalized) {
			fieldErrors.Add("priority", model.MessageInvalidPriority)
		} else {
			todo.Priority = normalized
		}
	}

	if dto.Deadline != nil {
		deadline, ok := parseDeadline(*dto.Deadline)
		if !ok {
			fieldErrors.Add("deadline", model.MessageInvalidDeadline)
		} else {
			todo.Deadline = deadline
		}
	}

	return fieldErrors
}

// buildFilter normalizes raw search parameters into storage criteria. Unlike the
// strict create path, unrecognized priority or status values and unparseable dates
// impose no constraint.
func buildFilter(dto model.SearchTodoDTO) model.TodoFilter {
	filter := model.TodoFilter{Keyword: strings.TrimSpace(dto.Keyword)}

	if dto.Priority != "" {
		normalized := model.NormalizePriority(dto.Priority)
		if model.IsValidPriority(normalized) {
			filter.Priority = normalized
		}
	}

	switch strings.ToLower(dto.Status) {
	case "completed", "selesai":
		completed := true
		filter.Completed = &completed
	case "pending", "belum":
		completed := false
		filter.Completed = &completed
	}

	if deadline, ok := parseDeadline(dto.Deadline); ok {
		filter.Deadline = deadline
	}
	if from, ok := parseDeadline(dto.DeadlineFrom); ok {
		filter.DeadlineFrom = from
	}
	if to, ok := parseDeadline(dto.DeadlineTo); ok {
		filter.DeadlineTo = to
	}

	return filter
}

// parseDeadline parses a YYYY-MM-DD calendar date. The empty string is not a date.
func parseDeadline(raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, false
	}
	parsed, err := time.ParseInLocation(model.DateLayout, raw, time.UTC)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}
