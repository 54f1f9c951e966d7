package todo

import (
	"testing"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateNormalizesPriority(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"high", "High"},
		{"HIGH", "High"},
		{"hIgH", "High"},
		{"medium", "Medium"},
		{"low", "Low"},
	}

	for _, tt := range tests {
		todo, fieldErrors := validateCreate(model.CreateTodoDTO{
			Title:    strPtr("task"),
			Priority: strPtr(tt.raw),
		})
		assert.Empty(t, fieldErrors)
		assert.Equal(t, tt.want, todo.Priority, "priority %q", tt.raw)
	}
}

func TestValidateCreateRejectsBadFields(t *testing.T) {
	_, fieldErrors := validateCreate(model.CreateTodoDTO{
		Priority: strPtr("critical"),
		Deadline: strPtr("June 15, 2025"),
	})

	assert.Equal(t, []string{model.MessageEmptyTitle}, fieldErrors["title"])
	assert.Equal(t, []string{model.MessageInvalidPriority}, fieldErrors["priority"])
	assert.Equal(t, []string{model.MessageInvalidDeadline}, fieldErrors["deadline"])
}

func TestValidateCreateParsesDeadline(t *testing.T) {
	todo, fieldErrors := validateCreate(model.CreateTodoDTO{
		Title:    strPtr("task"),
		Deadline: strPtr("2025-06-15"),
	})

	require.Empty(t, fieldErrors)
	require.NotNil(t, todo.Deadline)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), *todo.Deadline)
}

func TestValidateCreateRejectsNonCalendarDate(t *testing.T) {
	for _, raw := range []string{"2025-13-01", "2025-02-30", "15-06-2025", "2025/06/15"} {
		_, fieldErrors := validateCreate(model.CreateTodoDTO{
			Title:    strPtr("task"),
			Deadline: strPtr(raw),
		})
		assert.Contains(t, fieldErrors, "deadline", "deadline %q", raw)
	}
}

func TestApplyUpdateKeepsAbsentFields(t *testing.T) {
	deadline := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	todo := entity.Todo{
		ID:       1,
		Title:    "original",
		Priority: "Low",
		Deadline: &deadline,
	}

	fieldErrors := applyUpdate(&todo, model.UpdateTodoDTO{Completed: boolPtr(true)})

	assert.Empty(t, fieldErrors)
	assert.True(t, todo.Completed)
	assert.Equal(t, "original", todo.Title)
	assert.Equal(t, "Low", todo.Priority)
	assert.Equal(t, &deadline, todo.Deadline)
}

func TestApplyUpdateLeavesRecordOnFailure(t *testing.T) {
	todo := entity.Todo{ID: 1, Title: "original", Priority: "Low"}

	fieldErrors := applyUpdate(&todo, model.UpdateTodoDTO{
		Title:    strPtr("   "),
		Priority: strPtr("urgent"),
	})

	assert.Len(t, fieldErrors, 2)
	assert.Equal(t, "original", todo.Title)
	assert.Equal(t, "Low", todo.Priority)
}

func TestBuildFilterStatusSynonyms(t *testing.T) {
	tests := []struct {
		status string
		want   *bool
	}{
		{"completed", boolPtr(true)},
		{"Selesai", boolPtr(true)},
		{"PENDING", boolPtr(false)},
		{"belum", boolPtr(false)},
		{"done", nil},
		{"", nil},
	}

	for _, tt := range tests {
		filter := buildFilter(model.SearchTodoDTO{Status: tt.status})
		if tt.want == nil {
			assert.Nil(t, filter.Completed, "status %q", tt.status)
		} else {
			require.NotNil(t, filter.Completed, "status %q", tt.status)
			assert.Equal(t, *tt.want, *filter.Completed, "status %q", tt.status)
		}
	}
}

func TestBuildFilterIgnoresInvalidValues(t *testing.T) {
	filter := buildFilter(model.SearchTodoDTO{
		Keyword:      "  learn  ",
		Priority:     "critical",
		Deadline:     "not-a-date",
		DeadlineFrom: "2025-02-30",
	})

	assert.Equal(t, "learn", filter.Keyword)
	assert.Empty(t, filter.Priority)
	assert.Nil(t, filter.Deadline)
	assert.Nil(t, filter.DeadlineFrom)
}

func TestBuildFilterDateRange(t *testing.T) {
	filter := buildFilter(model.SearchTodoDTO{
		DeadlineFrom: "2025-03-01",
		DeadlineTo:   "2025-09-01",
	})

	require.NotNil(t, filter.DeadlineFrom)
	require.NotNil(t, filter.DeadlineTo)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *filter.DeadlineFrom)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), *filter.DeadlineTo)
}
