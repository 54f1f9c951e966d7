package model

import (
	"todo-api/pkg/util/numberutils"
)

// Pagination limits
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Page represents a generic paginated response
type Page[T any] struct {
	Items   []T   `json:"items"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// NewPage creates a new Page instance with calculated values
func NewPage[T any](items []T, page int, perPage int, total int64) *Page[T] {
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if total == 0 {
		pages = 0
	}

	return &Page[T]{
		Items:   items,
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

// PageRequest holds sanitized pagination parameters.
type PageRequest struct {
	Page    int
	PerPage int
}

// Offset returns the row offset for the request.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.PerPage
}

// ParsePageRequest parses raw page/per_page query values and applies the clamping
// rules: absent values fall back to the defaults, page below 1 becomes 1, per_page
// above MaxPerPage becomes MaxPerPage and per_page below 1 becomes the default.
// Non-integer input is the only error case.
func ParsePageRequest(pageRaw string, perPageRaw string) (PageRequest, error) {
	page := DefaultPage
	perPage := DefaultPerPage

	if pageRaw != "" {
		parsed, err := numberutils.ToIntWithError(pageRaw)
		if err != nil {
			return PageRequest{}, NewInvalidPagination()
		}
		page = parsed
	}

	if perPageRaw != "" {
		parsed, err := numberutils.ToIntWithError(perPageRaw)
		if err != nil {
			return PageRequest{}, NewInvalidPagination()
		}
		perPage = parsed
	}

	if page < 1 {
		page = DefaultPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	return PageRequest{Page: page, PerPage: perPage}, nil
}
