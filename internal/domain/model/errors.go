package model

import "strings"

// ErrorKind classifies the expected failure outcomes of todo operations. Everything
// except KindStorage is recoverable by the caller and must never surface as an
// internal error.
type ErrorKind string

const (
	KindNoInput           ErrorKind = "no_input"
	KindValidation        ErrorKind = "validation_failed"
	KindDuplicateTitle    ErrorKind = "duplicate_title"
	KindNotFound          ErrorKind = "not_found"
	KindNoDataForUpdate   ErrorKind = "no_data_for_update"
	KindInvalidPagination ErrorKind = "invalid_pagination"
	KindStorage           ErrorKind = "storage_failure"
)

// Error messages
const (
	MessageNoInput         = "No input provided."
	MessageDuplicateTitle  = "Title already exists, please use a different title."
	MessageNoDataForUpdate = "No data provided for update."
	MessageInvalidPriority = "Priority must be High, Medium, or Low."
	MessageInvalidDeadline = "Invalid deadline format (use YYYY-MM-DD)."
	MessageEmptyTitle      = "Title cannot be empty."
	MessageNotFound        = "Todo not found."
	MessagePagination      = "Invalid pagination parameters."
	MessageInternal        = "Internal server error."
)

// FieldErrors maps a field name to the validation messages collected for it.
type FieldErrors map[string][]string

// Add appends a message for the given field.
func (f FieldErrors) Add(field string, message string) {
	f[field] = append(f[field], message)
}

// DomainError is a structured, expected failure outcome. Validation failures carry
// the field to messages mapping in Fields.
type DomainError struct {
	Kind    ErrorKind
	Message string
	Fields  FieldErrors
	Cause   error
}

// Unwrap exposes the underlying fault of a storage failure.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

func (e *DomainError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	parts := make([]string, 0, len(e.Fields))
	for field, messages := range e.Fields {
		parts = append(parts, field+": "+strings.Join(messages, "; "))
	}
	return e.Message + " (" + strings.Join(parts, ", ") + ")"
}

func NewNoInput() *DomainError {
	return &DomainError{Kind: KindNoInput, Message: MessageNoInput}
}

func NewValidationFailed(fields FieldErrors) *DomainError {
	return &DomainError{Kind: KindValidation, Message: "Validation failed.", Fields: fields}
}

func NewDuplicateTitle() *DomainError {
	return &DomainError{Kind: KindDuplicateTitle, Message: MessageDuplicateTitle}
}

func NewNotFound() *DomainError {
	return &DomainError{Kind: KindNotFound, Message: MessageNotFound}
}

func NewNoDataForUpdate() *DomainError {
	return &DomainError{Kind: KindNoDataForUpdate, Message: MessageNoDataForUpdate}
}

func NewInvalidPagination() *DomainError {
	return &DomainError{Kind: KindInvalidPagination, Message: MessagePagination}
}

func NewStorageFailure(cause error) *DomainError {
	return &DomainError{Kind: KindStorage, Message: MessageInternal, Cause: cause}
}

// KindOf returns the error kind when err is a DomainError, or KindStorage otherwise:
// anything that is not a structured domain failure is an unexpected fault.
func KindOf(err error) ErrorKind {
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr.Kind
	}
	return KindStorage
}
