package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound          = errors.New("NOT_FOUND")
	ErrForbidden         = errors.New("FORBIDDEN")
	ErrConflict          = errors.New("DUPLICATE_GAME")
	ErrInsufficientFunds = errors.New("INSUFFICIENT_FUNDS")
)

// ValidationError carries per-field messages back to the request boundary.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "VALIDATION_FAILED: " + strings.Join(parts, "; ")
}

func newValidation() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) add(field, msg string) {
	e.Fields[field] = msg
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
