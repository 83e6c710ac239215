package usecase

import (
	"errors"
	"fmt"

	"dootrec/pkg/utils"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries per-field messages for inline display.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", utils.FormatValidationErrors(e.Fields))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q %w", kind, id, ErrNotFound)
}

// Messages shown when a lookup by id finds nothing.
const (
	ReviewNotFoundMessage = "Review not found."
	UserNotFoundMessage   = "User not found."
)
