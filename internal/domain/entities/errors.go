package entities

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every entity validation failure. Callers match
// it with errors.Is and surface the wrapped field message to the form layer.
var ErrValidation = errors.New("validation failed")

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
