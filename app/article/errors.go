package article

import (
	"errors"
	"fmt"
)

// ErrDuplicate marks an article that is already present in the archive.
// Callers treat it as an expected no-op outcome rather than a failure.
var ErrDuplicate = errors.New("article already exists")

// ValidationError reports a missing or invalid required field on a
// webhook submission.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}
