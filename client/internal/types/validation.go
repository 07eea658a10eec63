package types

import (
	"errors"
	"fmt"
	"strings"
)

// ------------------------------
// Shared Errors
// ------------------------------

// ErrMissingID is returned when an operation that targets an existing note
// is called without an identifier.
var ErrMissingID = errors.New("note id is required")

// ValidateIDPresent checks that id is non-empty after trimming whitespace.
func ValidateIDPresent(id, field string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s: %w", field, ErrMissingID)
	}
	return nil
}
