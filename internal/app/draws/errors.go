package draws

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRoster is returned when a request names no players.
	ErrEmptyRoster = errors.New("roster is empty")
	// ErrNoDraw is returned by Redraw and Latest before any draw ran.
	ErrNoDraw = errors.New("no draw has been made yet")
	// ErrDrawNotFound is returned for unknown draw ids.
	ErrDrawNotFound = errors.New("draw not found")
)

// ValidationError reports a request that cannot be drawn as given.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AsValidationError attempts to unwrap an error into a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
