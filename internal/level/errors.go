package level

import (
	"errors"
	"fmt"
)

var (
	// ErrLevelNotFound is returned when no level file exists under a name.
	ErrLevelNotFound = errors.New("map not found")
	// ErrMalformed matches every *MalformedError with errors.Is.
	ErrMalformed = errors.New("malformed level data")
)

// MalformedError reports level data that cannot be loaded.
// Line is 1-based; 0 means the problem is not tied to a single line.
type MalformedError struct {
	Line   int
	Reason string
	Err    error
}

func (e *MalformedError) Error() string {
	msg := e.Reason
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying parse error, if any.
func (e *MalformedError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrMalformed) match.
func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }

func malformed(line int, err error, format string, args ...any) *MalformedError {
	return &MalformedError{Line: line, Reason: fmt.Sprintf(format, args...), Err: err}
}
