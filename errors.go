package stringify

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrWrite            = errors.New("write failed")
	ErrInvalidStyle     = errors.New("invalid style")
	ErrUnsupportedValue = errors.New("unsupported value")
)

// StyleNotFoundError reports a role that a renderer requested from a
// [Styles] table that does not bind it. It matches [ErrStyleNotFound].
type StyleNotFoundError struct {
	Role string
}

func (e *StyleNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrStyleNotFound, e.Role)
}

// Is reports whether target is [ErrStyleNotFound].
func (e *StyleNotFoundError) Is(target error) bool {
	return target == ErrStyleNotFound
}

// WriteError wraps an error returned by the output sink. It matches
// [ErrWrite] and unwraps to the sink's own error.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %v", ErrWrite, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Is reports whether target is [ErrWrite].
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

// WriteString writes s to w. A sink failure is returned as a [*WriteError].
// Renderers should use it for every token they emit.
func WriteString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
