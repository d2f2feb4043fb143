package correspondence

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCursor is returned when an iterator is read or advanced past its end.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrEmptyStructure is informational: the bound structure has no nodes and the iterator starts at end.
	ErrEmptyStructure = errors.New("empty structure")
	// ErrUseAfterInvalidate is returned when the bound structure was mutated after the iterator was positioned.
	ErrUseAfterInvalidate = errors.New("use after invalidate")
	// ErrIndexOutOfRange is returned by removals with an index outside the sequence.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidRecord is returned by Builder for unsupported record types or values.
	ErrInvalidRecord = errors.New("invalid record")
)

// CursorError reports an iterator contract violation.
type CursorError struct {
	Kind     error
	Op       string
	Position Position
}

func (e *CursorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s at %s", e.Op, e.Kind.Error(), e.Position)
}

func (e *CursorError) Unwrap() error { return e.Kind }

func cursorError(kind error, op string, position Position) error {
	return &CursorError{Kind: kind, Op: op, Position: position}
}

func outOfRange(what string, index, size int) error {
	return fmt.Errorf("%s %d (len %d): %w", what, index, size, ErrIndexOutOfRange)
}
