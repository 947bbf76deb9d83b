package bind

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported marks an operation that the shape's Caps forbid.
	ErrUnsupported = errors.New("unsupported bind operation")

	// ErrUnknownKey is returned when a key name cannot be parsed.
	ErrUnknownKey = errors.New("unknown key")

	// ErrUnknownPointer is returned when a pointer button name cannot be parsed.
	ErrUnknownPointer = errors.New("unknown pointer button")

	// ErrInvalidBind is returned when an encoded bind is malformed.
	ErrInvalidBind = errors.New("invalid bind")
)

// UnsupportedError is the panic value for a capability violation.
type UnsupportedError struct {
	Op    string
	Shape string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s on %s: %v", e.Op, e.Shape, ErrUnsupported)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

// unsupported panics: reaching it means a caller ignored the shape's Caps.
func unsupported(op string, t Target) {
	panic(&UnsupportedError{Op: op, Shape: fmt.Sprintf("%T", t)})
}
