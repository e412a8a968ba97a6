package mcp795xx

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every RangeError.
	ErrOutOfRange = errors.New("mcp795xx: value out of range")

	// ErrInvalidDate is returned by DateTime.Time when the fields do not name a real date and time.
	ErrInvalidDate = errors.New("mcp795xx: invalid date")
)

// RangeError reports a value that cannot be packed into its register.
type RangeError struct {
	Field    string
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("mcp795xx: %s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

func checkRange(name string, v, min, max int) error {
	if v < min || v > max {
		return &RangeError{Field: name, Value: v, Min: min, Max: max}
	}
	return nil
}
