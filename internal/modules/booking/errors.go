package booking

import (
	"errors"
	"strings"
)

var (
	ErrSessionNotFound   = errors.New("booking session not found")
	ErrSlotNotFound      = errors.New("time slot not found")
	ErrSlotBooked        = errors.New("time slot already booked")
	ErrSlotRequired      = errors.New("select a time slot first")
	ErrItemNotFound      = errors.New("catalog item not found")
	ErrWrongStep         = errors.New("operation not allowed at current step")
	ErrDetailsIncomplete = errors.New("required details missing")
	ErrInvalidForm       = errors.New("invalid form data")
)

// IncompleteError lists the required fields that are still empty.
type IncompleteError struct {
	Missing []string
}

func (e *IncompleteError) Error() string {
	return ErrDetailsIncomplete.Error() + ": " + strings.Join(e.Missing, ", ")
}

func (e *IncompleteError) Is(target error) bool {
	return target == ErrDetailsIncomplete
}
