package generation

import (
	"errors"
	"fmt"
)

var (
	// ErrInProgress indicates another generation currently holds the slot.
	ErrInProgress = errors.New("generation already in progress")
	// ErrEmptyResponse indicates the generator returned no text.
	ErrEmptyResponse = errors.New("generator returned no text")
	// ErrUnknownSection indicates a section that cannot be generated.
	ErrUnknownSection = errors.New("unknown section")
)

// Error reports a failed generation for one section. The proposal is left
// unchanged whenever an Error is returned.
type Error struct {
	Section Section
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Section, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
