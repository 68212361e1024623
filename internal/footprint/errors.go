package footprint

import (
	"errors"
	"fmt"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by the calculator. Compare with errors.Is.
var (
	// ErrUnknownCategoryKey indicates a mode, class, supplier or factor key
	// that has no entry in the emission factor table.
	ErrUnknownCategoryKey = constError("unknown category key")

	// ErrRecyclingFactorOutOfRange indicates a recycling factor outside [0, 1].
	ErrRecyclingFactorOutOfRange = constError("recycling factor out of range")

	// ErrTotalOutOfRange indicates quantities so large that a gram total is
	// no longer a finite number.
	ErrTotalOutOfRange = constError("footprint total out of range")

	// ErrInvalidFactor indicates a negative or non-finite coefficient, or a
	// missing coefficient the calculator cannot run without.
	ErrInvalidFactor = constError("invalid emission factor")

	// ErrInvalidFactorVersion indicates a factor table version that is not
	// semantic or does not satisfy the requested constraint.
	ErrInvalidFactorVersion = constError("invalid emission factor table version")
)

// KeyError reports a selector value that could not be matched against the
// factor table.
type KeyError struct {
	// Selector names the input that carried the value, e.g. "commute.mode".
	Selector string
	// Value is the offending value as supplied.
	Value string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %s %q", ErrUnknownCategoryKey, e.Selector, e.Value)
}

// Unwrap lets errors.Is match ErrUnknownCategoryKey.
func (e *KeyError) Unwrap() error {
	return ErrUnknownCategoryKey
}

func unknownKey(selector, value string) error {
	return &KeyError{Selector: selector, Value: value}
}

// withSelector renames the selector of a KeyError so callers see which input
// field carried the bad value. Other errors pass through unchanged.
func withSelector(err error, selector string) error {
	var keyErr *KeyError
	if errors.As(err, &keyErr) {
		return &KeyError{Selector: selector, Value: keyErr.Value}
	}
	return err
}
