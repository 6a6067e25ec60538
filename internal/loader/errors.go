package loader

import "errors"

// UserMessage is the only text shown to visitors when the record cannot be loaded.
const UserMessage = "Unable to load the stats. Please refresh the page."

// ErrLoadFailure matches every load error regardless of cause.
var ErrLoadFailure = errors.New("rivalry record load failed")

// LoadError collapses network, status, decode and precondition failures into one kind.
type LoadError struct {
	Cause error
}

func (e *LoadError) Error() string {
	if e.Cause == nil {
		return ErrLoadFailure.Error()
	}
	return ErrLoadFailure.Error() + ": " + e.Cause.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is reports ErrLoadFailure as a match.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailure
}

// UserMessage returns the static visitor-facing message.
func (e *LoadError) UserMessage() string {
	return UserMessage
}
