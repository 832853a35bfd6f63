package form

import "errors"

var (
	// ErrInvalid is returned by Submit when at least one field fails validation.
	// The returned error also wraps validation.ValidationErrors.
	ErrInvalid = errors.New("form: validation failed")

	// ErrSubmitInProgress is returned by Submit when a previous submission has
	// not completed yet. The call has no effect.
	ErrSubmitInProgress = errors.New("form: submit already in progress")
)
