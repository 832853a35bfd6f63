package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrValidationFailed is matched by every ValidationErrors value via errors.Is.
var ErrValidationFailed = errors.New("validation failed")

// Errors maps a field name to its current error message.
// An empty message means the field is valid.
type Errors map[string]string

// Has reports whether field has an error.
func (e Errors) Has(field string) bool {
	return e[field] != ""
}

// Get returns the error message for field, or an empty string.
func (e Errors) Get(field string) string {
	return e[field]
}

// Fields returns the names of invalid fields in sorted order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for name, msg := range e {
		if msg != "" {
			fields = append(fields, name)
		}
	}
	sort.Strings(fields)
	return fields
}

// Clone returns a copy of e.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Err converts e into a ValidationErrors error ordered by field name.
// Returns nil when no field has an error.
func (e Errors) Err() error {
	if !HasErrors(e) {
		return nil
	}
	fields := e.Fields()
	verrs := make(ValidationErrors, 0, len(fields))
	for _, field := range fields {
		verrs = append(verrs, ValidationError{Field: field, Message: e[field]})
	}
	return verrs
}

// ValidationError describes a single failed field.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors is the error form of a failed validation.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) true for any ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Map groups messages by field, the shape used by JSON error details.
func (ve ValidationErrors) Map() map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, err := range ve {
		out[err.Field] = append(out[err.Field], err.Message)
	}
	return out
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}
