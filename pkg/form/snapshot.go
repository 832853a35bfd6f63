package form

import "github.com/dmitrymomot/smartform/pkg/validation"

// Snapshot is the complete observable state of a form at a point in time.
// It owns its maps; mutating them does not affect the form.
type Snapshot struct {
	Values       validation.Values
	Errors       validation.Errors
	Touched      map[string]bool
	IsSubmitting bool
	IsSubmitted  bool
}

// IsValid reports whether no field has an error.
func (s Snapshot) IsValid() bool {
	return !validation.HasErrors(s.Errors)
}

// Field returns the state of a single field.
func (s Snapshot) Field(name string) FieldState {
	return FieldState{
		Name:    name,
		Value:   s.Values[name],
		Error:   s.Errors[name],
		Touched: s.Touched[name],
	}
}

// VisibleErrors returns the errors of touched fields only.
func (s Snapshot) VisibleErrors() validation.Errors {
	out := make(validation.Errors)
	for name, msg := range s.Errors {
		if msg != "" && s.Touched[name] {
			out[name] = msg
		}
	}
	return out
}
