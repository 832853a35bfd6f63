package form

import "github.com/dmitrymomot/smartform/pkg/validation"

// Kind is the input type of a field.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindPassword Kind = "password"
)

// Field describes how a form field is presented.
type Field struct {
	Name        string
	Label       string
	Kind        Kind
	Placeholder string
	Default     string
}

// InputType returns the HTML input type for the field, defaulting to text.
func (f Field) InputType() string {
	if f.Kind == "" {
		return string(KindText)
	}
	return string(f.Kind)
}

// InitialValues builds the default values map from field descriptors.
func InitialValues(fields []Field) validation.Values {
	values := make(validation.Values, len(fields))
	for _, f := range fields {
		values[f.Name] = f.Default
	}
	return values
}

// FieldState is the per-field view of a Snapshot handed to renderers.
type FieldState struct {
	Name    string
	Value   string
	Error   string
	Touched bool
}

// ShowError reports whether the error should be displayed: only touched
// fields show their errors.
func (s FieldState) ShowError() bool {
	return s.Error != "" && s.Touched
}
