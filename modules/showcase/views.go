package showcase

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/smartform/pkg/form"
	"github.com/dmitrymomot/smartform/pkg/snippet"
)

// Views renders the showcase pages and fragments.
type Views struct {
	Home          func(HomeParams) templ.Component
	ExamplePage   func(ExamplePageParams) templ.Component
	FieldFeedback func(FieldParams) templ.Component
	SubmitArea    func(SubmitParams) templ.Component
	Toast         func(ToastParams) templ.Component
}

// SectionParams describes one example section.
type SectionParams struct {
	Example  *Example
	Form     form.Snapshot
	Snippets []snippet.Snippet
	Failure  string
}

type HomeParams struct {
	AppName  string
	Sections []SectionParams
}

type ExamplePageParams struct {
	AppName string
	Section SectionParams
}

// FieldParams describes the feedback slot of one field.
type FieldParams struct {
	Example *Example
	Field   form.Field
	State   form.FieldState
}

// SubmitParams describes the submit button together with the status line.
type SubmitParams struct {
	Example *Example
	Form    form.Snapshot
	Failure string
}

type ToastParams struct {
	Message string
	Type    string
}
