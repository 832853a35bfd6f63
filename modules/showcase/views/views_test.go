package views_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/smartform/handler"
	"github.com/dmitrymomot/smartform/modules/showcase"
	"github.com/dmitrymomot/smartform/modules/showcase/views"
	"github.com/dmitrymomot/smartform/pkg/form"
	"github.com/dmitrymomot/smartform/pkg/logger"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func emailExample() *showcase.Example {
	return showcase.EmailExample(0, logger.Discard())
}

func TestFieldFeedback(t *testing.T) {
	t.Parallel()
	e := emailExample()
	field := e.Fields[0]

	hidden := render(t, views.FieldFeedback(showcase.FieldParams{
		Example: e,
		Field:   field,
		State:   form.FieldState{Name: "email", Error: "Email is required"},
	}))
	assert.Equal(t, `<div id="emailForm-email-feedback" class="feedback"></div>`, hidden)

	shown := render(t, views.FieldFeedback(showcase.FieldParams{
		Example: e,
		Field:   field,
		State:   form.FieldState{Name: "email", Error: "Email is <required>", Touched: true},
	}))
	assert.Contains(t, shown, `role="alert"`)
	assert.Contains(t, shown, "Email is &lt;required&gt;")
}

func TestSubmitArea(t *testing.T) {
	t.Parallel()
	e := emailExample()

	busy := render(t, views.SubmitArea(showcase.SubmitParams{Example: e, Form: form.Snapshot{IsSubmitting: true}}))
	assert.Contains(t, busy, `id="emailForm-submit"`)
	assert.Contains(t, busy, "disabled")
	assert.Contains(t, busy, `aria-busy="true"`)
	assert.NotContains(t, busy, e.SuccessMessage)

	done := render(t, views.SubmitArea(showcase.SubmitParams{Example: e, Form: form.Snapshot{IsSubmitted: true}}))
	assert.NotContains(t, done, "disabled")
	assert.Contains(t, done, "Email validated successfully!")

	failed := render(t, views.SubmitArea(showcase.SubmitParams{Example: e, Failure: "try again"}))
	assert.Contains(t, failed, "try again")
	assert.Contains(t, failed, "Validate Email")
}

func TestExamplePage(t *testing.T) {
	t.Parallel()
	e := emailExample()
	f := e.NewForm()
	f.SetValue("email", `"quoted"`)

	html := render(t, views.ExamplePage(showcase.ExamplePageParams{
		AppName: "SmartForm",
		Section: showcase.SectionParams{Example: e, Form: f.Snapshot()},
	}))

	assert.Contains(t, html, "<title>Email Validation | SmartForm</title>")
	assert.Contains(t, html, views.DatastarScript)
	assert.Contains(t, html, `action="/examples/email-validation/submit"`)
	assert.Contains(t, html, `data-bind="emailForm.values.email"`)
	assert.Contains(t, html, `value="&#34;quoted&#34;"`)
	assert.Contains(t, html, "data-signals=")
	assert.Contains(t, html, "Enter your email")
}

func TestErrorViews(t *testing.T) {
	t.Parallel()
	cfg := views.ErrorHandlerConfig("SmartForm")

	page := render(t, cfg.ErrorPage(handler.ErrorPageParams{
		Error:      "not_found",
		StatusCode: 404,
		RequestID:  "req-1",
		RetryURL:   "/examples/x",
	}))
	assert.Contains(t, page, "<h1>404</h1>")
	assert.Contains(t, page, "Request ID: req-1")
	assert.Contains(t, page, `href="/examples/x"`)

	toast := render(t, cfg.ErrorToast(handler.ErrorToastParams{Message: "boom", Type: "error"}))
	assert.Contains(t, toast, "toast-error")
	assert.Contains(t, toast, "boom")
}
