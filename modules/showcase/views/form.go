package views

import (
	"encoding/json"
	"fmt"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/smartform/modules/showcase"
	"github.com/dmitrymomot/smartform/pkg/form"
)

func section(p showcase.SectionParams) templ.Component {
	e := p.Example
	return component(func(h *html) {
		h.open("section", "id", e.Slug, "class", "example-section")
		h.open("h3")
		h.el("a", e.Title, "href", e.PageURL())
		h.close("h3")
		h.el("p", e.Description, "class", "description")

		h.open("div", "class", "example-body")
		h.render(exampleForm(p))
		h.open("div", "class", "snippets")
		for _, sn := range p.Snippets {
			h.render(snippetBlock(e, sn))
		}
		h.close("div")
		h.close("div")
		h.close("section")
	})
}

// exampleForm renders the form with its initial signals. Without JavaScript
// the form posts to the same submit endpoint and gets a full page back.
func exampleForm(p showcase.SectionParams) templ.Component {
	e := p.Example
	return component(func(h *html) {
		signals, err := json.Marshal(showcase.SignalsFor(e, p.Form).Patch(e))
		if err != nil {
			h.err = fmt.Errorf("marshal %s signals: %w", e.Key, err)
			return
		}
		h.open("form",
			"id", e.FormID(),
			"method", "post",
			"action", e.SubmitURL(),
			"novalidate", "",
			"data-signals", string(signals),
			"data-on:submit__prevent", post(e.SubmitURL()),
		)
		for _, f := range e.Fields {
			h.render(field(e, f, p.Form.Field(f.Name)))
		}
		h.render(SubmitArea(showcase.SubmitParams{Example: e, Form: p.Form, Failure: p.Failure}))
		h.close("form")
	})
}

func post(url string) string { return "@post('" + url + "')" }

func field(e *showcase.Example, f form.Field, st form.FieldState) templ.Component {
	return component(func(h *html) {
		id := e.InputID(f.Name)
		invalid := fmt.Sprintf("$%s.invalid.%s", e.Key, f.Name)

		h.open("div", "class", "form-group")
		h.el("label", f.Label, "for", id, "class", "label")
		h.open("input",
			"id", id,
			"type", f.InputType(),
			"name", f.Name,
			"value", st.Value,
			"placeholder", f.Placeholder,
			"class", "input",
			"aria-invalid", boolString(st.ShowError()),
			when(st.ShowError(), "aria-describedby"), e.FeedbackID(f.Name),
			"data-bind", fmt.Sprintf("%s.values.%s", e.Key, f.Name),
			"data-class:input-error", invalid,
			"data-attr:aria-invalid", invalid,
			"data-on:input__debounce.250ms", post(e.ValidateURL()),
			"data-on:blur", post(e.BlurURL(f.Name)),
		)
		h.render(FieldFeedback(showcase.FieldParams{Example: e, Field: f, State: st}))
		h.close("div")
	})
}

// FieldFeedback renders the error slot below an input. The slot is always
// present so that patches can target it by id.
func FieldFeedback(p showcase.FieldParams) templ.Component {
	return component(func(h *html) {
		h.open("div", "id", p.Example.FeedbackID(p.Field.Name), "class", "feedback")
		if p.State.ShowError() {
			h.el("div", p.State.Error, "class", "error-message", "role", "alert")
		}
		h.close("div")
	})
}

// SubmitArea renders the submit button together with the outcome of the last
// submission.
func SubmitArea(p showcase.SubmitParams) templ.Component {
	e := p.Example
	return component(func(h *html) {
		h.open("div", "id", e.SubmitAreaID(), "class", "submit-container")
		if p.Form.IsSubmitted {
			h.el("div", e.SuccessMessage, "class", "success-message", "role", "status")
		}
		if p.Failure != "" {
			h.el("div", p.Failure, "class", "failure-message", "role", "alert")
		}
		h.open("button",
			"type", "submit",
			"class", "btn btn-primary w-full",
			when(p.Form.IsSubmitting, "disabled"), "",
			"aria-busy", boolString(p.Form.IsSubmitting),
		)
		if p.Form.IsSubmitting {
			h.el("span", "", "class", "spinner", "aria-hidden", "true")
		}
		h.text(e.SubmitLabel)
		h.close("button")
		h.close("div")
	})
}
