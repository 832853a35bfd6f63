package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/smartform/handler"
	"github.com/dmitrymomot/smartform/modules/showcase"
)

func layout(appName, title string, body templ.Component) templ.Component {
	return component(func(h *html) {
		h.raw("<!DOCTYPE html>")
		h.open("html", "lang", "en")
		h.open("head")
		h.raw(`<meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		if title != "" && title != appName {
			title += " | " + appName
		} else {
			title = appName
		}
		h.el("title", title)
		h.open("script", "type", "module", "src", DatastarScript)
		h.close("script")
		h.close("head")

		h.open("body", "class", "bg-secondary-50 text-secondary-900")
		h.open("header", "class", "site-header")
		h.el("a", appName, "href", "/", "class", "logo")
		h.close("header")

		h.open("div", "id", "toast-container", "class", "toast-container", "aria-live", "polite")
		h.close("div")

		h.open("main", "class", "container mx-auto px-4")
		h.render(body)
		h.close("main")

		h.open("footer", "class", "site-footer")
		h.el("p", appName+": form validation with live server feedback.")
		h.close("footer")
		h.close("body")
		h.close("html")
	})
}

type feature struct{ title, description string }

var features = []feature{
	{"Robust Validation", "Real-time validation with customizable rules for any form field type."},
	{"Easy Integration", "Copy, paste, and go. Every example ships with its markup and Go code."},
	{"Highly Customizable", "Customize appearance, validation rules, messages, and behavior to fit your needs."},
	{"Performance First", "Rules are plain functions evaluated on the server with no reflection."},
}

// Home renders the landing page with every example.
func Home(p showcase.HomeParams) templ.Component {
	return layout(p.AppName, "", component(func(h *html) {
		h.open("section", "class", "hero")
		h.el("span", "Ready to use components", "class", "pill")
		h.open("h1")
		h.text("Beautiful ")
		h.el("span", "Form Validation", "class", "text-primary-600")
		h.text(" with Go and Datastar")
		h.close("h1")
		h.el("p", "A collection of reusable form components with real-time validation. Copy, download, and integrate them instantly in your projects.", "class", "lead")
		h.el("a", "View Examples", "href", "#examples-section", "class", "btn btn-secondary")
		h.close("section")

		h.open("section", "class", "features")
		h.el("h2", "Why Choose Our Components")
		h.open("div", "class", "grid")
		for _, f := range features {
			h.open("div", "class", "feature")
			h.el("h3", f.title)
			h.el("p", f.description)
			h.close("div")
		}
		h.close("div")
		h.close("section")

		h.open("section", "id", "examples-section")
		h.el("h2", "Validation Examples")
		h.el("p", "Below are working examples of form validation components. Try them out, view the code, and download what you need.")
		h.open("div", "id", "examples")
		for _, s := range p.Sections {
			h.render(section(s))
		}
		h.close("div")
		h.close("section")
	}))
}

// ExamplePage renders a single example on its own page.
func ExamplePage(p showcase.ExamplePageParams) templ.Component {
	title := ""
	if p.Section.Example != nil {
		title = p.Section.Example.Title
	}
	return layout(p.AppName, title, section(p.Section))
}

// ErrorPage renders a full error page.
func ErrorPage(appName string) func(handler.ErrorPageParams) templ.Component {
	return func(p handler.ErrorPageParams) templ.Component {
		return layout(appName, "Error", component(func(h *html) {
			h.open("section", "class", "error-page")
			h.el("h1", strconv.Itoa(p.StatusCode))
			h.el("p", p.Error, "class", "error-message")
			if p.RequestID != "" {
				h.el("p", "Request ID: "+p.RequestID, "class", "request-id")
			}
			if p.RetryURL != "" {
				h.el("a", "Try again", "href", p.RetryURL, "class", "btn btn-primary")
			}
			h.el("a", "Back to examples", "href", "/", "class", "btn btn-secondary")
			h.close("section")
		}))
	}
}
