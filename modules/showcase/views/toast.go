package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/smartform/handler"
	"github.com/dmitrymomot/smartform/modules/showcase"
)

// Toast renders a dismissable notification for the toast container.
func Toast(p showcase.ToastParams) templ.Component {
	return toast(p.Message, p.Type, "")
}

// ErrorToast renders a request error reported by the error handler.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return toast(p.Message, p.Type, p.RequestID)
}

func toast(message, kind, requestID string) templ.Component {
	if kind == "" {
		kind = "info"
	}
	return component(func(h *html) {
		h.open("div",
			"class", "toast toast-"+kind,
			"role", "alert",
		)
		h.el("p", message)
		if requestID != "" {
			h.el("small", "Request ID: "+requestID)
		}
		h.el("button", "Dismiss", "type", "button", "class", "toast-close", "data-on:click", "el.parentElement.remove()")
		h.close("div")
	})
}
