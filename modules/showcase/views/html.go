// Package views renders the showcase pages as templ components.
package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// DatastarScript is the client bundle loaded by every page.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// html writes markup and keeps the first error.
type html struct {
	ctx context.Context
	w   io.Writer
	err error
}

func component(fn func(h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

func (h *html) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *html) text(s string) { h.raw(templ.EscapeString(s)) }

// open writes a start tag. attrs are name/value pairs; an empty name skips
// the pair so that optional attributes can be passed inline.
func (h *html) open(tag string, attrs ...string) {
	h.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i] == "" {
			continue
		}
		h.raw(" " + attrs[i] + `="` + templ.EscapeString(attrs[i+1]) + `"`)
	}
	h.raw(">")
}

func (h *html) close(tag string) { h.raw("</" + tag + ">") }

// el writes a complete element with escaped text content.
func (h *html) el(tag, content string, attrs ...string) {
	h.open(tag, attrs...)
	h.text(content)
	h.close(tag)
}

func (h *html) render(c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(h.ctx, h.w)
	}
}

// when returns name if cond holds, which makes the attribute pair optional.
func when(cond bool, name string) string {
	if cond {
		return name
	}
	return ""
}

func boolString(b bool) string { return strconv.FormatBool(b) }
