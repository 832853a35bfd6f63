package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/smartform/modules/showcase"
	"github.com/dmitrymomot/smartform/pkg/snippet"
)

func snippetBlock(e *showcase.Example, s snippet.Snippet) templ.Component {
	return component(func(h *html) {
		h.open("figure", "id", e.Key+"-snippet-"+s.Kind, "class", "code-snippet")
		h.open("figcaption", "class", "snippet-header")
		h.el("span", s.Title, "class", "snippet-title")
		h.el("span", s.FileName, "class", "snippet-file")
		h.el("span", s.Language, "class", "badge "+s.Badge())
		h.el("button", "Copy",
			"type", "button",
			"class", "btn-copy",
			"data-on:click", "navigator.clipboard.writeText(el.closest('figure').querySelector('code').textContent)",
		)
		h.el("a", "Download", "href", e.DownloadURL(s.Kind), "download", s.FileName, "class", "btn-download")
		h.close("figcaption")
		h.open("pre")
		h.el("code", s.Code, "class", "language-"+s.Language)
		h.close("pre")
		h.close("figure")
	})
}
