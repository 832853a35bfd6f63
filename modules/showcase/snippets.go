package showcase

import (
	"embed"

	"github.com/dmitrymomot/smartform/pkg/snippet"
)

//go:embed snippets/*.yaml
var snippetFiles embed.FS

// LoadSnippets returns the catalog of code samples shown next to each example.
func LoadSnippets() (*snippet.Catalog, error) {
	return snippet.Load(snippetFiles, "snippets/*.yaml")
}
