package snippet

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// ContentType is used when serving snippet code for download.
const ContentType = "text/plain; charset=utf-8"

// Snippet is a single downloadable code sample.
type Snippet struct {
	Example  string `yaml:"-"`
	Kind     string `yaml:"kind"`
	Title    string `yaml:"title"`
	Language string `yaml:"language"`
	FileName string `yaml:"file_name"`
	Code     string `yaml:"code"`
}

// ID is the stable identifier of the snippet, "<example>/<kind>".
func (s Snippet) ID() string {
	return s.Example + "/" + s.Kind
}

// Badge returns the CSS class of the language badge.
func (s Snippet) Badge() string {
	return BadgeColor(s.Language)
}

var languageColors = map[string]string{
	"jsx":        "bg-blue-500",
	"tsx":        "bg-blue-600",
	"javascript": "bg-yellow-500",
	"typescript": "bg-blue-400",
	"css":        "bg-pink-500",
	"html":       "bg-orange-500",
	"json":       "bg-green-500",
	"go":         "bg-cyan-600",
	"templ":      "bg-teal-500",
}

// BadgeColor maps a language to its badge class, falling back to gray.
func BadgeColor(language string) string {
	if c, ok := languageColors[strings.ToLower(language)]; ok {
		return c
	}
	return "bg-gray-500"
}

type file struct {
	Example  string    `yaml:"example"`
	Snippets []Snippet `yaml:"snippets"`
}

// Parse decodes one catalog file.
func Parse(data []byte) ([]Snippet, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode snippet file: %w", err)
	}
	if f.Example == "" {
		return nil, fmt.Errorf("%w: missing example", ErrInvalidSnippet)
	}
	out := make([]Snippet, 0, len(f.Snippets))
	for i, s := range f.Snippets {
		s.Example = f.Example
		switch {
		case s.Kind == "":
			return nil, fmt.Errorf("%w: %s entry %d: missing kind", ErrInvalidSnippet, f.Example, i)
		case s.FileName == "":
			return nil, fmt.Errorf("%w: %s: missing file_name", ErrInvalidSnippet, s.ID())
		case s.Code == "":
			return nil, fmt.Errorf("%w: %s: empty code", ErrInvalidSnippet, s.ID())
		}
		out = append(out, s)
	}
	return out, nil
}

// Catalog is an immutable index of snippets.
type Catalog struct {
	byID      map[string]Snippet
	byExample map[string][]Snippet
}

// Load parses every file in fsys matching pattern.
func Load(fsys fs.FS, pattern string) (*Catalog, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoFiles, pattern)
	}

	var all []Snippet
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		snippets, err := Parse(data)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("parse %s", name), err)
		}
		all = append(all, snippets...)
	}
	return New(all...)
}

// MustLoad is like Load but panics on error. Intended for embedded catalogs.
func MustLoad(fsys fs.FS, pattern string) *Catalog {
	c, err := Load(fsys, pattern)
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a catalog from snippets. Order within an example is kept.
func New(snippets ...Snippet) (*Catalog, error) {
	c := &Catalog{
		byID:      make(map[string]Snippet, len(snippets)),
		byExample: make(map[string][]Snippet),
	}
	for _, s := range snippets {
		if _, ok := c.byID[s.ID()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSnippet, s.ID())
		}
		c.byID[s.ID()] = s
		c.byExample[s.Example] = append(c.byExample[s.Example], s)
	}
	return c, nil
}

// Get returns the snippet of the given example and kind.
func (c *Catalog) Get(example, kind string) (Snippet, error) {
	s, ok := c.byID[example+"/"+kind]
	if !ok {
		return Snippet{}, fmt.Errorf("%w: %s/%s", ErrNotFound, example, kind)
	}
	return s, nil
}

// ForExample returns the snippets of example in file order.
func (c *Catalog) ForExample(example string) []Snippet {
	return c.byExample[example]
}

// Len returns the number of snippets.
func (c *Catalog) Len() int {
	return len(c.byID)
}
