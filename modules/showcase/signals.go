package showcase

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/dmitrymomot/smartform/pkg/form"
	"github.com/dmitrymomot/smartform/pkg/validation"
)

// FormSignals is the client-side state of one form, stored by Datastar under
// the example key.
type FormSignals struct {
	Values  validation.Values `json:"values"`
	Touched map[string]bool   `json:"touched"`
	Invalid map[string]bool   `json:"invalid"`
}

// SignalsFor renders snap as signals. Every field gets an explicit entry so
// that a patch also clears flags on the client.
func SignalsFor(e *Example, snap form.Snapshot) FormSignals {
	s := FormSignals{
		Values:  make(validation.Values, len(e.Fields)),
		Touched: make(map[string]bool, len(e.Fields)),
		Invalid: make(map[string]bool, len(e.Fields)),
	}
	for _, f := range e.Fields {
		st := snap.Field(f.Name)
		s.Values[f.Name] = st.Value
		s.Touched[f.Name] = st.Touched
		s.Invalid[f.Name] = st.ShowError()
	}
	return s
}

// Patch returns the signal patch for the example namespace.
func (s FormSignals) Patch(e *Example) map[string]any {
	return map[string]any{e.Key: s}
}

// formRequest is bound from the route, from Datastar signals or from a plain
// form post.
type formRequest struct {
	Slug  string
	Field string

	signals map[string]json.RawMessage
	posted  url.Values
}

func (r *formRequest) BindPath(param func(string) string) error {
	r.Slug = param("slug")
	r.Field = param("field")
	return nil
}

func (r *formRequest) BindForm(values url.Values) error {
	r.posted = values
	return nil
}

func (r *formRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.signals)
}

// state extracts the values and touched flags of e from the request.
// A plain post counts every posted field as touched.
func (r *formRequest) state(e *Example) (validation.Values, map[string]bool, error) {
	if r.posted != nil {
		values := make(validation.Values, len(e.Fields))
		touched := make(map[string]bool, len(e.Fields))
		for _, f := range e.Fields {
			if _, ok := r.posted[f.Name]; ok {
				values[f.Name] = r.posted.Get(f.Name)
				touched[f.Name] = true
			}
		}
		return values, touched, nil
	}

	raw, ok := r.signals[e.Key]
	if !ok {
		return validation.Values{}, map[string]bool{}, nil
	}
	var s FormSignals
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, nil, fmt.Errorf("decode %s signals: %w", e.Key, err)
	}
	values := make(validation.Values, len(e.Fields))
	for _, f := range e.Fields {
		if v, ok := s.Values[f.Name]; ok {
			values[f.Name] = v
		}
	}
	return values, s.Touched, nil
}

// apiRequest is the body of the JSON validation endpoint: a flat object of
// field values.
type apiRequest struct {
	Slug   string
	Values validation.Values
}

func (r *apiRequest) BindPath(param func(string) string) error {
	r.Slug = param("slug")
	return nil
}

func (r *apiRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Values)
}

type downloadRequest struct {
	Slug string
	Kind string
}

func (r *downloadRequest) BindPath(param func(string) string) error {
	r.Slug = param("slug")
	r.Kind = param("kind")
	return nil
}

// Flags returns a patch with the touched and invalid flags only. Values are
// left alone so that a late response cannot overwrite newer input.
func (s FormSignals) Flags(e *Example) map[string]any {
	return map[string]any{e.Key: map[string]any{
		"touched": s.Touched,
		"invalid": s.Invalid,
	}}
}
