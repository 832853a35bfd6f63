package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"
)

// MaxBodyBytes limits request bodies read by the JSON and form binders.
const MaxBodyBytes = 1 << 20

// FormBinder is implemented by request types that accept url-encoded forms.
type FormBinder interface {
	BindForm(values url.Values) error
}

// PathBinder is implemented by request types that read route parameters.
type PathBinder interface {
	BindPath(param func(name string) string) error
}

// BindSignals decodes Datastar signals into v. Non-Datastar requests are
// skipped.
func BindSignals() Bind {
	return func(r *http.Request, v any) error {
		if !IsDataStar(r) {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return errors.Join(ErrBadRequest, fmt.Errorf("read signals: %w", err))
		}
		return nil
	}
}

// BindJSON decodes an application/json body into v.
func BindJSON() Bind {
	return func(r *http.Request, v any) error {
		if IsDataStar(r) || mediaType(r) != "application/json" {
			return ErrBinderNotApplicable
		}
		dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBodyBytes))
		if err := dec.Decode(v); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				return ErrRequestTooLarge
			}
			return errors.Join(ErrBadRequest, fmt.Errorf("decode json: %w", err))
		}
		return nil
	}
}

// BindForm passes url-encoded or multipart form values to a FormBinder.
func BindForm() Bind {
	return func(r *http.Request, v any) error {
		mt := mediaType(r)
		if mt != "application/x-www-form-urlencoded" && mt != "multipart/form-data" {
			return ErrBinderNotApplicable
		}
		fb, ok := v.(FormBinder)
		if !ok {
			return fmt.Errorf("%w: %T is not a FormBinder", ErrUnsupportedBindTarget, v)
		}
		r.Body = http.MaxBytesReader(nil, r.Body, MaxBodyBytes)
		var err error
		if mt == "multipart/form-data" {
			err = r.ParseMultipartForm(MaxBodyBytes)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			return errors.Join(ErrBadRequest, fmt.Errorf("parse form: %w", err))
		}
		return fb.BindForm(r.PostForm)
	}
}

// BindPath passes chi route parameters to a PathBinder.
func BindPath() Bind {
	return func(r *http.Request, v any) error {
		pb, ok := v.(PathBinder)
		if !ok {
			return fmt.Errorf("%w: %T is not a PathBinder", ErrUnsupportedBindTarget, v)
		}
		return pb.BindPath(func(name string) string {
			return chi.URLParam(r, name)
		})
	}
}

func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return mt
}
