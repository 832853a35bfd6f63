package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/smartform/handler"
)

type greetRequest struct {
	Name string `json:"name"`
	Slug string `json:"-"`
}

func (g *greetRequest) BindForm(values url.Values) error {
	g.Name = values.Get("name")
	return nil
}

func (g *greetRequest) BindPath(param func(string) string) error {
	g.Slug = param("slug")
	return nil
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func greet(ctx handler.Context, req greetRequest) handler.Response {
	return handler.Templ(text("<p id=\"greeting\">hello " + req.Name + " from " + req.Slug + "</p>"))
}

func router(h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Post("/greet/{slug}", h)
	return r
}

func allBinders() handler.WrapOption[handler.Context, greetRequest] {
	return handler.WithBinders[handler.Context, greetRequest](
		handler.BindPath(),
		handler.BindSignals(),
		handler.BindJSON(),
		handler.BindForm(),
	)
}

func TestWrap_Binders(t *testing.T) {
	t.Parallel()

	h := router(handler.Wrap(greet, allBinders()))

	t.Run("form", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/greet/home", strings.NewReader("name=Ann"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "hello Ann from home")
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/greet/api", strings.NewReader(`{"name":"Bob"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Contains(t, rec.Body.String(), "hello Bob from api")
	})

	t.Run("datastar signals", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/greet/live", strings.NewReader(`{"name":"Cy"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(handler.DataStarHeader, "true")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		body := rec.Body.String()
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "hello Cy from live")
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/greet/api", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWrap_UnsupportedBindTarget(t *testing.T) {
	t.Parallel()

	type plain struct{}
	var got error
	h := handler.Wrap(
		func(handler.Context, plain) handler.Response { return handler.JSON(nil) },
		handler.WithBinders[handler.Context, plain](handler.BindForm()),
		handler.WithErrorHandler[handler.Context, plain](func(_ handler.Context, err error) { got = err }),
	)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("a=b"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.ErrorIs(t, got, handler.ErrUnsupportedBindTarget)
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(handler.Context, struct{}) handler.Response { return nil })
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWrap_Decorators(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(
		func(handler.Context, struct{}) handler.Response {
			order = append(order, "handler")
			return handler.JSON("ok")
		},
		handler.WithDecorators(mark("outer"), mark("inner")),
	)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestWrap_HTTPErrorFromRender(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrNotFound)
	})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		query   string
		want    bool
	}{
		{name: "request header", headers: map[string]string{handler.DataStarHeader: "true"}, want: true},
		{name: "accept header", headers: map[string]string{"Accept": "text/html, text/event-stream"}, want: true},
		{name: "query param", query: "?datastar=%7B%7D", want: true},
		{name: "regular", headers: map[string]string{"Accept": "text/html"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, handler.IsDataStar(req))
		})
	}
}

func TestContext_SSE(t *testing.T) {
	t.Parallel()

	plain := handler.NewContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Nil(t, plain.SSE())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(handler.DataStarHeader, "true")
	ds := handler.NewContext(httptest.NewRecorder(), req)
	first := ds.SSE()
	require.NotNil(t, first)
	assert.Same(t, first, ds.SSE())
}

func TestContext_Value(t *testing.T) {
	t.Parallel()

	type key struct{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), key{}, "v"))
	ctx := handler.NewContext(httptest.NewRecorder(), req)

	assert.Equal(t, "v", ctx.Value(key{}))
	assert.NoError(t, ctx.Err())
	assert.Same(t, req, ctx.Request())
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	err := handler.NewHTTPError(http.StatusTeapot, "teapot")
	assert.Equal(t, "teapot", err.Error())

	var target handler.HTTPError
	require.True(t, errors.As(errors.Join(errors.New("ctx"), err), &target))
	assert.Equal(t, http.StatusTeapot, target.Code)
}
