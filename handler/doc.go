// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value filled by binders and
// returns a Response. Responses render either plain HTML/JSON or, when the
// request comes from Datastar, a stream of server-sent events that patch
// elements and signals in the browser:
//
//	h := handler.HandlerFunc[handler.Context, SearchRequest](
//		func(ctx handler.Context, req SearchRequest) handler.Response {
//			return handler.Templ(views.Results(req.Query), handler.WithTarget("#results"))
//		},
//	)
//	r.Post("/search", handler.Wrap(h, handler.WithBinders[handler.Context, SearchRequest](
//		handler.BindSignals(),
//		handler.BindForm(),
//	)))
//
// Errors returned by binders or by Render go through the ErrorHandler.
// NewErrorHandler renders an error page for regular requests and a toast for
// Datastar requests.
package handler
