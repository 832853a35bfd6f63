package handler

import "errors"

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response.
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrSSENotInitialized indicates a stream was requested for a non-Datastar request.
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
	// ErrBinderNotApplicable is returned by binders that do not handle the request.
	ErrBinderNotApplicable = errors.New("binder not applicable")
	// ErrUnsupportedBindTarget is returned when the request value lacks the binding method.
	ErrUnsupportedBindTarget = errors.New("bind target does not implement binder interface")
)
