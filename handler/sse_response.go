package handler

import (
	"net/http"
)

// SSEHandler runs for the lifetime of an event stream. The stream closes when
// it returns.
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

// Render opens the stream and runs the handler. Non-Datastar requests are
// rejected with 400 before anything is written.
func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "datastar_required")
	}
	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE creates a streaming response.
//
//	return handler.SSE(func(stream handler.StreamContext) error {
//		return stream.SendSignal("saving", true)
//	})
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
