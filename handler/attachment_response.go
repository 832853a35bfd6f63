package handler

import (
	"mime"
	"net/http"
	"strconv"
)

type attachmentResponse struct {
	name        string
	contentType string
	data        []byte
}

func (a attachmentResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	h := w.Header()
	h.Set("Content-Type", a.contentType)
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": a.name}))
	h.Set("Content-Length", strconv.Itoa(len(a.data)))
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(a.data)
	return err
}

// Attachment sends data as a file download named name.
func Attachment(name, contentType string, data []byte) Response {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return attachmentResponse{name: name, contentType: contentType, data: data}
}
