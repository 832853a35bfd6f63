package snippet

import "errors"

var (
	ErrNotFound         = errors.New("snippet not found")
	ErrInvalidSnippet   = errors.New("invalid snippet")
	ErrDuplicateSnippet = errors.New("duplicate snippet")
	ErrNoFiles          = errors.New("no snippet files matched")
)
