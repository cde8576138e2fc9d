package analyses

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrNoReadableText = errors.New("no readable text")
	ErrInvalidInput   = errors.New("invalid input")
)
