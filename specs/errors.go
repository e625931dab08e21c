package specs

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ServerError for HTTP status mapping and logging.
type ErrorKind uint8

const (
	KindInternal ErrorKind = iota
	KindIO
	KindInvalidRequest
	KindInvalidMethod
	KindParse
	KindFileNotFound
	KindCompression
	KindConfig
)

func (kind ErrorKind) String() string {
	switch kind {
	case KindIO:
		return "io"
	case KindInvalidRequest:
		return "invalid request"
	case KindInvalidMethod:
		return "invalid method"
	case KindParse:
		return "parse"
	case KindFileNotFound:
		return "file not found"
	case KindCompression:
		return "compression"
	case KindConfig:
		return "config"
	}
	return "internal"
}

// Status maps the kind to the HTTP status code sent to the client.
func (kind ErrorKind) Status() StatusCode {
	switch kind {
	case KindFileNotFound:
		return StatusCodeNotFound
	case KindInvalidRequest, KindInvalidMethod, KindParse:
		return StatusCodeBadRequest
	}
	return StatusCodeInternalServerError
}

// NewError creates a new ServerError of the given kind with a formatted message.
func NewError(kind ErrorKind, format string, a ...any) error {
	return &ServerError{
		Kind: kind,
		Err:  fmt.Errorf(format, a...),
	}
}

// WrapError attaches a kind to an existing error.
func WrapError(kind ErrorKind, err error) error {
	return &ServerError{
		Kind: kind,
		Err:  err,
	}
}

// ServerError is the error type flowing through the request pipeline.
// Every failure the client can observe is a ServerError; its kind decides
// the response status, its message becomes the response body.
type ServerError struct {
	Kind ErrorKind
	Err  error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *ServerError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code the error maps to.
func (e *ServerError) Status() StatusCode {
	return e.Kind.Status()
}

// ErrorStatus resolves any error to a response status: ServerError by kind,
// everything else as an internal failure.
func ErrorStatus(err error) StatusCode {
	var serr *ServerError
	if errors.As(err, &serr) {
		return serr.Status()
	}
	return StatusCodeInternalServerError
}
