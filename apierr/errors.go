// Package apierr maps RenderScreenshot API failures onto a closed set of
// error codes. Codes the server sends that are not listed here are kept
// verbatim.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

type Code string

const (
	CodeInvalidURL     Code = "invalid_url"
	CodeInvalidRequest Code = "invalid_request"
	CodeUnauthorized   Code = "unauthorized"
	CodeForbidden      Code = "forbidden"
	CodeNotFound       Code = "not_found"
	CodeRateLimited    Code = "rate_limited"
	CodeTimeout        Code = "timeout"
	CodeRenderFailed   Code = "render_failed"
	CodeInternal       Code = "internal_error"
)

// Retryable reports whether a request that failed with c may succeed when
// repeated after a backoff.
func (c Code) Retryable() bool {
	switch c {
	case CodeRateLimited, CodeTimeout, CodeRenderFailed, CodeInternal:
		return true
	default:
		return false
	}
}

type Error struct {
	StatusCode int
	Code       Code
	Message    string
	Retryable  bool
	// RetryAfter is the server's requested wait; zero when none was sent.
	RetryAfter time.Duration
	Cause      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("renderscreenshot: %d %s: %s", e.StatusCode, e.Code, e.Message)
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

type Option func(*Error)

func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }
func WithCause(err error) Option    { return func(e *Error) { e.Cause = err } }
func WithStatus(status int) Option  { return func(e *Error) { e.StatusCode = status } }

func WithRetryAfter(d time.Duration) Option {
	return func(e *Error) { e.RetryAfter = d }
}

type preset struct {
	status  int
	message string
}

var presets = map[Code]preset{
	CodeInvalidURL:     {http.StatusBadRequest, "invalid url"},
	CodeInvalidRequest: {http.StatusBadRequest, "invalid request"},
	CodeUnauthorized:   {http.StatusUnauthorized, "invalid or missing api key"},
	CodeForbidden:      {http.StatusForbidden, "forbidden"},
	CodeNotFound:       {http.StatusNotFound, "not found"},
	CodeRateLimited:    {http.StatusTooManyRequests, "rate limit exceeded"},
	CodeTimeout:        {http.StatusRequestTimeout, "screenshot timed out"},
	CodeRenderFailed:   {http.StatusUnprocessableEntity, "screenshot rendering failed"},
	CodeInternal:       {http.StatusInternalServerError, "internal server error"},
}

func InvalidURL(opts ...Option) *Error     { return newErr(CodeInvalidURL, opts) }
func InvalidRequest(opts ...Option) *Error { return newErr(CodeInvalidRequest, opts) }
func Unauthorized(opts ...Option) *Error   { return newErr(CodeUnauthorized, opts) }
func Forbidden(opts ...Option) *Error      { return newErr(CodeForbidden, opts) }
func NotFound(opts ...Option) *Error       { return newErr(CodeNotFound, opts) }
func RateLimited(opts ...Option) *Error    { return newErr(CodeRateLimited, opts) }
func Timeout(opts ...Option) *Error        { return newErr(CodeTimeout, opts) }
func RenderFailed(opts ...Option) *Error   { return newErr(CodeRenderFailed, opts) }
func Internal(opts ...Option) *Error       { return newErr(CodeInternal, opts) }

func newErr(code Code, opts []Option) *Error {
	p := presets[code]
	e := &Error{
		StatusCode: p.status,
		Code:       code,
		Message:    p.message,
		Retryable:  code.Retryable(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StatusFor returns the HTTP status a code is normally sent with, or 500 for
// codes outside the closed set.
func StatusFor(code Code) int {
	if p, ok := presets[code]; ok {
		return p.status
	}
	return http.StatusInternalServerError
}

func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// HasCode reports whether err wraps an *Error with the given code.
func HasCode(err error, code Code) bool {
	e := As(err)
	return e != nil && e.Code == code
}

// IsRetryable reports whether err wraps a retryable *Error.
func IsRetryable(err error) bool {
	e := As(err)
	return e != nil && e.Retryable
}
