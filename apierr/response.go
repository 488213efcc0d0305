package apierr

import (
	"bytes"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
)

const (
	unknownErrorMessage = "unknown error"
	maxErrorBodyBytes   = 64 << 10
)

// FromResponse builds an Error from a decoded API error body. The code
// defaults to internal_error; the message is taken from "message", then
// "error", then a generic text. Bodies that nest the details under an
// "error" object are unwrapped first.
func FromResponse(status int, body map[string]any, retryAfter time.Duration) *Error {
	if nested, ok := body["error"].(map[string]any); ok {
		body = nested
	}

	code := Code(stringField(body, "code"))
	if code == "" {
		code = CodeInternal
	}

	message := stringField(body, "message")
	if message == "" {
		message = stringField(body, "error")
	}
	if message == "" {
		message = unknownErrorMessage
	}

	return &Error{
		StatusCode: status,
		Code:       code,
		Message:    message,
		Retryable:  code.Retryable(),
		RetryAfter: retryAfter,
	}
}

// FromHTTPResponse reads resp.Body and builds an Error from it. When the body
// carries no code, one is inferred from the status. A non-JSON body becomes
// the message. The caller still owns closing resp.Body.
func FromHTTPResponse(resp *http.Response) *Error {
	retryAfter := ParseRetryAfter(resp.Header.Get("Retry-After"), time.Now())

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		e := FromResponse(resp.StatusCode, map[string]any{
			"code":    string(codeForStatus(resp.StatusCode)),
			"message": resp.Status,
		}, retryAfter)
		e.Cause = err
		return e
	}

	var body map[string]any
	if err := go_json.NewDecoder(bytes.NewReader(raw)).Decode(&body); err != nil || body == nil {
		body = map[string]any{}
		if text := strings.TrimSpace(string(raw)); text != "" {
			body["message"] = text
		}
	}

	target := body
	if nested, ok := body["error"].(map[string]any); ok {
		target = nested
	}
	if stringField(target, "code") == "" {
		target["code"] = string(codeForStatus(resp.StatusCode))
	}

	return FromResponse(resp.StatusCode, body, retryAfter)
}

// maxRetryAfterSeconds is the largest delay a time.Duration can hold.
const maxRetryAfterSeconds = int64(math.MaxInt64 / time.Second)

// ParseRetryAfter reads a Retry-After header given in seconds or as an HTTP
// date. It returns zero for empty or invalid values; delays too large for a
// time.Duration are capped.
func ParseRetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.ParseInt(v, 10, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		if secs < 0 {
			return 0
		}
		return time.Duration(min(secs, maxRetryAfterSeconds)) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := t.Sub(now); d > 0 {
			return d.Round(time.Second)
		}
	}
	return 0
}

func codeForStatus(status int) Code {
	switch {
	case status == http.StatusBadRequest:
		return CodeInvalidRequest
	case status == http.StatusUnauthorized:
		return CodeUnauthorized
	case status == http.StatusForbidden:
		return CodeForbidden
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusRequestTimeout, status == http.StatusGatewayTimeout:
		return CodeTimeout
	case status == http.StatusTooManyRequests:
		return CodeRateLimited
	case status == http.StatusUnprocessableEntity:
		return CodeRenderFailed
	default:
		return CodeInternal
	}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
