package xslog

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/Render-Screenshot/rs-go/internal/version"
	"github.com/Render-Screenshot/rs-go/internal/xhttp"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func Stack() slog.Attr {
	const stackKey = "stack"
	return slog.String(stackKey, string(debug.Stack()))
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Method(method string) slog.Attr {
	const methodKey = "method"
	return slog.String(methodKey, method)
}

func RequestMethod(r *http.Request) slog.Attr {
	return Method(r.Method)
}

func RequestPath(r *http.Request) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, r.URL.Path)
}

func URL(u string) slog.Attr {
	const urlKey = "url"
	return slog.String(urlKey, u)
}

func IP(ip string) slog.Attr {
	const ipKey = "ip"
	return slog.String(ipKey, ip)
}

func RequestIP(r *http.Request) slog.Attr {
	return IP(xhttp.GetRequestIP(r))
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func EventID(id string) slog.Attr {
	const eventIDKey = "event_id"
	return slog.String(eventIDKey, id)
}

func EventType(t string) slog.Attr {
	const eventTypeKey = "event_type"
	return slog.String(eventTypeKey, t)
}

func BatchID(id string) slog.Attr {
	const batchIDKey = "batch_id"
	return slog.String(batchIDKey, id)
}

func CacheKey(key string) slog.Attr {
	const cacheKeyKey = "cache_key"
	return slog.String(cacheKeyKey, key)
}

func ErrorCode(code string) slog.Attr {
	const errorCodeKey = "error_code"
	return slog.String(errorCodeKey, code)
}

func RateLimitRemaining(remaining int) slog.Attr {
	const remainingKey = "ratelimit_remaining"
	return slog.Int(remainingKey, remaining)
}
