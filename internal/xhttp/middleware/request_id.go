package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Render-Screenshot/rs-go/internal/xcontext"
	"github.com/Render-Screenshot/rs-go/internal/xhttp"
)

type RequestIDMiddleware struct {
	IDFunc func(*http.Request) string
}

type RequestIDOption func(*RequestIDMiddleware)

// WithIDFunc replaces the uuid generator.
func WithIDFunc(fn func(*http.Request) string) RequestIDOption {
	return func(m *RequestIDMiddleware) { m.IDFunc = fn }
}

// RequestID tags each request with an id, reusing an incoming X-Request-ID
// when the sender supplied one.
func RequestID(opts ...RequestIDOption) Middleware {
	middleware := &RequestIDMiddleware{
		IDFunc: func(r *http.Request) string {
			if id := r.Header.Get(xhttp.XRequestID); id != "" {
				return id
			}
			return uuid.NewString()
		},
	}

	for _, opt := range opts {
		opt(middleware)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := middleware.IDFunc(r)
			ctx := xcontext.SetRequestID(r.Context(), id)
			xhttp.SetHeaderRequestID(w, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
