package middleware

import (
	"log/slog"
	"net/http"

	"github.com/Render-Screenshot/rs-go/internal/xcontext"
	"github.com/Render-Screenshot/rs-go/internal/xslog"
)

// Logger puts base, tagged with the request id and client address, into the
// request context. Place it after RequestID.
func Logger(base *slog.Logger) Middleware {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attrs := []slog.Attr{xslog.RequestIP(r)}
			if id, ok := xcontext.GetRequestID(r.Context()); ok {
				attrs = append(attrs, xslog.RequestID(id))
			}
			ctx := xslog.WithAttrs(xslog.WithLogger(r.Context(), base), attrs...)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
