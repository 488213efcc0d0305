package middleware

import (
	"errors"
	"net/http"

	"github.com/Render-Screenshot/rs-go/apierr"
	"github.com/Render-Screenshot/rs-go/internal/xhttp"
	"github.com/Render-Screenshot/rs-go/internal/xslog"
)

// Recovery turns a handler panic into a logged 500 with an internal_error
// body. http.ErrAbortHandler is re-raised so the server can drop the
// connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(v)
			}
			ctx := r.Context()
			xslog.FromContext(ctx).ErrorContext(ctx, "panic recovered",
				xslog.RequestGroup(r),
				xslog.ErrorGroupWithStack(v),
			)
			xhttp.WriteError(w, apierr.Internal())
		}()
		next.ServeHTTP(w, r)
	})
}
