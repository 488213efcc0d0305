package webhook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Render-Screenshot/rs-go/apierr"
	"github.com/Render-Screenshot/rs-go/internal/xcontext"
	"github.com/Render-Screenshot/rs-go/internal/xhttp"
	"github.com/Render-Screenshot/rs-go/internal/xslog"
)

// MaxBodyBytes caps the size of a delivery read by VerifyRequest and Handler.
const MaxBodyBytes = 1 << 20

var ErrBodyTooLarge = errors.New("webhook body too large")

// HandlerFunc receives each verified and parsed event. A non-nil error makes
// Handler answer 500 so the sender retries the delivery.
type HandlerFunc func(ctx context.Context, event Event) error

// VerifyRequest reads r.Body and verifies it against the signature headers.
// The body is returned even when verification fails; err is set only when
// the body could not be read.
func VerifyRequest(r *http.Request, secret string, opts ...Option) ([]byte, bool, error) {
	body, err := readBody(r)
	if err != nil {
		return nil, false, err
	}
	h := HeadersFromHTTP(r.Header)
	return body, Verify(body, h.Signature, h.Timestamp, secret, opts...), nil
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read webhook body: %w", err)
	}
	if len(body) > MaxBodyBytes {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}

// Handler returns an http.Handler that verifies, parses and dispatches
// deliveries to fn. Options apply to both verification and parsing.
func Handler(secret string, fn HandlerFunc, opts ...Option) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := xslog.FromContext(ctx)

		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			xhttp.WriteError(w, apierr.InvalidRequest(
				apierr.WithStatus(http.StatusMethodNotAllowed),
				apierr.WithMessage("method not allowed"),
			))
			return
		}

		body, ok, err := VerifyRequest(r, secret, opts...)
		if err != nil {
			logger.WarnContext(ctx, "failed to read webhook body", xslog.Error(err))
			status := http.StatusBadRequest
			if errors.Is(err, ErrBodyTooLarge) {
				status = http.StatusRequestEntityTooLarge
			}
			xhttp.WriteError(w, apierr.InvalidRequest(apierr.WithStatus(status), apierr.WithMessage(err.Error())))
			return
		}
		if !ok {
			logger.WarnContext(ctx, "rejected webhook with invalid signature", xslog.RequestIP(r))
			xhttp.WriteError(w, apierr.Unauthorized(apierr.WithMessage("invalid webhook signature")))
			return
		}

		event, err := Parse(body, opts...)
		if err != nil {
			logger.WarnContext(ctx, "failed to parse webhook", xslog.Error(err))
			xhttp.WriteError(w, apierr.InvalidRequest(apierr.WithMessage(err.Error())))
			return
		}

		ctx = xcontext.SetDeliveryID(ctx, event.ID)
		ctx = xslog.WithAttrs(ctx, xslog.EventID(event.ID), xslog.EventType(string(event.Type)))
		if err := fn(ctx, event); err != nil {
			xslog.FromContext(ctx).ErrorContext(ctx, "webhook callback failed", xslog.Error(err))
			xhttp.WriteError(w, apierr.Internal(apierr.WithMessage("webhook callback failed"), apierr.WithCause(err)))
			return
		}

		xslog.FromContext(ctx).DebugContext(ctx, "webhook handled")
		xhttp.WriteOK(w, map[string]bool{"received": true})
	})
}
