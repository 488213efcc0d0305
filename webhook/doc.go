// Package webhook verifies and parses RenderScreenshot webhook deliveries.
//
// Every delivery carries two headers:
//
//	X-Webhook-Signature: sha256=<hex>
//	X-Webhook-Timestamp: <unix seconds>
//
// The signature is the lowercase hex HMAC-SHA256 of "{timestamp}.{body}"
// keyed by the webhook secret. [Verify] recomputes it, compares in constant
// time and rejects timestamps outside the tolerance window in either
// direction, which bounds how long a captured delivery can be replayed.
// Verification keeps no state; deduplicating deliveries by event id is left
// to the caller.
//
// [Parse] never fails on malformed input unless [WithStrict] is given.
//
//	http.Handle("/hooks/screenshots", webhook.Handler(secret, func(ctx context.Context, e webhook.Event) error {
//		if e.Type == webhook.EventScreenshotCompleted {
//			log.Println(e.Data.Response.URL)
//		}
//		return nil
//	}))
package webhook
