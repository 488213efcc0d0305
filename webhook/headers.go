package webhook

import (
	"maps"
	"net/http"
	"slices"
	"strings"
)

const (
	HeaderSignature = "X-Webhook-Signature"
	HeaderTimestamp = "X-Webhook-Timestamp"
)

type Headers struct {
	Signature string
	Timestamp string
}

// HeadersFromHTTP extracts the signature headers from h, including entries
// that were stored under non-canonical keys.
func HeadersFromHTTP(h http.Header) Headers {
	m := make(map[string]any, len(h))
	for k, v := range h {
		m[k] = v
	}
	return HeadersFromMap(m)
}

// HeadersFromMap extracts the signature headers from a loosely typed header
// map such as one handed over by a framework or a serverless runtime. Keys
// may use the canonical form, lowercase, or the CGI server-variable form
// (HTTP_X_WEBHOOK_SIGNATURE); values may be strings or single-element lists.
func HeadersFromMap(m map[string]any) Headers {
	return Headers{
		Signature: lookupHeader(m, HeaderSignature),
		Timestamp: lookupHeader(m, HeaderTimestamp),
	}
}

func lookupHeader(m map[string]any, name string) string {
	candidates := []string{
		name,
		strings.ToLower(name),
		serverVariable(name),
	}
	for _, key := range candidates {
		if v, ok := m[key]; ok {
			if s := headerValue(v); s != "" {
				return s
			}
		}
	}

	want := normalizeHeaderKey(name)
	for _, key := range slices.Sorted(maps.Keys(m)) {
		if normalizeHeaderKey(key) == want {
			if s := headerValue(m[key]); s != "" {
				return s
			}
		}
	}
	return ""
}

// serverVariable turns X-Webhook-Signature into HTTP_X_WEBHOOK_SIGNATURE.
func serverVariable(name string) string {
	return "HTTP_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func normalizeHeaderKey(key string) string {
	key = strings.ToLower(strings.ReplaceAll(key, "_", "-"))
	return strings.TrimPrefix(key, "http-")
}

func headerValue(v any) string {
	switch v := v.(type) {
	case string:
		return strings.TrimSpace(v)
	case []string:
		if len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}
