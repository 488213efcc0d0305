package xhttp

import (
	"fmt"
	"net/http"

	"github.com/Render-Screenshot/rs-go/internal/version"
)

type rsTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*rsTransport)(nil)

func (t *rsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(UserAgent, version.UserAgent())
	req.Header.Set(version.Header, version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport wraps base with the standard rs-go headers. A nil base means
// http.DefaultTransport.
func NewTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &rsTransport{base: base}
}
