package client

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// rsTransport paces requests. It sits under the oauth2 transport, which has
// already cloned the request and set Authorization.
type rsTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

var _ http.RoundTripper = (*rsTransport)(nil)

func (t *rsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("waiting for rate limiter: %w", err)
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
