package xhttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Render-Screenshot/rs-go/internal/version"
)

func TestTransportSetsHeaders(t *testing.T) {
	t.Parallel()

	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	client := &http.Client{Transport: NewTransport(nil)}
	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	_ = resp.Body.Close()

	if ua := got.Get(UserAgent); ua != version.UserAgent() {
		t.Errorf("User-Agent = %q, want %q", ua, version.UserAgent())
	}
	if v := got.Get(version.Header); v != version.Get() {
		t.Errorf("%s = %q, want %q", version.Header, v, version.Get())
	}
	if req.Header.Get(UserAgent) != "" {
		t.Error("transport mutated the caller's request")
	}
}
