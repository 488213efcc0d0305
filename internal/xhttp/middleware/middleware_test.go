package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	go_json "github.com/goccy/go-json"

	"github.com/Render-Screenshot/rs-go/internal/xcontext"
	"github.com/Render-Screenshot/rs-go/internal/xhttp"
)

func TestChainOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mark("first"), mark("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

	want := "first,second,handler"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("order = %q, want %q", got, want)
	}

	order = nil
	mws := []Middleware{mark("a"), mark("b")}
	_ = Chain(http.NotFoundHandler(), mws...)
	mws[0](http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if got := strings.Join(order, ","); got != "a" {
		t.Errorf("caller's slice was reordered: first middleware ran %q", got)
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		opts     []RequestIDOption
		want     string
	}{
		{name: "reuses incoming", incoming: "req_123", want: "req_123"},
		{name: "custom generator", opts: []RequestIDOption{WithIDFunc(func(*http.Request) string { return "fixed" })}, want: "fixed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			h := RequestID(tt.opts...)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seen, _ = xcontext.GetRequestID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(xhttp.XRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if seen != tt.want {
				t.Errorf("context request id = %q, want %q", seen, tt.want)
			}
			if got := rec.Header().Get(xhttp.XRequestID); got != tt.want {
				t.Errorf("%s = %q, want %q", xhttp.XRequestID, got, tt.want)
			}
		})
	}
}

func TestRequestIDGenerated(t *testing.T) {
	t.Parallel()

	h := RequestID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	if got := rec.Header().Get(xhttp.XRequestID); len(got) != 36 {
		t.Errorf("generated request id = %q, want a uuid", got)
	}
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Chain(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }),
		Logger(logger),
		Recovery,
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/hooks", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	var body map[string]string
	if err := go_json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["code"] != "internal_error" {
		t.Errorf("code = %q, want internal_error", body["code"])
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Errorf("log output missing panic entry: %s", buf.String())
	}
}

func TestLoggingLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   string
	}{
		{http.StatusOK, `"level":"INFO"`},
		{http.StatusUnauthorized, `"level":"WARN"`},
		{http.StatusInternalServerError, `"level":"ERROR"`},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			h := Chain(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(tt.status) }),
				RequestID(),
				Logger(logger),
				Logging,
			)
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/hooks", nil))

			out := buf.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("log = %s, want it to contain %s", out, tt.want)
			}
			if !strings.Contains(out, `"request_id"`) {
				t.Errorf("log = %s, want a request_id attribute", out)
			}
		})
	}
}

func TestLoggingRecordsImplicitStatusAndSize(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("hello")) }),
		Logger(slog.New(slog.NewJSONHandler(&buf, nil))),
		Logging,
	)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/hooks", nil))

	var entry struct {
		Response struct {
			Status int `json:"status"`
			Bytes  int `json:"bytes"`
		} `json:"response"`
	}
	if err := go_json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry.Response.Status != http.StatusOK || entry.Response.Bytes != 5 {
		t.Errorf("response = %+v, want status 200 and 5 bytes", entry.Response)
	}
}

func TestRecoveryRepanicsAbortHandler(t *testing.T) {
	t.Parallel()

	h := Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(http.ErrAbortHandler) }))

	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", v)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/hooks", nil))
	t.Error("ServeHTTP returned without panicking")
}
