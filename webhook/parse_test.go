package webhook

import (
	"errors"
	"testing"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func TestParseMatchesParseMap(t *testing.T) {
	t.Parallel()

	payloads := map[string]string{
		"completed": `{"id":"evt_1","event":"screenshot.completed","timestamp":"2025-01-01T00:00:00Z","data":{"url":"https://example.com","screenshot_url":"https://cdn/x.png","width":1280,"height":720,"format":"webp","size":48213,"cached":false}}`,
		"failed":    `{"id":"evt_2","event":"screenshot.failed","timestamp":"2025-01-01T00:00:00.250+02:00","data":{"url":"https://example.com","error":"navigation timeout"}}`,
		"batch":     `{"id":"evt_3","event":"batch.completed","timestamp":"2025-01-01T00:00:00Z","data":{"batch_id":"batch_9","total":3}}`,
		"unknown":   `{"id":"evt_4","event":"account.updated","timestamp":"2025-01-01T00:00:00Z","data":{"plan":"pro"}}`,
		"sparse":    `{"event":"screenshot.completed"}`,
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fromJSON, err := Parse([]byte(payload), WithClock(fixedClock()))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			var decoded map[string]any
			if err := go_json.Unmarshal([]byte(payload), &decoded); err != nil {
				t.Fatalf("failed to decode payload: %v", err)
			}
			fromMap, err := ParseMap(decoded, WithClock(fixedClock()))
			if err != nil {
				t.Fatalf("ParseMap() error = %v", err)
			}

			if diff := cmp.Diff(fromJSON, fromMap); diff != "" {
				t.Errorf("Parse and ParseMap disagree (-json +map):\n%s", diff)
			}
		})
	}
}

func TestParseResilience(t *testing.T) {
	t.Parallel()

	for _, payload := range []string{``, `{`, `{"id":"evt_1",`, `null`, `[1,2]`, `"text"`, `not json`} {
		t.Run(payload, func(t *testing.T) {
			t.Parallel()

			got, err := Parse([]byte(payload), WithClock(fixedClock()))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got.ID != "" {
				t.Errorf("ID = %q, want empty", got.ID)
			}
			if got.Type != DefaultEventType {
				t.Errorf("Type = %q, want %q", got.Type, DefaultEventType)
			}
			if !got.Timestamp.Equal(testNow) {
				t.Errorf("Timestamp = %v, want %v", got.Timestamp, testNow)
			}
		})
	}
}

func TestParseShaping(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		payload map[string]any
		want    Event
	}{
		{
			name: "completed with defaults",
			payload: map[string]any{
				"id":        "evt_1",
				"event":     "screenshot.completed",
				"timestamp": "2025-01-01T00:00:00Z",
				"data": map[string]any{
					"screenshot_url": "https://cdn/x.png",
					"width":          10,
					"height":         20,
					"cached":         true,
				},
			},
			want: Event{
				ID:        "evt_1",
				Type:      EventScreenshotCompleted,
				Timestamp: ts,
				Data: Data{
					Response: &ScreenshotResponse{
						URL:    "https://cdn/x.png",
						Width:  10,
						Height: 20,
						Format: "png",
						Size:   0,
						Cached: true,
					},
					Raw: map[string]any{
						"screenshot_url": "https://cdn/x.png",
						"width":          10,
						"height":         20,
						"cached":         true,
					},
				},
			},
		},
		{
			name: "completed with image_url and string numbers",
			payload: map[string]any{
				"event":     "screenshot.completed",
				"timestamp": "2025-01-01T00:00:00",
				"data": map[string]any{
					"url":       "https://example.com",
					"image_url": "https://cdn/y.jpeg",
					"width":     "800",
					"height":    600.0,
					"format":    "jpeg",
					"size":      "1024",
				},
			},
			want: Event{
				Type:      EventScreenshotCompleted,
				Timestamp: ts,
				Data: Data{
					Response: &ScreenshotResponse{
						URL:    "https://cdn/y.jpeg",
						Width:  800,
						Height: 600,
						Format: "jpeg",
						Size:   1024,
					},
					URL: "https://example.com",
					Raw: map[string]any{
						"url":       "https://example.com",
						"image_url": "https://cdn/y.jpeg",
						"width":     "800",
						"height":    600.0,
						"format":    "jpeg",
						"size":      "1024",
					},
				},
			},
		},
		{
			name: "failed reads message fallback",
			payload: map[string]any{
				"id":        "evt_2",
				"event":     "screenshot.failed",
				"timestamp": "2025-01-01T00:00:00Z",
				"data":      map[string]any{"url": "https://example.com", "message": "dns lookup failed"},
			},
			want: Event{
				ID:        "evt_2",
				Type:      EventScreenshotFailed,
				Timestamp: ts,
				Data: Data{
					Error: &EventError{Code: ErrorCodeRenderFailed, Message: "dns lookup failed"},
					URL:   "https://example.com",
					Raw:   map[string]any{"url": "https://example.com", "message": "dns lookup failed"},
				},
			},
		},
		{
			name: "batch failed falls back to id",
			payload: map[string]any{
				"event":     "batch.failed",
				"timestamp": "2025-01-01T00:00:00Z",
				"data":      map[string]any{"id": "batch_7"},
			},
			want: Event{
				Type:      EventBatchFailed,
				Timestamp: ts,
				Data: Data{
					BatchID: "batch_7",
					Raw:     map[string]any{"id": "batch_7"},
				},
			},
		},
		{
			name: "unknown type is passed through",
			payload: map[string]any{
				"id":        "evt_5",
				"event":     "account.updated",
				"timestamp": "2025-01-01T00:00:00Z",
				"data":      map[string]any{"plan": "pro"},
			},
			want: Event{
				ID:        "evt_5",
				Type:      EventType("account.updated"),
				Timestamp: ts,
				Data:      Data{Raw: map[string]any{"plan": "pro"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMap(tt.payload, WithClock(fixedClock()))
			if err != nil {
				t.Fatalf("ParseMap() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseMap() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseMapDoesNotAlias(t *testing.T) {
	t.Parallel()

	data := map[string]any{"batch_id": "batch_1"}
	in := map[string]any{"event": "batch.completed", "data": data}

	got, err := ParseMap(in)
	if err != nil {
		t.Fatalf("ParseMap() error = %v", err)
	}
	got.Data.Raw["batch_id"] = "changed"

	if data["batch_id"] != "batch_1" {
		t.Errorf("caller's map was modified: %v", data)
	}
}

func TestParseTimestamps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-01-01T12:30:00Z", time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"2025-01-01T12:30:00.123456Z", time.Date(2025, 1, 1, 12, 30, 0, 123456000, time.UTC)},
		{"2025-01-01T14:30:00+02:00", time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"2025-01-01T14:30:00+0200", time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"2025-01-01T12:30:00", time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"2025-01-01 12:30:00", time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"2025-01-01T12:30Z", time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"2025-01-01T14:30+02:00", time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"2025-01-01T12:30", time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)},
		{"2025-01-01", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := parseTimestamp(tt.in)
			if !ok {
				t.Fatalf("parseTimestamp(%q) failed", tt.in)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{name: "malformed json", payload: `{"id":`, wantErr: ErrMalformedPayload},
		{name: "not an object", payload: `[]`, wantErr: ErrMalformedPayload},
		{name: "null", payload: `null`, wantErr: ErrMalformedPayload},
		{name: "missing timestamp", payload: `{"event":"screenshot.completed"}`, wantErr: ErrInvalidTimestamp},
		{name: "bad timestamp", payload: `{"event":"screenshot.completed","timestamp":"yesterday"}`, wantErr: ErrInvalidTimestamp},
		{name: "missing event", payload: `{"timestamp":"2025-01-01T00:00:00Z"}`, wantErr: ErrMissingEventType},
		{name: "valid", payload: `{"event":"batch.completed","timestamp":"2025-01-01T00:00:00Z","data":{"batch_id":"b"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.payload), WithStrict())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseMapStrictNil(t *testing.T) {
	t.Parallel()

	if _, err := ParseMap(nil, WithStrict()); !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("ParseMap(nil) error = %v, want %v", err, ErrMalformedPayload)
	}
	if _, err := ParseMap(nil); err != nil {
		t.Errorf("ParseMap(nil) lenient error = %v", err)
	}
}
