package webhook

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
)

var (
	ErrMalformedPayload = errors.New("malformed webhook payload")
	ErrInvalidTimestamp = errors.New("invalid webhook timestamp")
	ErrMissingEventType = errors.New("missing webhook event type")
)

const defaultFormat = "png"

// Parse decodes a raw webhook body into an Event.
//
// By default parsing is lenient and the returned error is always nil: a body
// that is not a JSON object is treated as empty, a missing or unparseable
// timestamp becomes the current time and a missing event type becomes
// DefaultEventType. WithStrict reports those cases as errors instead.
func Parse(payload []byte, opts ...Option) (Event, error) {
	cfg := newConfig(opts)

	var raw map[string]any
	if err := go_json.Unmarshal(payload, &raw); err != nil || raw == nil {
		if cfg.strict {
			if err == nil {
				err = errors.New("payload is not a JSON object")
			}
			return Event{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		raw = map[string]any{}
	}
	return parse(raw, cfg)
}

// ParseMap is Parse for a payload that has already been decoded. Decoding a
// body and passing the result here yields the same Event as Parse.
func ParseMap(payload map[string]any, opts ...Option) (Event, error) {
	cfg := newConfig(opts)
	if payload == nil {
		if cfg.strict {
			return Event{}, fmt.Errorf("%w: nil payload", ErrMalformedPayload)
		}
		payload = map[string]any{}
	}
	return parse(cloneMap(payload), cfg)
}

func parse(raw map[string]any, cfg config) (Event, error) {
	ts, ok := parseTimestamp(raw["timestamp"])
	if !ok {
		if cfg.strict {
			return Event{}, fmt.Errorf("%w: %v", ErrInvalidTimestamp, raw["timestamp"])
		}
		ts = cfg.now()
	}

	eventType := EventType(asString(raw["event"]))
	if eventType == "" {
		if cfg.strict {
			return Event{}, ErrMissingEventType
		}
		eventType = DefaultEventType
	}

	data, _ := raw["data"].(map[string]any)
	if data == nil {
		data = map[string]any{}
	}

	return Event{
		ID:        asString(raw["id"]),
		Type:      eventType,
		Timestamp: ts,
		Data:      shape(eventType, data),
	}, nil
}

func shape(eventType EventType, data map[string]any) Data {
	d := Data{Raw: data}

	switch eventType {
	case EventScreenshotCompleted:
		format := asString(data["format"])
		if format == "" {
			format = defaultFormat
		}
		imageURL := asString(data["screenshot_url"])
		if imageURL == "" {
			imageURL = asString(data["image_url"])
		}
		d.Response = &ScreenshotResponse{
			URL:    imageURL,
			Width:  int(asInt(data["width"])),
			Height: int(asInt(data["height"])),
			Format: format,
			Size:   asInt(data["size"]),
			Cached: asBool(data["cached"]),
		}
		d.URL = asString(data["url"])
	case EventScreenshotFailed:
		message := asString(data["error"])
		if message == "" {
			message = asString(data["message"])
		}
		d.Error = &EventError{Code: ErrorCodeRenderFailed, Message: message}
		d.URL = asString(data["url"])
	case EventBatchCompleted, EventBatchFailed:
		d.BatchID = asString(data["batch_id"])
		if d.BatchID == "" {
			d.BatchID = asString(data["id"])
		}
	}

	return d
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseTimestamp accepts ISO-8601 date-times. A trailing Z means UTC and
// values without a zone are read as UTC.
func parseTimestamp(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func asString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case go_json.Number:
		return v.String()
	default:
		return ""
	}
}

func asInt(v any) int64 {
	switch v := v.(type) {
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case uint:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	case go_json.Number:
		n, err := v.Int64()
		if err != nil {
			f, _ := v.Float64()
			return int64(f)
		}
		return n
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func asBool(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return false
	}
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneJSON(v)
	}
	return out
}

func cloneJSON(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return cloneMap(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneJSON(e)
		}
		return out
	default:
		return v
	}
}
