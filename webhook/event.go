package webhook

import "time"

type EventType string

const (
	EventScreenshotCompleted EventType = "screenshot.completed"
	EventScreenshotFailed    EventType = "screenshot.failed"
	EventBatchCompleted      EventType = "batch.completed"
	EventBatchFailed         EventType = "batch.failed"
)

// DefaultEventType is assumed when a delivery carries no event field.
const DefaultEventType = EventScreenshotCompleted

// ErrorCodeRenderFailed is the code reported for screenshot.failed events.
const ErrorCodeRenderFailed = "render_failed"

// Known reports whether t is one of the event types this package shapes.
func (t EventType) Known() bool {
	switch t {
	case EventScreenshotCompleted, EventScreenshotFailed, EventBatchCompleted, EventBatchFailed:
		return true
	default:
		return false
	}
}

type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      Data      `json:"data"`
}

// Data holds the type-specific fields of an event. Raw always carries the
// unshaped data object as delivered; for unknown event types it is the only
// populated field.
type Data struct {
	Response *ScreenshotResponse `json:"response,omitempty"`
	Error    *EventError         `json:"error,omitempty"`
	URL      string              `json:"url,omitempty"`
	BatchID  string              `json:"batch_id,omitempty"`
	Raw      map[string]any      `json:"raw,omitempty"`
}

type ScreenshotResponse struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
	Cached bool   `json:"cached"`
}

type EventError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
