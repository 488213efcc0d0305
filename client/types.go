package client

import (
	"time"

	"github.com/Render-Screenshot/rs-go/screenshot"
)

// Image is a rendered screenshot returned as raw bytes.
type Image struct {
	Data        []byte
	ContentType string
	// Metadata reported in response headers. Zero when absent.
	Width     int
	Height    int
	CacheKey  string
	Cached    bool
	RequestID string
	RateLimit *RateLimitInfo
}

// ScreenshotResult is the JSON form of a rendered screenshot.
type ScreenshotResult struct {
	ID        string     `json:"id"`
	URL       string     `json:"url"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Format    string     `json:"format"`
	Size      int64      `json:"size"`
	Cached    bool       `json:"cached"`
	CacheKey  string     `json:"cache_key,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type BatchStatus string

const (
	BatchPending    BatchStatus = "pending"
	BatchProcessing BatchStatus = "processing"
	BatchCompleted  BatchStatus = "completed"
	BatchFailed     BatchStatus = "failed"
)

// Done reports whether the batch has stopped processing.
func (s BatchStatus) Done() bool {
	return s == BatchCompleted || s == BatchFailed
}

type BatchRequest struct {
	Requests   []screenshot.Options `json:"requests"`
	WebhookURL string               `json:"webhook_url,omitempty"`
}

type Batch struct {
	ID          string        `json:"id"`
	Status      BatchStatus   `json:"status"`
	Total       int           `json:"total"`
	Completed   int           `json:"completed"`
	Failed      int           `json:"failed"`
	Results     []BatchResult `json:"results,omitempty"`
	CreatedAt   *time.Time    `json:"created_at,omitempty"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}

type BatchResult struct {
	Index  int               `json:"index"`
	Status string            `json:"status"`
	Result *ScreenshotResult `json:"result,omitempty"`
	Error  *BatchError       `json:"error,omitempty"`
}

type BatchError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CacheEntry struct {
	Key       string     `json:"key"`
	URL       string     `json:"url"`
	Size      int64      `json:"size"`
	Format    string     `json:"format,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// PurgeRequest selects cache entries by key, by source URL pattern, or both.
type PurgeRequest struct {
	Keys       []string `json:"keys,omitempty"`
	URLPattern string   `json:"url_pattern,omitempty"`
}

type PurgeResult struct {
	Purged int `json:"purged"`
}

type Preset struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Options     map[string]any `json:"options,omitempty"`
}

// ScreenshotOptions turns the preset into an option set for url.
func (p Preset) ScreenshotOptions(url string) screenshot.Options {
	return screenshot.FromMap(p.Options).URL(url)
}

type Device struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Scale     float64 `json:"scale"`
	Mobile    bool    `json:"mobile"`
	UserAgent string  `json:"user_agent,omitempty"`
}

type listResponse[T any] struct {
	Data []T `json:"data"`
}
