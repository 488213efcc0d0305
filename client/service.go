package client

import (
	"context"

	"github.com/Render-Screenshot/rs-go/screenshot"
)

type ScreenshotService interface {
	Take(ctx context.Context, o screenshot.Options) (*Image, error)
	TakeJSON(ctx context.Context, o screenshot.Options) (*ScreenshotResult, error)
	TakeAll(ctx context.Context, opts []screenshot.Options, concurrency int) ([]*Image, error)
}

type BatchService interface {
	Create(ctx context.Context, req *BatchRequest) (*Batch, error)
	Get(ctx context.Context, id string) (*Batch, error)
}

type CacheService interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Delete(ctx context.Context, key string) error
	Purge(ctx context.Context, req *PurgeRequest) (*PurgeResult, error)
}

type PresetService interface {
	List(ctx context.Context) ([]Preset, error)
	Get(ctx context.Context, id string) (*Preset, error)
	Devices(ctx context.Context) ([]Device, error)
}
