package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Render-Screenshot/rs-go/internal/xslog"
)

type cacheService struct {
	client *Client
}

func (s *cacheService) Get(ctx context.Context, key string) (*CacheEntry, error) {
	route := "/cache/" + url.PathEscape(key)

	var entry CacheEntry
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *cacheService) Delete(ctx context.Context, key string) error {
	route := "/cache/" + url.PathEscape(key)

	if err := s.client.do(ctx, http.MethodDelete, route, nil, nil, nil); err != nil {
		return err
	}
	s.client.logger.DebugContext(ctx, "cache entry deleted", xslog.CacheKey(key))
	return nil
}

func (s *cacheService) Purge(ctx context.Context, req *PurgeRequest) (*PurgeResult, error) {
	const route = "/cache/purge"

	if req == nil {
		req = &PurgeRequest{}
	}

	var result PurgeResult
	if err := s.client.do(ctx, http.MethodPost, route, nil, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
