package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Render-Screenshot/rs-go/internal/xhttp"
	"github.com/Render-Screenshot/rs-go/internal/xslog"
	"github.com/Render-Screenshot/rs-go/screenshot"
)

const (
	widthHeaderKey    = "X-Screenshot-Width"
	heightHeaderKey   = "X-Screenshot-Height"
	cacheKeyHeaderKey = "X-Cache-Key"
	cacheHeaderKey    = "X-Cache"
)

const screenshotRoute = "/screenshot"

// DefaultConcurrency bounds TakeAll when no positive concurrency is given.
const DefaultConcurrency = 4

type screenshotService struct {
	client *Client
}

func (s *screenshotService) Take(ctx context.Context, o screenshot.Options) (*Image, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	params := o.ResponseType(screenshot.ResponseBinary).ToParams()
	req, err := s.client.newRequest(ctx, http.MethodPost, screenshotRoute, nil, params)
	if err != nil {
		return nil, err
	}
	req.Header.Set(xhttp.Accept, strings.Join([]string{xhttp.ImageAny, xhttp.ApplicationPDF}, ", "))

	resp, err := s.client.send(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading screenshot: %w", err)
	}

	info, _ := ParseRateLimitHeaders(resp.Header)
	return &Image{
		Data:        data,
		ContentType: resp.Header.Get(xhttp.ContentType),
		Width:       headerInt(resp.Header, widthHeaderKey),
		Height:      headerInt(resp.Header, heightHeaderKey),
		CacheKey:    resp.Header.Get(cacheKeyHeaderKey),
		Cached:      strings.EqualFold(resp.Header.Get(cacheHeaderKey), "hit"),
		RequestID:   req.Header.Get(xhttp.XRequestID),
		RateLimit:   info,
	}, nil
}

func (s *screenshotService) TakeJSON(ctx context.Context, o screenshot.Options) (*ScreenshotResult, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	params := o.ResponseType(screenshot.ResponseJSON).ToParams()

	var result ScreenshotResult
	if err := s.client.do(ctx, http.MethodPost, screenshotRoute, nil, params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TakeAll renders every option set with at most concurrency requests in
// flight. Results are in input order. The first failure cancels the rest.
func (s *screenshotService) TakeAll(ctx context.Context, opts []screenshot.Options, concurrency int) ([]*Image, error) {
	for i, o := range opts {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("options %d: %w", i, err)
		}
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	images := make([]*Image, len(opts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, o := range opts {
		g.Go(func() error {
			img, err := s.Take(gctx, o)
			if err != nil {
				return fmt.Errorf("options %d: %w", i, err)
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.client.logger.DebugContext(ctx, "screenshots taken", xslog.Count(len(images)))
	return images, nil
}

func headerInt(h http.Header, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(h.Get(key)))
	if err != nil {
		return 0
	}
	return n
}
