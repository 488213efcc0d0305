package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Render-Screenshot/rs-go/internal/xslog"
)

var ErrEmptyBatch = errors.New("client: batch has no requests")

type batchService struct {
	client *Client
}

type batchBody struct {
	Requests   []map[string]any `json:"requests"`
	WebhookURL string           `json:"webhook_url,omitempty"`
}

func (s *batchService) Create(ctx context.Context, req *BatchRequest) (*Batch, error) {
	const route = "/batch"

	if req == nil || len(req.Requests) == 0 {
		return nil, ErrEmptyBatch
	}

	body := batchBody{
		Requests:   make([]map[string]any, len(req.Requests)),
		WebhookURL: req.WebhookURL,
	}
	for i, o := range req.Requests {
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("request %d: %w", i, err)
		}
		body.Requests[i] = o.ToParams()
	}

	var batch Batch
	if err := s.client.do(ctx, http.MethodPost, route, nil, body, &batch); err != nil {
		return nil, err
	}

	s.client.logger.DebugContext(ctx, "batch created", xslog.BatchID(batch.ID), xslog.Count(len(body.Requests)))
	return &batch, nil
}

func (s *batchService) Get(ctx context.Context, id string) (*Batch, error) {
	route := "/batch/" + url.PathEscape(id)

	var batch Batch
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}
