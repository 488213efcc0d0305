package client

import (
	"context"
	"net/http"
	"net/url"
)

type presetService struct {
	client *Client
}

func (s *presetService) List(ctx context.Context) ([]Preset, error) {
	const route = "/presets"

	var resp listResponse[Preset]
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (s *presetService) Get(ctx context.Context, id string) (*Preset, error) {
	route := "/presets/" + url.PathEscape(id)

	var preset Preset
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &preset); err != nil {
		return nil, err
	}
	return &preset, nil
}

func (s *presetService) Devices(ctx context.Context) ([]Device, error) {
	const route = "/devices"

	var resp listResponse[Device]
	if err := s.client.do(ctx, http.MethodGet, route, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
