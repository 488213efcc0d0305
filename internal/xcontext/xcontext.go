// Package xcontext holds typed request-scoped values.
package xcontext

import "context"

type key int

const (
	requestIDKey key = iota
	deliveryIDKey
)

func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	return get(ctx, requestIDKey)
}

// SetDeliveryID records the webhook event id being handled.
func SetDeliveryID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, deliveryIDKey, id)
}

func GetDeliveryID(ctx context.Context) (string, bool) {
	return get(ctx, deliveryIDKey)
}

func get(ctx context.Context, k key) (string, bool) {
	v, ok := ctx.Value(k).(string)
	return v, ok && v != ""
}
