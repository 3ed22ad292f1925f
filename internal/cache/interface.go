package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMalformedPayload reports a cached value that exists but cannot be
// decoded. Callers that can rebuild the value treat it as a miss; transport
// failures are never wrapped with it.
var ErrMalformedPayload = errors.New("malformed cache payload")

type Cache interface {
	Get(ctx context.Context, key string, value interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
	Close() error
}

func Key(parts ...string) string {
	key := parts[0]
	for _, part := range parts[1:] {
		key += ":" + part
	}

	return key
}

const (
	SessionKeyPrefix = "session"

	UserKeySuffix = "user"
	CartKeySuffix = "cart"
	ShopKeySuffix = "shop"
)
