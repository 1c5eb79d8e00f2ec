package usecase

import (
	"context"
	"time"
)

// Cache namespaces
const (
	nsSubscriptions = "subscriptions"
	nsProfiles      = "profiles"
)

// JSONCache is the part of *cache.Cache the usecases rely on.
type JSONCache interface {
	SetJSON(ctx context.Context, namespace, k string, v interface{}, ttl time.Duration) error
	GetJSON(ctx context.Context, namespace, k string, dst interface{}) error
	Delete(ctx context.Context, namespace, k string) error
}
