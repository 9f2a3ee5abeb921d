package ports

import "context"

// CollectionCache is a read-through cache for upstream collection GETs.
// A miss is (false, nil); cache failures are reported, not fatal.
type CollectionCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, val any) error
	Invalidate(ctx context.Context, keys ...string) error
}
