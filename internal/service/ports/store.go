package ports

import (
	"context"
	"time"
)

// SessionStore persists the single durable fact the front-end owns: which
// invitation code a browser token last resolved.
type SessionStore interface {
	Save(ctx context.Context, token, codigo string) error
	Codigo(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}
