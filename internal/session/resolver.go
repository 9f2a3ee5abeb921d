// Package session owns the guest session: resolving invitation codes
// against the registry, persisting the code per browser token, and
// serving the restored state back to the pages.
package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
	"github.com/CristianSsousa/new-kitchen-web/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// NormalizeCodigo prepares a free-form, human-typed code for resolution.
// URL-supplied codes are deliberately NOT normalized: auto-login must not
// silently mutate a shared link.
func NormalizeCodigo(codigo string) string {
	return strings.ToUpper(strings.TrimSpace(codigo))
}

type Resolver struct {
	guests     ports.GuestDirectory
	store      ports.SessionStore
	sessionTTL time.Duration
	logger     logger.Logger
}

func NewResolver(
	guests ports.GuestDirectory,
	store ports.SessionStore,
	sessionTTL time.Duration,
	logger logger.Logger,
) *Resolver {
	return &Resolver{
		guests:     guests,
		store:      store,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// ResolveByCode turns an invitation code into a resolved session state.
// The guest lookup and the stats lookup run sequentially with the same
// code value (the contract is code-addressed for both; a failed first call
// short-circuits the second). On success the code is persisted under the
// browser token; on any failure the persisted code is removed and the
// caller gets ErrConvidadoNotFound. Single attempt, no retries.
func (r *Resolver) ResolveByCode(ctx context.Context, token, codigo string) (*domain.SessionState, error) {
	conv, err := r.guests.GuestByCode(ctx, codigo)
	if err != nil {
		r.discard(ctx, token, codigo, err)
		return nil, domain.ErrConvidadoNotFound
	}

	stats, err := r.guests.GuestStatsByCode(ctx, codigo)
	if err != nil {
		r.discard(ctx, token, codigo, err)
		return nil, domain.ErrConvidadoNotFound
	}

	if err := r.store.Save(ctx, token, codigo); err != nil {
		// The guest is resolved either way; losing persistence only costs
		// the next reload a fresh login.
		r.logger.Error("persist session code",
			logger.String("token", token),
			logger.String("error", err.Error()),
		)
	}

	r.logger.Info("convidado resolved",
		logger.String("codigo", codigo),
		logger.Int64("convidado_id", conv.ID),
	)

	return &domain.SessionState{Convidado: conv, Stats: stats}, nil
}

// Current restores the session for a browser token. It never fails: any
// missing or stale code degrades to the anonymous state.
func (r *Resolver) Current(ctx context.Context, token string) *domain.SessionState {
	if token == "" {
		return &domain.SessionState{}
	}

	codigo, err := r.store.Codigo(ctx, token)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			r.logger.Error("load session code",
				logger.String("token", token),
				logger.String("error", err.Error()),
			)
		}
		return &domain.SessionState{}
	}

	state, err := r.ResolveByCode(ctx, token, codigo)
	if err != nil {
		return &domain.SessionState{}
	}

	return state
}

// Clear drops the persisted code for the token. Idempotent.
func (r *Resolver) Clear(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return r.store.Delete(ctx, token)
}

// RefreshStats re-derives the stats snapshot for the token's guest. The
// second result reports whether the snapshot is authoritative: (nil, true)
// means there genuinely is no resolved guest, while (nil, false) means the
// refresh failed and callers should keep whatever snapshot they already
// hold. Failures are logged and swallowed: a refresh is best-effort
// housekeeping after a mutation and must never log the guest out.
func (r *Resolver) RefreshStats(ctx context.Context, token string) (*domain.ConvidadoStats, bool) {
	if token == "" {
		return nil, true
	}

	codigo, err := r.store.Codigo(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, true
		}
		r.logger.Error("load session code",
			logger.String("token", token),
			logger.String("error", err.Error()),
		)
		return nil, false
	}

	stats, err := r.guests.GuestStatsByCode(ctx, codigo)
	if err != nil {
		r.logger.Error("refresh convidado stats",
			logger.String("codigo", codigo),
			logger.String("error", err.Error()),
		)
		return nil, false
	}

	return stats, true
}

// PurgeExpired removes sessions idle beyond the configured TTL.
func (r *Resolver) PurgeExpired(ctx context.Context) (int64, error) {
	return r.store.DeleteExpired(ctx, r.sessionTTL)
}

func (r *Resolver) discard(ctx context.Context, token, codigo string, cause error) {
	if token != "" {
		if err := r.store.Delete(ctx, token); err != nil {
			r.logger.Error("discard session code",
				logger.String("token", token),
				logger.String("error", err.Error()),
			)
		}
	}

	r.logger.Info("convidado resolution failed",
		logger.String("codigo", codigo),
		logger.String("error", cause.Error()),
	)
}
