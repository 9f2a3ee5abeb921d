package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/CristianSsousa/new-kitchen-web/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Save upserts the code for a browser token. Concurrent resolutions for
// the same token race here and the last write wins, intentionally.
func (r *SessionRepository) Save(ctx context.Context, token, codigo string) error {
	query := `INSERT INTO sessions (token, codigo, created_at, last_seen_at)
			  VALUES ($1, $2, now(), now())
			  ON CONFLICT (token)
			  DO UPDATE SET codigo = EXCLUDED.codigo, last_seen_at = now()`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, token, codigo); err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}

	return nil
}

func (r *SessionRepository) Codigo(ctx context.Context, token string) (string, error) {
	query := `UPDATE sessions
			  SET last_seen_at = now()
			  WHERE token = $1
			  RETURNING codigo`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, token)
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}

	var codigo string
	if err = row.Scan(&codigo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrSessionNotFound
		}
		return "", fmt.Errorf("scan session: %w", err)
	}

	return codigo, nil
}

// Delete is idempotent: removing an absent token is not an error.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE token = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `DELETE FROM sessions
			  WHERE last_seen_at < now() - make_interval(secs => $1)`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, olderThan.Seconds())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expired sessions rows affected: %w", err)
	}

	return rows, nil
}
