package repository

import (
	"context"
	"time"
)

// SessionRepository tracks live sessions by session id. A session that
// has expired or been revoked is simply absent.
type SessionRepository interface {
	Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	// GetUserID returns domain.ErrSessionNotFound for unknown sessions.
	GetUserID(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}
