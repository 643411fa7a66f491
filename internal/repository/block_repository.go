package repository

import (
	"context"

	"github.com/amora-app/amora-backend/internal/domain"
)

type BlockRepository interface {
	Block(ctx context.Context, blockerID, blockedID string) error
	Unblock(ctx context.Context, blockerID, blockedID string) error
	GetBlockedIDs(ctx context.Context, blockerID string) ([]string, error)
	GetBlocked(ctx context.Context, blockerID string) ([]*domain.BlockedUser, error)
}
