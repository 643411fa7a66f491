package repository

import (
	"context"

	"github.com/amora-app/amora-backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	GetByID(ctx context.Context, id string) (*domain.Message, error)
	GetByMatch(ctx context.Context, matchID string) ([]*domain.Message, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	GetByProfile(ctx context.Context, profileID string) ([]*domain.Notification, error)
	// MarkRead only touches rows owned by the given profile.
	MarkRead(ctx context.Context, id, profileID string) error
}
