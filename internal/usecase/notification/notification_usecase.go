package notification

import (
	"context"
	"fmt"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	profileRepo      repository.ProfileRepository
}

func NewNotificationUseCase(
	notificationRepo repository.NotificationRepository,
	profileRepo repository.ProfileRepository,
) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		profileRepo:      profileRepo,
	}
}

func (uc *NotificationUseCase) List(ctx context.Context, userID string) ([]*domain.Notification, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	notifications, err := uc.notificationRepo.GetByProfile(ctx, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}
	return notifications, nil
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, userID, notificationID string) error {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return uc.notificationRepo.MarkRead(ctx, notificationID, profile.ID)
}
