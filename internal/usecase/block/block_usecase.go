package block

import (
	"context"
	"fmt"
	"time"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
)

type BlockUseCase struct {
	blockRepo   repository.BlockRepository
	profileRepo repository.ProfileRepository
}

func NewBlockUseCase(
	blockRepo repository.BlockRepository,
	profileRepo repository.ProfileRepository,
) *BlockUseCase {
	return &BlockUseCase{
		blockRepo:   blockRepo,
		profileRepo: profileRepo,
	}
}

// BlockedView is one entry in the blocked list
type BlockedView struct {
	ProfileID   string `json:"profile_id"`
	DisplayName string `json:"display_name"`
	BlockedAt   string `json:"blocked_at"`
}

func (uc *BlockUseCase) Block(ctx context.Context, userID, targetProfileID string) error {
	blocker, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if blocker.ID == targetProfileID {
		return domain.ErrCannotActOnSelf
	}

	if _, err := uc.profileRepo.GetByID(ctx, targetProfileID); err != nil {
		return err
	}

	return uc.blockRepo.Block(ctx, blocker.ID, targetProfileID)
}

func (uc *BlockUseCase) Unblock(ctx context.Context, userID, targetProfileID string) error {
	blocker, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return uc.blockRepo.Unblock(ctx, blocker.ID, targetProfileID)
}

func (uc *BlockUseCase) List(ctx context.Context, userID string) ([]*BlockedView, error) {
	blocker, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	blocked, err := uc.blockRepo.GetBlocked(ctx, blocker.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load blocked users: %w", err)
	}

	views := make([]*BlockedView, 0, len(blocked))
	for _, b := range blocked {
		view := &BlockedView{
			ProfileID: b.BlockedID,
			BlockedAt: b.CreatedAt.Format(time.RFC3339),
		}
		if profile, err := uc.profileRepo.GetByID(ctx, b.BlockedID); err == nil {
			view.DisplayName = profile.DisplayName
		}
		views = append(views, view)
	}
	return views, nil
}
