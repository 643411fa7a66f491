package message

import (
	"context"
	"fmt"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
	"github.com/google/uuid"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	matchRepo   repository.MatchRepository
	profileRepo repository.ProfileRepository
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	matchRepo repository.MatchRepository,
	profileRepo repository.ProfileRepository,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
	}
}

// SendRequest carries a new message
type SendRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// StatusRequest moves a received message to delivered or read
type StatusRequest struct {
	Status string `json:"status" binding:"required,oneof=delivered read"`
}

// Send appends a message to a matched pair's conversation. Only the
// two participants of a matched row may write.
func (uc *MessageUseCase) Send(ctx context.Context, userID, matchID string, req *SendRequest) (*domain.Message, error) {
	sender, match, err := uc.participant(ctx, userID, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status != domain.MatchStatusMatched {
		return nil, domain.ErrMatchNotActive
	}

	message := &domain.Message{
		ID:       uuid.NewString(),
		MatchID:  match.ID,
		SenderID: sender.ID,
		Content:  req.Content,
		Status:   domain.MessageStatusSent,
	}
	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}
	return message, nil
}

// List returns the conversation, oldest first.
func (uc *MessageUseCase) List(ctx context.Context, userID, matchID string) ([]*domain.Message, error) {
	_, match, err := uc.participant(ctx, userID, matchID)
	if err != nil {
		return nil, err
	}

	messages, err := uc.messageRepo.GetByMatch(ctx, match.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}
	return messages, nil
}

// UpdateStatus marks a received message delivered or read. The sender
// cannot transition their own message.
func (uc *MessageUseCase) UpdateStatus(ctx context.Context, userID, messageID string, req *StatusRequest) error {
	viewer, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	message, err := uc.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	match, err := uc.matchRepo.GetByID(ctx, message.MatchID)
	if err != nil {
		return err
	}
	if !match.HasUser(viewer.ID) || message.SenderID == viewer.ID {
		return domain.ErrNotMatchParticipant
	}

	return uc.messageRepo.UpdateStatus(ctx, message.ID, req.Status)
}

func (uc *MessageUseCase) participant(ctx context.Context, userID, matchID string) (*domain.Profile, *domain.Match, error) {
	viewer, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, nil, err
	}
	if !match.HasUser(viewer.ID) {
		return nil, nil, domain.ErrNotMatchParticipant
	}
	return viewer, match, nil
}
