package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/infrastructure/gemini"
	"github.com/amora-app/amora-backend/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PhotoURLProvider derives a public URL from a stored photo path.
type PhotoURLProvider interface {
	PublicURL(key string) string
}

type MatchUseCase struct {
	matchRepo        repository.MatchRepository
	profileRepo      repository.ProfileRepository
	photoRepo        repository.PhotoRepository
	notificationRepo repository.NotificationRepository
	urls             PhotoURLProvider
	geminiClient     *gemini.Client
	logger           *zap.Logger
}

func NewMatchUseCase(
	matchRepo repository.MatchRepository,
	profileRepo repository.ProfileRepository,
	photoRepo repository.PhotoRepository,
	notificationRepo repository.NotificationRepository,
	urls PhotoURLProvider,
	geminiClient *gemini.Client,
	logger *zap.Logger,
) *MatchUseCase {
	return &MatchUseCase{
		matchRepo:        matchRepo,
		profileRepo:      profileRepo,
		photoRepo:        photoRepo,
		notificationRepo: notificationRepo,
		urls:             urls,
		geminiClient:     geminiClient,
		logger:           logger,
	}
}

// ActionResponse represents the result of a like or pass
type ActionResponse struct {
	IsNewMatch bool          `json:"is_new_match"`
	Match      *domain.Match `json:"match"`
}

// MatchedProfile is the other party of a matched pair
type MatchedProfile struct {
	ProfileID   string   `json:"profile_id"`
	DisplayName string   `json:"display_name"`
	Age         int      `json:"age"`
	Bio         *string  `json:"bio"`
	City        *string  `json:"city"`
	Passions    []string `json:"passions"`
	PhotoURL    *string  `json:"photo_url"`
}

// MatchView represents one entry in the matches listing
type MatchView struct {
	Match   *domain.Match   `json:"match"`
	Partner *MatchedProfile `json:"partner"`
}

// Like records a like from the authenticated user toward the target
// profile, reconciling a reciprocal like into a matched pair.
func (uc *MatchUseCase) Like(ctx context.Context, userID, targetProfileID string) (*ActionResponse, error) {
	return uc.act(ctx, userID, targetProfileID, true)
}

// Pass records a pass; a pending reverse-direction row becomes rejected.
func (uc *MatchUseCase) Pass(ctx context.Context, userID, targetProfileID string) (*ActionResponse, error) {
	return uc.act(ctx, userID, targetProfileID, false)
}

func (uc *MatchUseCase) act(ctx context.Context, userID, targetProfileID string, like bool) (*ActionResponse, error) {
	actor, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	target, err := uc.profileRepo.GetByID(ctx, targetProfileID)
	if err != nil {
		return nil, err
	}

	if actor.ID == target.ID {
		return nil, domain.ErrCannotActOnSelf
	}

	match, isNewMatch, err := uc.reconcile(ctx, actor.ID, target.ID, like)
	if err != nil {
		return nil, err
	}

	if isNewMatch {
		uc.notifyMatch(ctx, match, actor, target)
		if uc.geminiClient != nil {
			go uc.enrichWithIcebreakers(match.ID, actor, target)
		}
	}

	return &ActionResponse{IsNewMatch: isNewMatch, Match: match}, nil
}

// reconcile runs the state machine for one action. At most one row ever
// exists per unordered pair: a repeated same-direction action is a
// no-op, a reverse-direction action transitions a pending row, and
// matched/rejected rows are terminal.
func (uc *MatchUseCase) reconcile(ctx context.Context, actorID, targetID string, like bool) (*domain.Match, bool, error) {
	// Two attempts: a concurrent first insert for the pair makes our
	// insert fail on the unique index, after which the re-fetch finds
	// the winner's row and reconciles against it.
	for attempt := 0; attempt < 2; attempt++ {
		existing, err := uc.matchRepo.GetByPair(ctx, actorID, targetID)
		if err == nil {
			return uc.transition(ctx, existing, actorID, like)
		}
		if !errors.Is(err, domain.ErrMatchNotFound) {
			return nil, false, fmt.Errorf("failed to look up match: %w", err)
		}

		status := domain.MatchStatusPending
		if !like {
			status = domain.MatchStatusRejected
		}
		match := &domain.Match{
			ID:      uuid.NewString(),
			User1ID: actorID,
			User2ID: targetID,
			Status:  status,
		}
		err = uc.matchRepo.Create(ctx, match)
		if err == nil {
			return match, false, nil
		}
		if !errors.Is(err, domain.ErrMatchAlreadyExists) {
			return nil, false, fmt.Errorf("failed to create match: %w", err)
		}
	}
	return nil, false, domain.ErrMatchAlreadyExists
}

func (uc *MatchUseCase) transition(ctx context.Context, match *domain.Match, actorID string, like bool) (*domain.Match, bool, error) {
	// Actor acted first; repeating the action never appends a second
	// row or rewrites the existing one.
	if match.User1ID == actorID {
		return match, false, nil
	}

	if match.Terminal() {
		return match, false, nil
	}

	status := domain.MatchStatusRejected
	if like {
		status = domain.MatchStatusMatched
	}
	if err := uc.matchRepo.UpdateStatus(ctx, match.ID, status); err != nil {
		return nil, false, fmt.Errorf("failed to update match status: %w", err)
	}
	match.Status = status

	return match, status == domain.MatchStatusMatched, nil
}

// ListMatches returns the viewer's matched pairs, newest first, each
// with the other party's profile summary.
func (uc *MatchUseCase) ListMatches(ctx context.Context, userID string) ([]*MatchView, error) {
	viewer, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	matches, err := uc.matchRepo.GetMatched(ctx, viewer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	views := make([]*MatchView, 0, len(matches))
	for _, match := range matches {
		partnerID, ok := match.OtherUserID(viewer.ID)
		if !ok {
			continue
		}
		partner, err := uc.profileRepo.GetByID(ctx, partnerID)
		if err != nil {
			uc.logger.Warn("skipping match with missing partner profile",
				zap.String("match_id", match.ID), zap.Error(err))
			continue
		}
		views = append(views, &MatchView{
			Match:   match,
			Partner: uc.partnerView(ctx, partner),
		})
	}
	return views, nil
}

func (uc *MatchUseCase) partnerView(ctx context.Context, partner *domain.Profile) *MatchedProfile {
	view := &MatchedProfile{
		ProfileID:   partner.ID,
		DisplayName: partner.DisplayName,
		Age:         partner.Age,
		Bio:         partner.Bio,
		City:        partner.City,
		Passions:    partner.Passions,
	}
	photo, err := uc.photoRepo.GetDisplayPhoto(ctx, partner.ID)
	if err != nil {
		uc.logger.Warn("failed to resolve display photo",
			zap.String("profile_id", partner.ID), zap.Error(err))
		return view
	}
	if photo != nil {
		url := uc.urls.PublicURL(photo.StoragePath)
		view.PhotoURL = &url
	}
	return view
}

func (uc *MatchUseCase) notifyMatch(ctx context.Context, match *domain.Match, actor, target *domain.Profile) {
	for _, n := range []*domain.Notification{
		{
			ID:        uuid.NewString(),
			ProfileID: actor.ID,
			Type:      domain.NotificationMatchCreated,
			Body:      fmt.Sprintf("You matched with %s!", target.DisplayName),
		},
		{
			ID:        uuid.NewString(),
			ProfileID: target.ID,
			Type:      domain.NotificationMatchCreated,
			Body:      fmt.Sprintf("You matched with %s!", actor.DisplayName),
		},
	} {
		if err := uc.notificationRepo.Create(ctx, n); err != nil {
			uc.logger.Warn("failed to create match notification",
				zap.String("match_id", match.ID), zap.Error(err))
		}
	}
}

// enrichWithIcebreakers stores AI-suggested opening lines on the match
// row. Best effort; runs detached from the request.
func (uc *MatchUseCase) enrichWithIcebreakers(matchID string, actor, target *domain.Profile) {
	ctx := context.Background()

	icebreakers, err := uc.geminiClient.GenerateIcebreakers(ctx, actor.Passions, target.Passions)
	if err != nil {
		uc.logger.Warn("failed to generate icebreakers",
			zap.String("match_id", matchID), zap.Error(err))
		return
	}

	if err := uc.matchRepo.UpdateIcebreakers(ctx, matchID, icebreakers); err != nil {
		uc.logger.Warn("failed to store icebreakers",
			zap.String("match_id", matchID), zap.Error(err))
	}
}
