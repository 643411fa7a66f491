package discover

import (
	"context"
	"errors"
	"fmt"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
	"go.uber.org/zap"
)

// candidateLimit caps one discover batch.
const candidateLimit = 20

// PhotoURLProvider derives a public URL from a stored photo path.
type PhotoURLProvider interface {
	PublicURL(key string) string
}

type DiscoverUseCase struct {
	profileRepo repository.ProfileRepository
	prefRepo    repository.PreferenceRepository
	matchRepo   repository.MatchRepository
	blockRepo   repository.BlockRepository
	photoRepo   repository.PhotoRepository
	urls        PhotoURLProvider
	logger      *zap.Logger
}

func NewDiscoverUseCase(
	profileRepo repository.ProfileRepository,
	prefRepo repository.PreferenceRepository,
	matchRepo repository.MatchRepository,
	blockRepo repository.BlockRepository,
	photoRepo repository.PhotoRepository,
	urls PhotoURLProvider,
	logger *zap.Logger,
) *DiscoverUseCase {
	return &DiscoverUseCase{
		profileRepo: profileRepo,
		prefRepo:    prefRepo,
		matchRepo:   matchRepo,
		blockRepo:   blockRepo,
		photoRepo:   photoRepo,
		urls:        urls,
		logger:      logger,
	}
}

// CandidateView is one card in the discover feed
type CandidateView struct {
	ProfileID        string   `json:"profile_id"`
	DisplayName      string   `json:"display_name"`
	Age              int      `json:"age"`
	Gender           string   `json:"gender"`
	Bio              *string  `json:"bio"`
	Occupation       *string  `json:"occupation"`
	Education        *string  `json:"education"`
	City             *string  `json:"city"`
	Country          *string  `json:"country"`
	RelationshipGoal *string  `json:"relationship_goal"`
	Drinking         *string  `json:"drinking"`
	Smoking          *string  `json:"smoking"`
	Children         *string  `json:"children"`
	Passions         []string `json:"passions"`
	PhotoURL         *string  `json:"photo_url"`
}

// Discover returns the next batch of candidate profiles for the viewer:
// complete profiles outside the viewer's exclusion set, inside the
// viewer's age window and gender interest, newest first, capped at 20.
// An empty batch is a valid result.
func (uc *DiscoverUseCase) Discover(ctx context.Context, userID string) ([]*CandidateView, error) {
	viewer, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs, err := uc.prefRepo.Get(ctx, viewer.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, fmt.Errorf("failed to load preferences: %w", err)
		}
		prefs = domain.DefaultPreferences(viewer.ID)
	}

	exclude, err := uc.exclusionSet(ctx, viewer.ID)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.profileRepo.FindCandidates(ctx, domain.CandidateFilter{
		ExcludeIDs: exclude,
		MinAge:     prefs.MinAge,
		MaxAge:     prefs.MaxAge,
		Genders:    prefs.InterestedIn,
		Limit:      candidateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}

	views := make([]*CandidateView, 0, len(candidates))
	for _, candidate := range candidates {
		views = append(views, uc.candidateView(ctx, candidate))
	}
	return views, nil
}

// exclusionSet is the viewer's own id, the other party of every match
// row involving the viewer (either direction, any status), and every
// profile the viewer has blocked.
func (uc *DiscoverUseCase) exclusionSet(ctx context.Context, viewerID string) ([]string, error) {
	partners, err := uc.matchRepo.GetPartnerIDs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load match partners: %w", err)
	}

	blocked, err := uc.blockRepo.GetBlockedIDs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load blocked users: %w", err)
	}

	seen := map[string]bool{viewerID: true}
	exclude := []string{viewerID}
	for _, id := range append(partners, blocked...) {
		if !seen[id] {
			seen[id] = true
			exclude = append(exclude, id)
		}
	}
	return exclude, nil
}

func (uc *DiscoverUseCase) candidateView(ctx context.Context, p *domain.Profile) *CandidateView {
	view := &CandidateView{
		ProfileID:        p.ID,
		DisplayName:      p.DisplayName,
		Age:              p.Age,
		Gender:           p.Gender,
		Bio:              p.Bio,
		Occupation:       p.Occupation,
		Education:        p.Education,
		City:             p.City,
		Country:          p.Country,
		RelationshipGoal: p.RelationshipGoal,
		Drinking:         p.Drinking,
		Smoking:          p.Smoking,
		Children:         p.Children,
		Passions:         p.Passions,
	}
	photo, err := uc.photoRepo.GetDisplayPhoto(ctx, p.ID)
	if err != nil {
		uc.logger.Warn("failed to resolve display photo",
			zap.String("profile_id", p.ID), zap.Error(err))
		return view
	}
	if photo != nil {
		url := uc.urls.PublicURL(photo.StoragePath)
		view.PhotoURL = &url
	}
	return view
}
