package preferences

import (
	"context"
	"errors"
	"fmt"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
)

type PreferencesUseCase struct {
	prefRepo    repository.PreferenceRepository
	profileRepo repository.ProfileRepository
}

func NewPreferencesUseCase(
	prefRepo repository.PreferenceRepository,
	profileRepo repository.ProfileRepository,
) *PreferencesUseCase {
	return &PreferencesUseCase{
		prefRepo:    prefRepo,
		profileRepo: profileRepo,
	}
}

// UpdateRequest carries a partial preference update; unset fields keep
// their current (or default) values.
type UpdateRequest struct {
	MinAge       *int      `json:"min_age" binding:"omitempty,min=18,max=100"`
	MaxAge       *int      `json:"max_age" binding:"omitempty,min=18,max=100"`
	InterestedIn *[]string `json:"interested_in" binding:"omitempty,dive,gender"`
	MaxDistance  *int      `json:"max_distance" binding:"omitempty,min=1,max=1000"`
	ShowMe       *bool     `json:"show_me"`
}

// Get returns the viewer's stored preferences, or the defaults when no
// row exists. Reading never persists a row.
func (uc *PreferencesUseCase) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs, err := uc.prefRepo.Get(ctx, profile.ID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return domain.DefaultPreferences(profile.ID), nil
		}
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	return prefs, nil
}

// Update merges the partial update over the current (or default) values
// and upserts the row. Calling twice with the same partial yields the
// same stored state.
func (uc *PreferencesUseCase) Update(ctx context.Context, userID string, req *UpdateRequest) (*domain.Preferences, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs, err := uc.prefRepo.Get(ctx, profile.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, fmt.Errorf("failed to load preferences: %w", err)
		}
		prefs = domain.DefaultPreferences(profile.ID)
	}

	if req.MinAge != nil {
		prefs.MinAge = *req.MinAge
	}
	if req.MaxAge != nil {
		prefs.MaxAge = *req.MaxAge
	}
	if req.InterestedIn != nil {
		prefs.InterestedIn = *req.InterestedIn
	}
	if req.MaxDistance != nil {
		prefs.MaxDistance = *req.MaxDistance
	}
	if req.ShowMe != nil {
		prefs.ShowMe = *req.ShowMe
	}

	if prefs.MinAge > prefs.MaxAge {
		return nil, domain.ErrInvalidInput
	}

	if err := uc.prefRepo.Upsert(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}
	return prefs, nil
}
